package game

import (
	"github.com/mkraev/tetrois/internal/core"
)

// Shape identifies one of the seven tetromino kinds.
type Shape int

const (
	ShapeO Shape = iota
	ShapeI
	ShapeS
	ShapeZ
	ShapeT
	ShapeL
	ShapeJ

	shapeCount = 7
)

// String returns the conventional one-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeO:
		return "O"
	case ShapeI:
		return "I"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeT:
		return "T"
	case ShapeL:
		return "L"
	case ShapeJ:
		return "J"
	default:
		return "?"
	}
}

// Color returns the display color associated with the shape.
func (s Shape) Color() core.Color {
	switch s {
	case ShapeO:
		return core.ColorYellow
	case ShapeI:
		return core.ColorCyan
	case ShapeS:
		return core.ColorGreen
	case ShapeZ:
		return core.ColorRed
	case ShapeT:
		return core.ColorMagenta
	case ShapeL:
		return core.ColorBlue
	case ShapeJ:
		return core.ColorWhite
	default:
		return core.ColorDefault
	}
}

// shapeTemplates holds the spawn-time block positions of each shape,
// anchored near the top center of the 10-column board. The first entry
// of each template is the rotation pivot.
var shapeTemplates = [shapeCount][blocksPerPiece]core.Offset{
	ShapeO: {{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 1}},
	ShapeI: {{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}},
	ShapeS: {{X: 5, Y: 0}, {X: 6, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 1}},
	ShapeZ: {{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 1}, {X: 6, Y: 1}},
	ShapeT: {{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 5, Y: 1}},
	ShapeL: {{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 4, Y: 1}},
	ShapeJ: {{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 1}},
}

// shapePreviews holds small text sketches of each shape for the
// "next piece" box.
var shapePreviews = [shapeCount][]string{
	ShapeO: {"[#][#]", "[#][#]"},
	ShapeI: {"[#][#][#][#]", ""},
	ShapeS: {"   [#][#]", "[#][#]"},
	ShapeZ: {"[#][#]", "   [#][#]"},
	ShapeT: {"   [#]", "[#][#][#]"},
	ShapeL: {"[#][#][#]", "[#]"},
	ShapeJ: {"[#][#][#]", "      [#]"},
}

// blocksPerPiece is the fixed number of cells in every tetromino.
const blocksPerPiece = 4

// Piece is a movable cluster of four absolute cell positions with a
// shape identity. It is a value type: Moved and Rotated return copies,
// so a rejected transform simply discards the candidate and the
// original piece stays untouched.
//
// Invariant: blocks[0] is the rotation pivot. Rotation happens about
// the first block of the spawn template, not the geometric center, so
// some shapes rotate visually off-center. The wall-kick offsets assume
// this pivot; do not normalize it to centroid rotation.
type Piece struct {
	blocks [blocksPerPiece]core.Offset
	shape  Shape
}

// NewPiece creates a piece of the given shape at its spawn position.
func NewPiece(s Shape) Piece {
	return Piece{
		blocks: shapeTemplates[s],
		shape:  s,
	}
}

// Shape returns the piece's shape identity.
func (p Piece) Shape() Shape {
	return p.shape
}

// Color returns the piece's display color.
func (p Piece) Color() core.Color {
	return p.shape.Color()
}

// Blocks returns the piece's four absolute cell positions.
func (p Piece) Blocks() [blocksPerPiece]core.Offset {
	return p.blocks
}

// Moved returns a copy of the piece translated by the given offset.
// Legality is the caller's responsibility; the move itself always
// succeeds at the data level.
func (p Piece) Moved(d core.Offset) Piece {
	for i := range p.blocks {
		p.blocks[i] = p.blocks[i].Add(d)
	}
	return p
}

// Rotated returns a copy of the piece rotated 90 degrees about its
// pivot (blocks[0]): each block offset (rx, ry) from the pivot maps to
// (-ry, rx). The O piece does not rotate.
func (p Piece) Rotated() Piece {
	if p.shape == ShapeO {
		return p
	}
	pivot := p.blocks[0]
	for i := range p.blocks {
		rel := p.blocks[i].Sub(pivot)
		p.blocks[i] = core.Offset{X: pivot.X - rel.Y, Y: pivot.Y + rel.X}
	}
	return p
}

// Preview returns the text sketch of the shape for the "next" box.
func (s Shape) Preview() []string {
	return shapePreviews[s]
}
