package game

import (
	"github.com/mkraev/tetrois/internal/core"
)

// Standard playfield dimensions. Fixed for the lifetime of a session.
const (
	Rows = 20
	Cols = 10
)

// BoardCell is a single settled cell of the playfield. Shape is only
// meaningful while Occupied is true.
type BoardCell struct {
	Occupied bool
	Shape    Shape
}

// Board is the fixed-size occupancy grid of settled blocks. It is the
// sole persistent record of locked pieces; the active piece lives
// outside the board until it locks.
type Board struct {
	cells [Rows][Cols]BoardCell
}

// Inside reports whether the position lies within the playfield.
func (b *Board) Inside(p core.Offset) bool {
	return p.X >= 0 && p.X < Cols && p.Y >= 0 && p.Y < Rows
}

// Occupied reports whether the position is blocked. Every position
// outside the playfield counts as occupied (wall semantics), so this
// is a total function over all integer positions.
func (b *Board) Occupied(p core.Offset) bool {
	if !b.Inside(p) {
		return true
	}
	return b.cells[p.Y][p.X].Occupied
}

// At returns the settled cell at the position. The position must be
// inside the playfield.
func (b *Board) At(p core.Offset) BoardCell {
	return b.cells[p.Y][p.X]
}

// Collides reports whether any block of the piece overlaps a wall or a
// settled cell. Used both to validate prospective moves and to detect
// a blocked spawn.
func (b *Board) Collides(pc Piece) bool {
	for _, blk := range pc.Blocks() {
		if b.Occupied(blk) {
			return true
		}
	}
	return false
}

// Lock settles the piece onto the board, tagging each covered cell
// with the piece's shape. Out-of-bounds blocks are skipped; they
// should not occur after the usual collision checks.
func (b *Board) Lock(pc Piece) {
	for _, blk := range pc.Blocks() {
		if !b.Inside(blk) {
			continue
		}
		b.cells[blk.Y][blk.X] = BoardCell{Occupied: true, Shape: pc.Shape()}
	}
}

// ClearLines removes every full row and compacts the remaining rows
// downward, preserving their relative order. Vacated top rows become
// empty. Returns the number of rows cleared.
func (b *Board) ClearLines() int {
	full := make(map[int]bool)
	for y := 0; y < Rows; y++ {
		fullRow := true
		for x := 0; x < Cols; x++ {
			if !b.cells[y][x].Occupied {
				fullRow = false
				break
			}
		}
		if fullRow {
			full[y] = true
		}
	}

	if len(full) == 0 {
		return 0
	}

	var compacted [Rows][Cols]BoardCell
	target := Rows - 1
	for y := Rows - 1; y >= 0; y-- {
		if full[y] {
			continue
		}
		compacted[target] = b.cells[y]
		target--
	}

	b.cells = compacted
	return len(full)
}

// Ghost returns a copy of the piece dropped straight down to its
// resting position: translated one row at a time until the next step
// would collide. Neither the board nor the input piece is mutated.
func (b *Board) Ghost(pc Piece) Piece {
	for !b.Collides(pc.Moved(core.Down)) {
		pc = pc.Moved(core.Down)
	}
	return pc
}

// OccupiedCount returns the number of settled cells on the board.
func (b *Board) OccupiedCount() int {
	count := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if b.cells[y][x].Occupied {
				count++
			}
		}
	}
	return count
}
