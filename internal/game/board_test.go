package game

import (
	"testing"

	"github.com/mkraev/tetrois/internal/core"
)

// fillRow occupies a whole row except the listed columns.
func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool)
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < Cols; x++ {
		if !skip[x] {
			b.cells[y][x] = BoardCell{Occupied: true, Shape: ShapeI}
		}
	}
}

func TestOccupiedWallSemantics(t *testing.T) {
	var b Board

	tests := []struct {
		name string
		pos  core.Offset
		want bool
	}{
		{"inside empty", core.Offset{X: 5, Y: 10}, false},
		{"left wall", core.Offset{X: -1, Y: 5}, true},
		{"right wall", core.Offset{X: Cols, Y: 5}, true},
		{"above top", core.Offset{X: 5, Y: -1}, true},
		{"below floor", core.Offset{X: 5, Y: Rows}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Occupied(tt.pos); got != tt.want {
				t.Errorf("Occupied(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestLockTagsCells(t *testing.T) {
	var b Board
	p := NewPiece(ShapeT).Moved(core.Offset{Y: 5})

	b.Lock(p)

	for _, blk := range p.Blocks() {
		cell := b.At(blk)
		if !cell.Occupied {
			t.Errorf("cell %v not occupied after Lock", blk)
		}
		if cell.Shape != ShapeT {
			t.Errorf("cell %v tagged %v, want %v", blk, cell.Shape, ShapeT)
		}
	}

	if b.OccupiedCount() != 4 {
		t.Errorf("OccupiedCount() = %d, want 4", b.OccupiedCount())
	}
}

func TestCollides(t *testing.T) {
	var b Board
	b.cells[1][5] = BoardCell{Occupied: true, Shape: ShapeZ}

	p := NewPiece(ShapeO) // Covers (4,0) (5,0) (4,1) (5,1)
	if !b.Collides(p) {
		t.Error("piece overlapping settled cell should collide")
	}

	if b.Collides(p.Moved(core.Offset{X: -2})) {
		t.Error("piece in empty area should not collide")
	}

	if !b.Collides(p.Moved(core.Offset{X: -5})) {
		t.Error("piece past the left wall should collide")
	}
}

func TestClearLinesEmpty(t *testing.T) {
	var b Board
	if got := b.ClearLines(); got != 0 {
		t.Errorf("ClearLines() on empty board = %d, want 0", got)
	}
	if b.OccupiedCount() != 0 {
		t.Error("empty board changed by ClearLines")
	}
}

func TestClearLinesPartialRowSurvives(t *testing.T) {
	var b Board
	fillRow(&b, 19, 0) // One gap

	if got := b.ClearLines(); got != 0 {
		t.Errorf("ClearLines() = %d, want 0 for partial row", got)
	}
	if b.OccupiedCount() != Cols-1 {
		t.Error("partial row must survive intact")
	}
}

func TestClearLinesSingleRowShiftsDown(t *testing.T) {
	var b Board
	fillRow(&b, 19)
	// A lone marker two rows above the full row
	b.cells[17][3] = BoardCell{Occupied: true, Shape: ShapeT}

	if got := b.ClearLines(); got != 1 {
		t.Fatalf("ClearLines() = %d, want 1", got)
	}

	if b.OccupiedCount() != 1 {
		t.Errorf("OccupiedCount() = %d, want 1", b.OccupiedCount())
	}

	// Marker dropped one row and kept its tag
	cell := b.At(core.Offset{X: 3, Y: 18})
	if !cell.Occupied || cell.Shape != ShapeT {
		t.Errorf("marker cell = %+v, want occupied T at (3,18)", cell)
	}
	if b.At(core.Offset{X: 3, Y: 17}).Occupied {
		t.Error("original marker position should be vacated")
	}
}

func TestClearLinesMultipleRows(t *testing.T) {
	var b Board
	fillRow(&b, 19)
	fillRow(&b, 18)
	fillRow(&b, 16) // Non-adjacent full row
	b.cells[15][7] = BoardCell{Occupied: true, Shape: ShapeL}

	before := b.OccupiedCount()
	cleared := b.ClearLines()

	if cleared != 3 {
		t.Fatalf("ClearLines() = %d, want 3", cleared)
	}
	if got := before - b.OccupiedCount(); got != 3*Cols {
		t.Errorf("removed %d cells, want %d", got, 3*Cols)
	}

	// The marker above all cleared rows falls by three
	cell := b.At(core.Offset{X: 7, Y: 18})
	if !cell.Occupied || cell.Shape != ShapeL {
		t.Errorf("marker cell = %+v, want occupied L at (7,18)", cell)
	}
}

func TestClearLinesKeepsRelativeOrder(t *testing.T) {
	var b Board
	fillRow(&b, 19)
	b.cells[18][2] = BoardCell{Occupied: true, Shape: ShapeS}
	b.cells[17][2] = BoardCell{Occupied: true, Shape: ShapeZ}

	b.ClearLines()

	if b.At(core.Offset{X: 2, Y: 19}).Shape != ShapeS {
		t.Error("lower marker should land on the floor")
	}
	if b.At(core.Offset{X: 2, Y: 18}).Shape != ShapeZ {
		t.Error("upper marker should stay directly above the lower one")
	}
}

func TestGhostRestsOnFloor(t *testing.T) {
	var b Board
	p := NewPiece(ShapeI) // Horizontal at y=0

	ghost := b.Ghost(p)
	for _, blk := range ghost.Blocks() {
		if blk.Y != Rows-1 {
			t.Errorf("ghost block %v should rest on the floor row", blk)
		}
	}
}

func TestGhostRestsOnStack(t *testing.T) {
	var b Board
	fillRow(&b, 19)

	ghost := b.Ghost(NewPiece(ShapeI))
	for _, blk := range ghost.Blocks() {
		if blk.Y != 18 {
			t.Errorf("ghost block %v should rest on top of the stack", blk)
		}
	}
}

func TestGhostIsFixpoint(t *testing.T) {
	var b Board
	fillRow(&b, 19, 0, 1)

	p := NewPiece(ShapeT)
	once := b.Ghost(p)
	twice := b.Ghost(once)

	if once.Blocks() != twice.Blocks() {
		t.Error("Ghost of a resting piece must be the piece itself")
	}
}

func TestGhostDoesNotMutate(t *testing.T) {
	var b Board
	p := NewPiece(ShapeO)

	b.Ghost(p)

	if p.Blocks() != NewPiece(ShapeO).Blocks() {
		t.Error("Ghost mutated the input piece")
	}
	if b.OccupiedCount() != 0 {
		t.Error("Ghost mutated the board")
	}
}
