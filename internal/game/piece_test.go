package game

import (
	"testing"

	"github.com/mkraev/tetrois/internal/core"
)

func TestNewPieceSpawnPositions(t *testing.T) {
	tests := []struct {
		shape  Shape
		blocks [4]core.Offset
	}{
		{ShapeO, [4]core.Offset{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 1}}},
		{ShapeI, [4]core.Offset{{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}}},
		{ShapeT, [4]core.Offset{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 5, Y: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			p := NewPiece(tt.shape)
			if p.Blocks() != tt.blocks {
				t.Errorf("NewPiece(%v).Blocks() = %v, want %v", tt.shape, p.Blocks(), tt.blocks)
			}
			if p.Shape() != tt.shape {
				t.Errorf("Shape() = %v, want %v", p.Shape(), tt.shape)
			}
		})
	}
}

func TestPieceMoved(t *testing.T) {
	p := NewPiece(ShapeT)
	moved := p.Moved(core.Offset{X: 2, Y: 3})

	for i, blk := range moved.Blocks() {
		want := p.Blocks()[i].Add(core.Offset{X: 2, Y: 3})
		if blk != want {
			t.Errorf("block %d = %v, want %v", i, blk, want)
		}
	}

	// Original untouched
	if p.Blocks() != NewPiece(ShapeT).Blocks() {
		t.Error("Moved() mutated the original piece")
	}
}

func TestRotatedOIsIdentity(t *testing.T) {
	p := NewPiece(ShapeO)
	if p.Rotated().Blocks() != p.Blocks() {
		t.Error("O piece must not rotate")
	}
}

func TestRotatedKeepsPivotFixed(t *testing.T) {
	for s := ShapeO; s <= ShapeJ; s++ {
		p := NewPiece(s)
		r := p.Rotated()
		if r.Blocks()[0] != p.Blocks()[0] {
			t.Errorf("%v: pivot moved from %v to %v", s, p.Blocks()[0], r.Blocks()[0])
		}
	}
}

func TestRotatedQuarterTurn(t *testing.T) {
	// T spawns at (4,0) (5,0) (6,0) (5,1) with pivot (4,0).
	// Relative offsets (rx, ry) map to (-ry, rx).
	p := NewPiece(ShapeT).Rotated()

	want := [4]core.Offset{
		{X: 4, Y: 0}, // pivot
		{X: 4, Y: 1},
		{X: 4, Y: 2},
		{X: 3, Y: 1},
	}
	if p.Blocks() != want {
		t.Errorf("T rotated = %v, want %v", p.Blocks(), want)
	}
}

func TestRotatedHalfTurnNegatesOffsets(t *testing.T) {
	for s := ShapeI; s <= ShapeJ; s++ {
		p := NewPiece(s)
		pivot := p.Blocks()[0]
		r := p.Rotated().Rotated()

		for i, blk := range p.Blocks() {
			rel := blk.Sub(pivot)
			want := core.Offset{X: pivot.X - rel.X, Y: pivot.Y - rel.Y}
			if r.Blocks()[i] != want {
				t.Errorf("%v block %d: 180 degrees = %v, want %v", s, i, r.Blocks()[i], want)
			}
		}
	}
}

func TestRotatedFourTimesIsIdentity(t *testing.T) {
	for s := ShapeO; s <= ShapeJ; s++ {
		p := NewPiece(s)
		r := p.Rotated().Rotated().Rotated().Rotated()
		if r.Blocks() != p.Blocks() {
			t.Errorf("%v: four rotations = %v, want %v", s, r.Blocks(), p.Blocks())
		}
	}
}

func TestShapeColorsDistinct(t *testing.T) {
	seen := make(map[core.Color]Shape)
	for s := ShapeO; s <= ShapeJ; s++ {
		c := s.Color()
		if prev, dup := seen[c]; dup {
			t.Errorf("shapes %v and %v share color %v", prev, s, c)
		}
		seen[c] = s
	}
}

func TestShapePreviewsPresent(t *testing.T) {
	for s := ShapeO; s <= ShapeJ; s++ {
		if len(s.Preview()) == 0 {
			t.Errorf("%v has no preview", s)
		}
	}
}
