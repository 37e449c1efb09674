package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(2, 3, '#', ColorCyan)

	cell := s.GetCell(2, 3)
	if cell.Rune != '#' {
		t.Errorf("GetCell rune = %q, expected '#'", cell.Rune)
	}
	if cell.Color != ColorCyan {
		t.Errorf("GetCell color = %v, expected cyan", cell.Color)
	}

	// Out of bounds returns a blank default cell
	if got := s.GetCell(-1, -1); got != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Errorf("out of bounds GetCell = %+v, expected blank default", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank default at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(3, 3, 'X')
	s.Set(9, 9, 'Y')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("after resize: %dx%d, expected 5x5", s.Width(), s.Height())
	}
	if s.Get(3, 3) != 'X' {
		t.Error("content within new bounds should be preserved")
	}
	if s.Get(9, 9) != ' ' {
		t.Error("content outside new bounds should be dropped")
	}

	s.Resize(20, 20)
	if s.Get(3, 3) != 'X' {
		t.Error("content should survive growing the screen")
	}
	if s.Get(15, 15) != ' ' {
		t.Error("new area should be blank")
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")
	if !strings.Contains(s.Row(1), "hello") {
		t.Errorf("Row(1) = %q, expected to contain 'hello'", s.Row(1))
	}

	// Clipped at the right edge, no panic
	s.DrawText(18, 2, "clip")
	if s.Get(18, 2) != 'c' || s.Get(19, 2) != 'l' {
		t.Error("text should be drawn up to the edge")
	}
}

func TestDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawTextColored(0, 0, "hi", ColorGreen)

	if s.GetCell(0, 0).Color != ColorGreen || s.GetCell(1, 0).Color != ColorGreen {
		t.Error("colored text should carry its color")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc")
	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("Row(1) = %q, text not centered", s.Row(1))
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawBox(1, 1, 5, 4)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("top corners not drawn")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("bottom corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(3, 4) != '─' {
		t.Error("horizontal edges not drawn")
	}
	if s.Get(1, 2) != '│' || s.Get(5, 3) != '│' {
		t.Error("vertical edges not drawn")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should remain untouched")
	}
}

func TestDrawLines(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawHLine(1, 0, 5, '=')
	for x := 1; x < 6; x++ {
		if s.Get(x, 0) != '=' {
			t.Errorf("DrawHLine missing at x=%d", x)
		}
	}

	s.DrawVLine(0, 1, 5, '|')
	for y := 1; y < 6; y++ {
		if s.Get(0, y) != '|' {
			t.Errorf("DrawVLine missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	want := "ab \ncd "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "test")

	if got := s.Row(0); got != "test" {
		t.Errorf("Row(0) = %q, want %q", got, "test")
	}
	if got := s.Row(5); got != "    " {
		t.Errorf("out of bounds Row = %q, want blank row", got)
	}
}
