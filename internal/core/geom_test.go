package core

import "testing"

func TestOffsetAddSub(t *testing.T) {
	a := Offset{X: 3, Y: 5}
	b := Offset{X: -1, Y: 2}

	if got := a.Add(b); got != (Offset{X: 2, Y: 7}) {
		t.Errorf("Add = %v, want {2 7}", got)
	}
	if got := a.Sub(b); got != (Offset{X: 4, Y: 3}) {
		t.Errorf("Sub = %v, want {4 3}", got)
	}

	// Round trip
	if got := a.Add(b).Sub(b); got != a {
		t.Errorf("Add then Sub = %v, want %v", got, a)
	}
}

func TestUnitDirections(t *testing.T) {
	origin := Offset{X: 5, Y: 5}

	tests := []struct {
		name string
		dir  Offset
		want Offset
	}{
		{"down", Down, Offset{X: 5, Y: 6}},
		{"up", Up, Offset{X: 5, Y: 4}},
		{"left", Left, Offset{X: 4, Y: 5}},
		{"right", Right, Offset{X: 6, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := origin.Add(tt.dir); got != tt.want {
				t.Errorf("origin.Add(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-7) != 7 || Abs(7) != 7 || Abs(0) != 0 {
		t.Error("Abs gave wrong results")
	}
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min gave wrong results")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max gave wrong results")
	}
}
