package core

import "testing"

func TestGridInBounds(t *testing.T) {
	g := NewGrid(40, 25)

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{name: "origin", cell: Cell{0, 0}, expected: true},
		{name: "far corner", cell: Cell{39, 24}, expected: true},
		{name: "centre", cell: Cell{20, 12}, expected: true},
		{name: "left of grid", cell: Cell{-1, 5}, expected: false},
		{name: "above grid", cell: Cell{5, -1}, expected: false},
		{name: "right edge + 1", cell: Cell{40, 0}, expected: false},
		{name: "bottom edge + 1", cell: Cell{0, 25}, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.cell); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestGridDimensions(t *testing.T) {
	g := NewGrid(40, 25)

	if g.Width() != 40 || g.Height() != 25 {
		t.Errorf("dimensions = %dx%d, expected 40x25", g.Width(), g.Height())
	}
	if g.Area() != 1000 {
		t.Errorf("Area() = %d, expected 1000", g.Area())
	}
	if c := g.Center(); c != (Cell{20, 12}) {
		t.Errorf("Center() = %v, expected (20,12)", c)
	}
}

func TestCellAdd(t *testing.T) {
	start := Cell{5, 5}

	tests := []struct {
		dir      Direction
		expected Cell
	}{
		{DirUp, Cell{5, 4}},
		{DirDown, Cell{5, 6}},
		{DirLeft, Cell{4, 5}},
		{DirRight, Cell{6, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := start.Add(tc.dir); got != tc.expected {
				t.Errorf("Add(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
	}
}

func TestCommandDirection(t *testing.T) {
	if d, ok := CmdMoveLeft.Direction(); !ok || d != DirLeft {
		t.Errorf("CmdMoveLeft.Direction() = %v, %v", d, ok)
	}
	if _, ok := CmdPauseToggle.Direction(); ok {
		t.Error("CmdPauseToggle should carry no direction")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
