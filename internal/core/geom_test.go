package core

import "testing"

func TestNeighbors8(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		w, h     int
		expected int
	}{
		{"interior", Pt(1, 1), 3, 3, 8},
		{"top-left corner", Pt(0, 0), 3, 3, 3},
		{"bottom-right corner", Pt(2, 2), 3, 3, 3},
		{"top edge", Pt(1, 0), 3, 3, 5},
		{"single cell board", Pt(0, 0), 1, 1, 0},
		{"single row", Pt(2, 0), 5, 1, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Neighbors8(nil, tc.p, tc.w, tc.h)
			if len(got) != tc.expected {
				t.Errorf("Neighbors8(%v) returned %d cells, expected %d", tc.p, len(got), tc.expected)
			}
			for _, n := range got {
				if !n.In(tc.w, tc.h) {
					t.Errorf("neighbour %v is out of bounds", n)
				}
				if n == tc.p {
					t.Errorf("neighbour list contains the cell itself")
				}
			}
		})
	}
}

func TestPointIndexRoundTrip(t *testing.T) {
	const w, h = 7, 4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := Pt(x, y)
			if got := PointAt(p.Index(w), w); got != p {
				t.Errorf("PointAt(Index(%v)) = %v", p, got)
			}
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{0, 2, 0},
		{3, 2, 1},
		{-1, 2, 1},
		{-2, 4, 2},
		{5, 0, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, got, tc.expected)
		}
	}
}
