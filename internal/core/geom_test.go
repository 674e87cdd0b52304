package core

import "testing"

func TestRectContains(t *testing.T) {
	board := NewRect(0, 0, 480, 480)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"inside", 200, 200, true},
		{"last cell", 460, 460, true},
		{"right edge (exclusive)", 480, 200, false},
		{"bottom edge (exclusive)", 200, 480, false},
		{"negative x", -20, 200, false},
		{"negative y", 200, -20, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := board.Contains(tc.x, tc.y)
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

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	// Insetting past zero collapses instead of going negative
	r = NewRect(0, 0, 2, 2).Inset(3)
	if r.W != 0 || r.H != 0 {
		t.Errorf("Inset(3) should collapse to zero size, got %+v", r)
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
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
