package snake

// Body is the snake's segments, head first.
type Body []Cell

// NewBody lays out a straight snake of the given length with its head at
// head and the rest trailing to the left.
func NewBody(grid Grid, head Cell, length int) Body {
	b := make(Body, length)
	for i := range b {
		b[i] = Cell{X: head.X - i*grid.Size, Y: head.Y}
	}
	return b
}

// Head returns the first segment.
func (b Body) Head() Cell {
	return b[0]
}

// Tail returns the last segment.
func (b Body) Tail() Cell {
	return b[len(b)-1]
}

// Moved returns a new body with newHead prepended. The tail is dropped
// unless grow is set. The receiver is not modified.
func (b Body) Moved(newHead Cell, grow bool) Body {
	keep := len(b)
	if !grow {
		keep--
	}
	next := make(Body, 0, keep+1)
	next = append(next, newHead)
	return append(next, b[:keep]...)
}

// Contains checks if any segment occupies c.
func (b Body) Contains(c Cell) bool {
	for _, seg := range b {
		if seg == c {
			return true
		}
	}
	return false
}

// Cells returns a copy of the segments.
func (b Body) Cells() []Cell {
	if b == nil {
		return nil
	}
	out := make([]Cell, len(b))
	copy(out, b)
	return out
}
