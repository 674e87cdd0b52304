package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// InputMapper buffers the most recent valid direction request until the
// next tick takes it. It is not a queue: a later request overwrites an
// earlier one.
type InputMapper struct {
	pending    Direction
	hasPending bool
}

// Request buffers d unless it reverses current. It reports whether the
// request was kept.
func (m *InputMapper) Request(d, current Direction) bool {
	if d.IsOpposite(current) {
		return false
	}
	m.pending = d
	m.hasPending = true
	return true
}

// Take returns the buffered direction and clears the buffer.
func (m *InputMapper) Take() (Direction, bool) {
	d, ok := m.pending, m.hasPending
	m.Reset()
	return d, ok
}

// Peek returns the buffered direction without clearing it.
func (m *InputMapper) Peek() (Direction, bool) {
	return m.pending, m.hasPending
}

// Reset drops any buffered direction.
func (m *InputMapper) Reset() {
	m.pending = DirRight
	m.hasPending = false
}

// DirectionFor maps a directional action to a direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}
