package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Cause says what ended a game.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// Collision reports why head collides, or CauseNone.
// body is the body with head already at index 0; only indices 1..N-1 are
// compared, so the head never collides with itself.
func Collision(head Cell, body []Cell, bounds core.Rect) Cause {
	if !bounds.Contains(head.X, head.Y) {
		return CauseWall
	}
	for i := 1; i < len(body); i++ {
		if body[i] == head {
			return CauseSelf
		}
	}
	return CauseNone
}

// IsColliding reports whether head is off the board or on a body segment.
func IsColliding(head Cell, body []Cell, bounds core.Rect) bool {
	return Collision(head, body, bounds) != CauseNone
}
