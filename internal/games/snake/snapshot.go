package snake

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is a read-only copy of the game state handed to renderers and
// listeners.
type Snapshot struct {
	Grid       Grid
	Snake      []Cell // Head at index 0, nil while idle
	Direction  Direction
	Pending    Direction
	HasPending bool
	Food       Cell
	Score      int
	HighScore  int
	IntervalMs float64
	Phase      Phase
	Cause      Cause // Set once the game is over
	Session    uint64
	RunID      uuid.UUID
	Ticks      uint64
}

// Interval returns the tick interval as a duration.
func (s Snapshot) Interval() time.Duration {
	return msToDuration(s.IntervalMs)
}

// Head returns the head cell, if there is a snake.
func (s Snapshot) Head() (Cell, bool) {
	if len(s.Snake) == 0 {
		return Cell{}, false
	}
	return s.Snake[0], true
}

// Length returns the number of segments.
func (s Snapshot) Length() int {
	return len(s.Snake)
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	pending, hasPending := e.input.Peek()
	return Snapshot{
		Grid:       e.grid,
		Snake:      e.state.snake.Cells(),
		Direction:  e.state.direction,
		Pending:    pending,
		HasPending: hasPending,
		Food:       e.state.food,
		Score:      e.state.score,
		HighScore:  e.highScore,
		IntervalMs: e.state.intervalMs,
		Phase:      e.state.phase,
		Cause:      e.state.cause,
		Session:    e.session,
		RunID:      e.state.runID,
		Ticks:      e.state.ticks,
	}
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
