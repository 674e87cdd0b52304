package snake

// Phase is the engine's state-machine state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome is the result of a single tick.
type Outcome int

const (
	OutcomeNone Outcome = iota // Not running
	OutcomeMoved
	OutcomeAte
	OutcomeCollided
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	default:
		return "none"
	}
}

// Event is emitted by the engine to its listeners.
// Concrete types: MovedEvent, AteEvent, CollidedEvent, PhaseChangedEvent.
type Event interface {
	engineEvent()
}

// MovedEvent is emitted after a tick that moved without eating.
type MovedEvent struct {
	State Snapshot
}

// AteEvent is emitted after a tick that consumed food.
type AteEvent struct {
	State        Snapshot
	NewHighScore bool // Score passed the previous best on this tick
}

// CollidedEvent is emitted when the game ends.
type CollidedEvent struct {
	State Snapshot
	Cause Cause
}

// PhaseChangedEvent is emitted on every phase transition.
type PhaseChangedEvent struct {
	From    Phase
	To      Phase
	Session uint64
}

func (MovedEvent) engineEvent()        {}
func (AteEvent) engineEvent()          {}
func (CollidedEvent) engineEvent()     {}
func (PhaseChangedEvent) engineEvent() {}

// Listener receives engine events. Listeners run synchronously on the
// caller's goroutine and must not call back into the engine.
type Listener func(Event)
