package core

// Action represents a semantic game command, abstracted from physical key
// presses. Every frontend translates its own key events into actions so the
// engine never sees a backend-specific key type.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionStart          // Enter, Space - start a new game from idle or game over
	ActionPause          // P - toggle pause/resume
	ActionResume         // explicit resume (resume button)
	ActionRestart        // R - restart from any phase
	ActionQuit           // Q - abandon the current game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
