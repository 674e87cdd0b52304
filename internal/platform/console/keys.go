package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// actionFor maps a key to a game action. Arrows, WASD and the vi keys
// steer; anything unbound maps to ActionNone.
func actionFor(k tcell.Key, r rune) core.Action {
	switch k {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEnter:
		return core.ActionStart
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyRune:
		return runeAction(r)
	}
	return core.ActionNone
}

func runeAction(r rune) core.Action {
	switch r {
	case 'w', 'W', 'k':
		return core.ActionUp
	case 's', 'S', 'j':
		return core.ActionDown
	case 'a', 'A', 'h':
		return core.ActionLeft
	case 'd', 'D', 'l':
		return core.ActionRight
	case ' ':
		return core.ActionStart
	case 'p', 'P':
		return core.ActionPause
	case 'r', 'R':
		return core.ActionRestart
	case 'q', 'Q':
		return core.ActionQuit
	}
	return core.ActionNone
}
