package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"ctrl+c is not a game action", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("short help should not be empty")
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 11 {
		t.Errorf("full help lists %d bindings, want 11", total)
	}
}
