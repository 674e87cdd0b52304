// Package tui provides the Bubble Tea frontend for the snake game.
// It handles the terminal UI loop, key bindings, the scoreboard and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an engine tick. Gen identifies the arm that
// produced it; ticks from an earlier arm are dropped.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// teaScheduler drives the engine from Bubble Tea's message loop. Arm and
// Stop are called from inside Update, so the next tick command is parked
// in pending until Update returns it.
type teaScheduler struct {
	gen      uint64
	interval time.Duration
	armed    bool
	pending  tea.Cmd
}

func (s *teaScheduler) Arm(interval time.Duration) {
	s.gen++
	s.interval = interval
	s.armed = true
	s.pending = tickCmd(s.gen, interval)
}

func (s *teaScheduler) Stop() {
	s.gen++
	s.armed = false
	s.pending = nil
}

// Consume reports whether msg belongs to the live schedule. A live tick
// queues the next one at the same interval; Arm or Stop during the tick
// replaces it.
func (s *teaScheduler) Consume(msg TickMsg) bool {
	if !s.armed || msg.Gen != s.gen {
		return false
	}
	s.pending = tickCmd(s.gen, s.interval)
	return true
}

// Take returns the parked tick command, if any.
func (s *teaScheduler) Take() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
