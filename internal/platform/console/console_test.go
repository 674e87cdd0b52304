package console

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want core.Action
	}{
		{"arrow up", tcell.KeyUp, 0, core.ActionUp},
		{"arrow left", tcell.KeyLeft, 0, core.ActionLeft},
		{"w", tcell.KeyRune, 'w', core.ActionUp},
		{"vi down", tcell.KeyRune, 'j', core.ActionDown},
		{"vi right", tcell.KeyRune, 'l', core.ActionRight},
		{"enter", tcell.KeyEnter, 0, core.ActionStart},
		{"space", tcell.KeyRune, ' ', core.ActionStart},
		{"escape", tcell.KeyEscape, 0, core.ActionPause},
		{"p", tcell.KeyRune, 'p', core.ActionPause},
		{"restart", tcell.KeyRune, 'R', core.ActionRestart},
		{"quit", tcell.KeyRune, 'q', core.ActionQuit},
		{"unbound rune", tcell.KeyRune, 'x', core.ActionNone},
		{"unbound key", tcell.KeyTab, 0, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionFor(tt.key, tt.r); got != tt.want {
				t.Errorf("actionFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStyleForDefault(t *testing.T) {
	if styleFor(core.ColorDefault) != tcell.StyleDefault {
		t.Error("default color should keep the terminal's default style")
	}
	if styleFor(core.ColorGreen) == tcell.StyleDefault {
		t.Error("named color should set a foreground")
	}
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestBlit(t *testing.T) {
	screen := newSimScreen(t, 4, 2)

	buf := core.NewScreen(6, 3)
	buf.DrawText(0, 0, "snake!")
	buf.SetWithColor(1, 1, '@', core.ColorGreen)
	blit(screen, buf)

	want := "snak"
	for x, r := range want {
		got, _, _, _ := screen.GetContent(x, 0)
		if got != r {
			t.Errorf("cell (%d,0) = %q, want %q", x, got, r)
		}
	}
	got, _, style, _ := screen.GetContent(1, 1)
	if got != '@' || style != styleFor(core.ColorGreen) {
		t.Errorf("cell (1,1) = %q/%v, want green @", got, style)
	}
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	screen := newSimScreen(t, 60, 30)
	a := newApp(screen, Options{Config: config.DefaultSnakeConfig(), Seed: 3})
	t.Cleanup(a.timer.Stop)
	return a
}

func TestAppDrawsIdleOverlay(t *testing.T) {
	a := newTestApp(t)
	a.draw()

	found := false
	for y := range a.buf.Height() {
		if strings.Contains(a.buf.Row(y), "Press Enter to start") {
			found = true
		}
	}
	if !found {
		t.Error("idle screen should show the start prompt")
	}
}

func TestAppResize(t *testing.T) {
	a := newTestApp(t)
	if a.handleEvent(tcell.NewEventResize(30, 12)) {
		t.Fatal("resize should not exit")
	}
	if a.buf.Width() != 30 || a.buf.Height() != 12 {
		t.Errorf("buffer = %dx%d, want 30x12", a.buf.Width(), a.buf.Height())
	}
}

func TestAppFlash(t *testing.T) {
	a := newTestApp(t)
	a.mouthOpen = 0
	a.engine.Start()

	// Disabled flash never arms the clear channel
	a.onEvent(snake.AteEvent{State: a.engine.Snapshot()})
	if a.flashC != nil {
		t.Error("zero mouth duration should not schedule a clear")
	}

	a.mouthOpen = 50 * time.Millisecond
	a.onEvent(snake.AteEvent{State: a.engine.Snapshot()})
	if a.flashC == nil || a.flashSession != a.engine.Session() {
		t.Error("eating should schedule a clear for the current session")
	}
}
