package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestRequiredSize(t *testing.T) {
	w, h := RequiredSize(NewGrid(480, 480, 20))
	if w != 50 || h != 27 {
		t.Errorf("RequiredSize = %dx%d, want 50x27", w, h)
	}
}

func TestRenderRunning(t *testing.T) {
	e, _ := newTestEngine(t, testConfig())
	e.state.food = Cell{X: 0, Y: 0}

	scr := core.NewScreen(50, 27)
	opts := DefaultRenderOptions()
	opts.SnakeColor = core.ColorCyan
	RenderSnapshot(scr, e.Snapshot(), opts)

	if !strings.Contains(scr.Row(0), "Score: 0") || !strings.Contains(scr.Row(0), "Speed: 200ms") {
		t.Errorf("Unexpected HUD %q", scr.Row(0))
	}
	if scr.Get(0, 1) != '┌' || scr.Get(49, 26) != '┘' {
		t.Error("Expected board border")
	}

	// Board origin is (1,2); head (200,200) is column 10, row 10
	head := scr.GetCell(21, 12)
	if head.Rune != '@' || head.Color != core.ColorCyan {
		t.Errorf("Expected cyan head at (21,12), got %q/%v", head.Rune, head.Color)
	}
	if scr.Get(19, 12) != '█' || scr.Get(17, 12) != '█' {
		t.Error("Expected body segments left of the head")
	}
	if scr.Get(1, 2) != '(' || scr.Get(2, 2) != ')' {
		t.Errorf("Expected food at board origin, got %q%q", scr.Get(1, 2), scr.Get(2, 2))
	}

	opts.MouthOpen = true
	RenderSnapshot(scr, e.Snapshot(), opts)
	if scr.Get(21, 12) != 'O' {
		t.Error("Expected open mouth glyph")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
		want  string
	}{
		{"idle", func(e *Engine) { e.Quit() }, "Press Enter to start"},
		{"paused", func(e *Engine) { e.Pause() }, "Paused"},
		{"wall", func(e *Engine) {
			e.state.snake = Body{{X: 460, Y: 0}, {X: 440, Y: 0}, {X: 420, Y: 0}}
			e.Tick()
		}, "hit the wall"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t, testConfig())
			tt.setup(e)

			scr := core.NewScreen(60, 30)
			RenderSnapshot(scr, e.Snapshot(), DefaultRenderOptions())
			if !strings.Contains(scr.String(), tt.want) {
				t.Errorf("Expected %q on screen:\n%s", tt.want, scr.String())
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	e, _ := newTestEngine(t, testConfig())
	scr := core.NewScreen(40, 20)
	RenderSnapshot(scr, e.Snapshot(), DefaultRenderOptions())

	if !strings.Contains(scr.String(), "Window too small") {
		t.Errorf("Expected too-small overlay:\n%s", scr.String())
	}
}
