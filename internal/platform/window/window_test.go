package window

import (
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	cfg.Speed.MinIntervalMs = 0
	return NewGame(Options{Config: cfg, Seed: 11})
}

func TestScreenSize(t *testing.T) {
	w, h := ScreenSize(snake.NewGrid(480, 400, 20))
	if w != 480 || h != 400+hudHeight {
		t.Errorf("ScreenSize() = %dx%d, want 480x%d", w, h, 400+hudHeight)
	}
}

func TestStepTicksOnInterval(t *testing.T) {
	g := newTestGame(t)
	g.step(time.Second)
	if got := g.engine.Snapshot().Ticks; got != 0 {
		t.Fatalf("idle game ticked %d times", got)
	}

	g.engine.Start()
	frame := time.Second / 60

	// 200ms base interval: twelve 60 Hz frames are not enough, thirteen are
	for range 12 {
		g.step(frame)
	}
	if got := g.engine.Snapshot().Ticks; got != 0 {
		t.Fatalf("ticks after 12 frames = %d, want 0", got)
	}
	g.step(frame)
	if got := g.engine.Snapshot().Ticks; got != 1 {
		t.Fatalf("ticks after 13 frames = %d, want 1", got)
	}
}

func TestStepPausedDoesNotTick(t *testing.T) {
	g := newTestGame(t)
	g.engine.Start()
	g.engine.Apply(core.ActionPause)

	for range 60 {
		g.step(time.Second / 60)
	}
	if got := g.engine.Snapshot().Ticks; got != 0 {
		t.Errorf("paused game ticked %d times", got)
	}
}

func TestFlashClosesAfterDeadline(t *testing.T) {
	g := newTestGame(t)
	now := time.Unix(1000, 0)
	g.now = func() time.Time { return now }
	g.engine.Start()
	session := g.engine.Session()

	g.onEvent(snake.AteEvent{State: g.engine.Snapshot()})
	if !g.flash.Active(session, now) {
		t.Fatal("eating should open the mouth")
	}

	now = now.Add(g.mouthOpen / 2)
	g.step(0)
	if !g.flash.Active(session, now) {
		t.Error("mouth closed before its deadline")
	}

	now = now.Add(g.mouthOpen)
	g.step(0)
	if g.flash.Active(session, now) {
		t.Error("mouth still open after its deadline")
	}
}

func TestKeyActionsCoverSteering(t *testing.T) {
	seen := map[core.Action]bool{}
	for _, ka := range keyActions {
		seen[ka.action] = true
	}
	for _, a := range []core.Action{
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionStart, core.ActionPause, core.ActionRestart, core.ActionQuit,
	} {
		if !seen[a] {
			t.Errorf("no key bound to %v", a)
		}
	}
}

func TestCauseText(t *testing.T) {
	if causeText(snake.CauseWall) == "" || causeText(snake.CauseSelf) == "" {
		t.Error("collision causes should have overlay text")
	}
	if causeText(snake.CauseNone) != "" {
		t.Error("no cause should have no text")
	}
}
