// Package console runs the game on a raw tcell screen. It is the
// lightweight terminal frontend: no Bubble Tea program, just an event loop
// selecting over key events, a wall-clock tick timer and the mouth flash.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/gridsnake/internal/audio"
	"github.com/vovakirdan/gridsnake/internal/clock"
	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// Options configures a console session.
type Options struct {
	Config config.SnakeConfig
	Seed   int64
	Store  *storage.Store // Nil keeps the best score in memory only
	Player audio.Player   // Nil is silent
	Logger *log.Logger
}

// app owns the engine and everything the loop touches. All fields are
// used from the loop goroutine only.
type app struct {
	screen tcell.Screen
	engine *snake.Engine
	timer  *clock.Timer
	buf    *core.Screen
	render snake.RenderOptions
	logger *log.Logger

	flash        snake.Flash
	mouthOpen    time.Duration
	flashC       <-chan time.Time
	flashSession uint64
}

// Run plays on the controlling terminal until the user exits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: cannot init screen: %w", err)
	}
	defer screen.Fini()

	a := newApp(screen, opts)
	defer a.timer.Stop()
	return a.loop(ctx)
}

func newApp(screen tcell.Screen, opts Options) *app {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == nil {
		player = audio.Nop{}
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	w, h := screen.Size()

	a := &app{
		screen: screen,
		timer:  clock.NewTimer(),
		buf:    core.NewScreen(w, h),
		render: snake.RenderOptions{
			SnakeColor: opts.Config.SnakeColor(),
			FoodColor:  opts.Config.FoodColor(),
		},
		logger:    logger,
		mouthOpen: time.Duration(opts.Config.Appearance.MouthOpenMs) * time.Millisecond,
	}

	engineOpts := []snake.Option{
		snake.WithScheduler(a.timer),
		snake.WithLogger(logger),
		snake.WithListener(a.onEvent),
		snake.WithListener(audio.Listener(player)),
	}
	if opts.Store != nil {
		engineOpts = append(engineOpts,
			snake.WithHighScoreStore(storage.NewHighScoreSlot(opts.Store)),
			snake.WithScoreRecorder(opts.Store),
		)
	} else {
		engineOpts = append(engineOpts, snake.WithHighScoreStore(&snake.MemoryHighScore{}))
	}
	a.engine = snake.NewEngine(snake.ConfigFrom(opts.Config, opts.Seed), engineOpts...)
	return a
}

// onEvent opens the mouth after eating. The clear arrives on flashC.
func (a *app) onEvent(ev snake.Event) {
	ate, ok := ev.(snake.AteEvent)
	if !ok || a.mouthOpen <= 0 {
		return
	}
	a.flashSession = ate.State.Session
	a.flash.Trigger(a.flashSession, time.Now().Add(a.mouthOpen))
	a.flashC = time.After(a.mouthOpen)
}

func (a *app) loop(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	events := pollEvents(a.screen, done)

	for {
		a.draw()

		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev) {
				return nil
			}

		case tick := <-a.timer.C():
			if a.timer.Live(tick) {
				a.engine.Tick()
			}

		case now := <-a.flashC:
			a.flashC = nil
			a.flash.Clear(a.flashSession, now)
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// handleEvent applies one screen event. It reports whether to exit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.buf.Resize(w, h)
		a.screen.Sync()
		return false

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		action := actionFor(ev.Key(), ev.Rune())
		// Quit abandons a game; from Idle it leaves the program
		if action == core.ActionQuit && a.engine.Phase() == snake.PhaseIdle {
			return true
		}
		if action != core.ActionNone {
			a.engine.Apply(action)
		}
	}
	return false
}

func (a *app) draw() {
	snap := a.engine.Snapshot()
	opts := a.render
	opts.MouthOpen = a.flash.Active(snap.Session, time.Now())
	snake.RenderSnapshot(a.buf, snap, opts)
	blit(a.screen, a.buf)
	a.screen.Show()
}
