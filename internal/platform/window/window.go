// Package window runs the game in a desktop window with Ebitengine. The
// board is drawn with vector shapes at its configured pixel size and ticks
// are counted from frames by a clock.Frame.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/gridsnake/internal/audio"
	"github.com/vovakirdan/gridsnake/internal/clock"
	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// hudHeight is the pixel height of the score bar above the board.
const hudHeight = 16

// Options configures a window session.
type Options struct {
	Config config.SnakeConfig
	Seed   int64
	Store  *storage.Store // Nil keeps the best score in memory only
	Player audio.Player   // Nil is silent
	Logger *log.Logger
	Scale  int // Window pixels per board pixel, at least 1
}

// Game implements ebiten.Game around a snake engine.
type Game struct {
	engine *snake.Engine
	frame  *clock.Frame
	grid   snake.Grid
	logger *log.Logger

	snakeColor color.RGBA
	foodColor  color.RGBA

	flash     snake.Flash
	mouthOpen time.Duration
	now       func() time.Time
}

// NewGame creates an idle game.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == nil {
		player = audio.Nop{}
	}

	g := &Game{
		frame:      &clock.Frame{},
		logger:     logger,
		snakeColor: opts.Config.SnakeColor().ToRGBA(),
		foodColor:  opts.Config.FoodColor().ToRGBA(),
		mouthOpen:  time.Duration(opts.Config.Appearance.MouthOpenMs) * time.Millisecond,
		now:        time.Now,
	}

	engineOpts := []snake.Option{
		snake.WithScheduler(g.frame),
		snake.WithLogger(logger),
		snake.WithListener(g.onEvent),
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
	cfg := snake.ConfigFrom(opts.Config, opts.Seed)
	g.grid = cfg.Grid
	g.engine = snake.NewEngine(cfg, engineOpts...)
	return g
}

// Engine returns the engine driven by this game.
func (g *Game) Engine() *snake.Engine {
	return g.engine
}

// onEvent opens the mouth after eating. Draw closes it once the deadline
// has passed.
func (g *Game) onEvent(ev snake.Event) {
	if ate, ok := ev.(snake.AteEvent); ok && g.mouthOpen > 0 {
		g.flash.Trigger(ate.State.Session, g.now().Add(g.mouthOpen))
	}
}

// Update reads input and advances the frame clock. It is called TPS times
// per second.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && g.engine.Phase() == snake.PhaseIdle {
		return ebiten.Termination
	}
	for _, a := range pressedActions() {
		g.engine.Apply(a)
	}
	g.step(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// step runs one frame of dt and ticks the engine when an interval is due.
func (g *Game) step(dt time.Duration) {
	if g.frame.Advance(dt) {
		g.engine.Tick()
	}
	g.flash.Clear(g.engine.Session(), g.now())
}

// Layout returns the fixed logical size of the board plus the score bar.
func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenSize(g.grid)
}

// ScreenSize returns the logical pixel size of the window for grid.
func ScreenSize(grid snake.Grid) (w, h int) {
	return grid.Width, grid.Height + hudHeight
}

// Run opens the window and plays until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)

	w, h := ScreenSize(g.grid)
	scale := max(opts.Scale, 1)
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle("Snake")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// keyActions maps window keys to actions, in the order they are checked.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyEnter, core.ActionStart},
	{ebiten.KeySpace, core.ActionStart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
}

// pressedActions returns the actions of keys pressed since the last frame.
func pressedActions() []core.Action {
	var actions []core.Action
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			actions = append(actions, ka.action)
		}
	}
	return actions
}

// drawText prints centered debug text at y.
func drawText(dst *ebiten.Image, text string, y int) {
	w := dst.Bounds().Dx()
	x := core.Clamp(w/2-len(text)*6/2, 0, w)
	ebitenutil.DebugPrintAt(dst, text, x, y)
}
