// Package snake implements the single-player grid snake game: the board
// model, food spawning, collision detection, input buffering and the tick
// engine that ties them together.
//
// The engine is not safe for concurrent use. Frontends call every command
// and Tick from one goroutine and drive ticks through a Scheduler.
package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// Scheduler triggers Engine.Tick at an interval. Arm cancels any pending
// tick before arming the next one, so at most one tick is ever pending.
type Scheduler interface {
	Arm(interval time.Duration)
	Stop()
}

// Config holds the engine's rules.
type Config struct {
	Grid           Grid
	StartHead      Cell
	StartLength    int
	BaseIntervalMs float64
	SpeedupFactor  float64
	MinIntervalMs  float64 // 0 disables the floor
	AvoidSnake     bool
	Seed           int64 // 0 seeds from the clock
}

// ConfigFrom builds engine rules from a loaded game config.
func ConfigFrom(sc config.SnakeConfig, seed int64) Config {
	return Config{
		Grid:           NewGrid(sc.Board.Width, sc.Board.Height, sc.Board.GridSize),
		StartHead:      Cell{X: sc.Snake.HeadX, Y: sc.Snake.HeadY},
		StartLength:    sc.Snake.Length,
		BaseIntervalMs: sc.Speed.BaseIntervalMs,
		SpeedupFactor:  sc.Speed.SpeedupFactor,
		MinIntervalMs:  sc.Speed.MinIntervalMs,
		AvoidSnake:     sc.Food.AvoidSnake,
		Seed:           seed,
	}
}

// DefaultConfig returns the rules of the default board.
func DefaultConfig() Config {
	return ConfigFrom(config.DefaultSnakeConfig(), 0)
}

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler sets the clock that drives ticks.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithHighScoreStore sets where the best score is loaded from and saved to.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(e *Engine) { e.highScores = s }
}

// WithScoreRecorder sets where finished games are recorded.
func WithScoreRecorder(r ScoreRecorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithListener subscribes l before the engine is returned.
func WithListener(l Listener) Option {
	return func(e *Engine) { e.listeners = append(e.listeners, l) }
}

// gameState is discarded on every start and quit. highScore lives on the
// engine and survives it.
type gameState struct {
	snake      Body
	direction  Direction
	food       Cell
	score      int
	intervalMs float64
	phase      Phase
	cause      Cause
	runID      uuid.UUID
	ticks      uint64
}

// Engine owns the game state and advances it one tick at a time.
type Engine struct {
	cfg     Config
	grid    Grid
	rng     *rand.Rand
	spawner *FoodSpawner
	input   InputMapper

	sched      Scheduler
	highScores HighScoreStore
	recorder   ScoreRecorder
	logger     *log.Logger
	listeners  []Listener

	state     gameState
	highScore int
	session   uint64
}

// NewEngine creates an idle engine and loads the persisted high score.
// A missing or unreadable high score counts as zero.
func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:   cfg,
		grid:  cfg.Grid,
		sched: noopScheduler{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e.rng = rand.New(rand.NewSource(seed))
	e.spawner = NewFoodSpawner(e.grid, e.rng, cfg.AvoidSnake)
	e.input.Reset()

	if e.highScores != nil {
		best, err := e.highScores.LoadHighScore()
		switch {
		case err != nil:
			e.logger.Warn("could not load high score, starting from zero", "err", err)
		case best > 0:
			e.highScore = best
		}
	}

	return e
}

// Subscribe registers a listener for engine events.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.state.phase
}

// HighScore returns the best score seen by this engine.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Session returns a counter incremented on every Start.
func (e *Engine) Session() uint64 {
	return e.session
}

// Interval returns the current tick interval.
func (e *Engine) Interval() time.Duration {
	return msToDuration(e.state.intervalMs)
}

// Start begins a new game from Idle or GameOver and arms the scheduler at
// the base interval. It reports false and does nothing in other phases.
func (e *Engine) Start() bool {
	if e.state.phase != PhaseIdle && e.state.phase != PhaseGameOver {
		return false
	}

	from := e.state.phase
	e.session++
	e.input.Reset()
	e.state = gameState{
		snake:      NewBody(e.grid, e.cfg.StartHead, e.cfg.StartLength),
		direction:  DirRight,
		intervalMs: e.cfg.BaseIntervalMs,
		phase:      PhaseRunning,
		runID:      uuid.New(),
	}
	e.state.food = e.spawner.Spawn(e.state.snake)

	e.sched.Arm(e.Interval())
	e.logger.Debug("game started", "session", e.session, "run", e.state.runID, "interval", e.Interval())
	e.emitPhase(from, PhaseRunning)
	return true
}

// Pause freezes a running game. Buffered direction input is kept.
func (e *Engine) Pause() bool {
	if e.state.phase != PhaseRunning {
		return false
	}
	e.sched.Stop()
	e.setPhase(PhasePaused)
	return true
}

// Resume continues a paused game at its current interval.
func (e *Engine) Resume() bool {
	if e.state.phase != PhasePaused {
		return false
	}
	e.setPhase(PhaseRunning)
	e.sched.Arm(e.Interval())
	return true
}

// TogglePause pauses a running game or resumes a paused one.
func (e *Engine) TogglePause() bool {
	if e.state.phase == PhasePaused {
		return e.Resume()
	}
	return e.Pause()
}

// Quit abandons the current game from any phase and returns to Idle.
// The high score is kept.
func (e *Engine) Quit() {
	e.sched.Stop()
	e.input.Reset()
	from := e.state.phase
	e.state = gameState{}
	if from != PhaseIdle {
		e.logger.Debug("game abandoned", "session", e.session)
		e.emitPhase(from, PhaseIdle)
	}
}

// Restart discards the current game and starts a new one.
func (e *Engine) Restart() {
	e.Quit()
	e.Start()
}

// SetDirection buffers a direction change for the next tick. Reversals
// of the committed direction are dropped. Outside a game it does nothing.
func (e *Engine) SetDirection(d Direction) bool {
	if e.state.phase != PhaseRunning && e.state.phase != PhasePaused {
		return false
	}
	return e.input.Request(d, e.state.direction)
}

// Apply dispatches a frontend action to the matching command.
// It reports whether the action changed anything.
func (e *Engine) Apply(a core.Action) bool {
	if d, ok := DirectionFor(a); ok {
		return e.SetDirection(d)
	}

	switch a {
	case core.ActionStart:
		return e.Start()
	case core.ActionPause:
		return e.TogglePause()
	case core.ActionResume:
		return e.Resume()
	case core.ActionRestart:
		e.Restart()
		return true
	case core.ActionQuit:
		if e.state.phase == PhaseIdle {
			return false
		}
		e.Quit()
		return true
	default:
		return false
	}
}

// Tick advances the game by one step. It does nothing unless Running.
func (e *Engine) Tick() Outcome {
	s := &e.state
	if s.phase != PhaseRunning {
		return OutcomeNone
	}
	s.ticks++

	// A rejected pending direction is dropped, not retried
	if d, ok := e.input.Take(); ok && !d.IsOpposite(s.direction) {
		s.direction = d
	}

	newHead := e.grid.Advance(s.snake.Head(), s.direction)
	eats := newHead == s.food
	next := s.snake.Moved(newHead, eats)

	if cause := Collision(newHead, next, e.grid.Bounds()); cause != CauseNone {
		s.cause = cause
		e.sched.Stop()
		e.logger.Debug("game over", "session", e.session, "cause", cause, "score", s.score)
		e.recordRun()
		e.setPhase(PhaseGameOver)
		e.emit(CollidedEvent{State: e.Snapshot(), Cause: cause})
		return OutcomeCollided
	}

	s.snake = next

	if !eats {
		e.emit(MovedEvent{State: e.Snapshot()})
		return OutcomeMoved
	}

	s.score++
	newBest := false
	if s.score > e.highScore {
		e.highScore = s.score
		newBest = true
		e.saveHighScore()
	}

	s.intervalMs = e.nextInterval(s.intervalMs)
	e.sched.Arm(e.Interval())
	s.food = e.spawner.Spawn(s.snake)

	e.emit(AteEvent{State: e.Snapshot(), NewHighScore: newBest})
	return OutcomeAte
}

// nextInterval shrinks the interval by the speedup factor, clamped at the
// configured floor.
func (e *Engine) nextInterval(ms float64) float64 {
	next := ms * e.cfg.SpeedupFactor
	if e.cfg.MinIntervalMs > 0 && next < e.cfg.MinIntervalMs {
		next = e.cfg.MinIntervalMs
	}
	return next
}

func (e *Engine) saveHighScore() {
	if e.highScores == nil {
		return
	}
	if err := e.highScores.SaveHighScore(e.highScore); err != nil {
		e.logger.Warn("could not save high score", "score", e.highScore, "err", err)
	}
}

func (e *Engine) recordRun() {
	if e.recorder == nil || e.state.score == 0 {
		return
	}
	run := RunResult{
		ID:     e.state.runID,
		Score:  e.state.score,
		Length: len(e.state.snake),
		Cause:  e.state.cause,
	}
	if err := e.recorder.RecordRun(run); err != nil {
		e.logger.Warn("could not record run", "run", run.ID, "err", err)
	}
}

func (e *Engine) setPhase(to Phase) {
	from := e.state.phase
	if from == to {
		return
	}
	e.state.phase = to
	e.emitPhase(from, to)
}

func (e *Engine) emitPhase(from, to Phase) {
	e.logger.Debug("phase changed", "from", from, "to", to)
	e.emit(PhaseChangedEvent{From: from, To: to, Session: e.session})
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l(ev)
	}
}

type noopScheduler struct{}

func (noopScheduler) Arm(time.Duration) {}
func (noopScheduler) Stop()             {}
