package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/audio"
	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config config.SnakeConfig
	Seed   int64
	Store  *storage.Store // Nil keeps the best score in memory only
	Player audio.Player   // Nil is silent
	Logger *log.Logger
	Width  int
	Height int
}

// flashMsg clears the open-mouth flag of the session that triggered it.
type flashMsg struct {
	session uint64
	at      time.Time
}

// game holds the state shared by every copy of the Bubble Tea model.
type game struct {
	engine    *snake.Engine
	sched     *teaScheduler
	flash     snake.Flash
	mouthOpen time.Duration
	cmds      []tea.Cmd
}

// Model is the Bubble Tea model for playing snake.
type Model struct {
	g        *game
	screen   *core.Screen
	render   snake.RenderOptions
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model with an idle engine.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == nil {
		player = audio.Nop{}
	}

	g := &game{
		sched:     &teaScheduler{},
		mouthOpen: time.Duration(opts.Config.Appearance.MouthOpenMs) * time.Millisecond,
	}

	engineOpts := []snake.Option{
		snake.WithScheduler(g.sched),
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
	g.engine = snake.NewEngine(snake.ConfigFrom(opts.Config, opts.Seed), engineOpts...)

	return Model{
		g:      g,
		screen: core.NewScreen(opts.Width, max(opts.Height-1, 1)),
		render: snake.RenderOptions{
			SnakeColor: opts.Config.SnakeColor(),
			FoodColor:  opts.Config.FoodColor(),
		},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// onEvent opens the mouth after eating and schedules the deferred clear.
func (g *game) onEvent(ev snake.Event) {
	ate, ok := ev.(snake.AteEvent)
	if !ok || g.mouthOpen <= 0 {
		return
	}
	session := ate.State.Session
	g.flash.Trigger(session, time.Now().Add(g.mouthOpen))
	g.cmds = append(g.cmds, tea.Tick(g.mouthOpen, func(t time.Time) tea.Msg {
		return flashMsg{session: session, at: t}
	}))
}

// Engine returns the engine driven by this model.
func (m Model) Engine() *snake.Engine {
	return m.g.engine
}

// Init initializes the model. The game waits in Idle for a start key.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("snake")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.g.sched.Consume(msg) {
			m.g.engine.Tick()
		}
		return m, m.flush()

	case flashMsg:
		m.g.flash.Clear(msg.session, msg.at)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Exit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "err", err)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	// Quit abandons a game; from Idle it leaves the program
	if action == core.ActionQuit && m.g.engine.Phase() == snake.PhaseIdle {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.g.engine.Apply(action)
	}
	return m, m.flush()
}

// flush returns the commands queued by the engine and its listeners.
func (m Model) flush() tea.Cmd {
	cmds := append(m.g.cmds, m.g.sched.Take())
	m.g.cmds = nil
	return tea.Batch(cmds...)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() error {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".gridsnake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	return os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m Model) draw() {
	snap := m.g.engine.Snapshot()
	opts := m.render
	opts.MouthOpen = m.g.flash.Active(snap.Session, time.Now())
	snake.RenderSnapshot(m.screen, snap, opts)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
