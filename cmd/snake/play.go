package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var (
	flagSound  bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Steer
  Enter/Space  - Start a new game
  P/Esc        - Pause and resume
  R            - Restart
  Q            - Abandon the game, or exit from the title screen
  Ctrl+C       - Exit
  Ctrl+S       - Save a screenshot
  ?            - Show all keys

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - Default pace
  hard   - Fast start, steep speed-up
  fixed  - Never speeds up

Examples:
  snake play
  snake play --difficulty easy
  snake play --sound --volume 0.3
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, consoleCmd, windowCmd} {
		cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
		cmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 (silent) to 1")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, logCloser, err := newLogger("snake", nil)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	defer closeStore(store, logger)

	player := newPlayer(flagSound, flagVolume, logger)
	defer player.Close()

	err = tui.Run(tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Store:  store,
		Player: player,
		Logger: logger,
		Width:  width,
		Height: height,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
