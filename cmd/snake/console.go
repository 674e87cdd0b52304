package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/console"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play on a raw terminal screen",
	Long: `Start a game drawn directly with tcell, without the Bubble Tea
program. Besides arrows and WASD, the vi keys h/j/k/l steer.

Examples:
  snake console
  snake console --difficulty fixed`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func runConsole(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, logCloser, err := newLogger("snake", nil)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	store := openStore(logger)
	defer closeStore(store, logger)

	player := newPlayer(flagSound, flagVolume, logger)
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = console.Run(ctx, console.Options{
		Config: cfg,
		Seed:   flagSeed,
		Store:  store,
		Player: player,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
