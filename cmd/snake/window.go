package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the configured board and play there.

Examples:
  snake window
  snake window --scale 2 --sound`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window pixels per board pixel")
}

func runWindow(_ *cobra.Command, _ []string) error {
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

	return window.Run(window.Options{
		Config: cfg,
		Seed:   flagSeed,
		Store:  store,
		Player: player,
		Logger: logger,
		Scale:  flagScale,
	})
}
