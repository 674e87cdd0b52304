package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/audio"
	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/logging"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// loadGameConfig loads the snake config named by the global flags.
func loadGameConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnakeWithPreset(flagConfig, flagDifficulty)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the command logger. Interactive frontends own the
// terminal, so without --log-file their logs are discarded; fallback is
// used by commands that can write to stderr.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	logger, closer, err := logging.New(logging.Options{
		Path:     flagLogFile,
		Fallback: fallback,
		Level:    flagLogLevel,
		Prefix:   prefix,
	})
	if err != nil {
		return nil, closer, fmt.Errorf("setting up logging: %w", err)
	}
	return logger, closer, nil
}

// openStore opens the scores database. Failure is not fatal: the game
// still works, the best score just is not persisted.
func openStore(logger *log.Logger) *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "err", err)
	}
}

// newPlayer returns a speaker player when sound is on. A missing audio
// device falls back to silence.
func newPlayer(sound bool, volume float64, logger *log.Logger) audio.Player {
	if !sound {
		return audio.Nop{}
	}
	p, err := audio.NewSpeakerPlayer(volume)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return audio.Nop{}
	}
	return p
}
