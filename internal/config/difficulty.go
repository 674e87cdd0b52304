package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyDefault DifficultyPreset = ""
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyFixed   DifficultyPreset = "fixed"
)

// ParseDifficulty converts a CLI flag value into a preset.
// The empty string keeps the config file's values.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case DifficultyDefault, DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return DifficultyDefault, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplySnakePreset modifies the speed settings based on a difficulty preset.
// Easy starts slower and speeds up gently, hard starts fast and ramps quickly,
// fixed keeps the configured base interval for the whole game.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseIntervalMs = 250
		cfg.Speed.SpeedupFactor = 0.97
	case DifficultyNormal:
		cfg.Speed.BaseIntervalMs = 200
		cfg.Speed.SpeedupFactor = 0.95
	case DifficultyHard:
		cfg.Speed.BaseIntervalMs = 140
		cfg.Speed.SpeedupFactor = 0.92
	case DifficultyFixed:
		cfg.Speed.SpeedupFactor = 1.0
	}

	cfg.Speed.MinIntervalMs = core.ClampF(cfg.Speed.MinIntervalMs, 0, cfg.Speed.BaseIntervalMs)
}
