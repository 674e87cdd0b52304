// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Speed      SpeedConfig      `yaml:"speed"`
	Food       FoodConfig       `yaml:"food"`
	Snake      StartConfig      `yaml:"snake"`
	Appearance AppearanceConfig `yaml:"appearance"`
}

// BoardConfig defines the playfield in pixel units.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	GridSize int `yaml:"grid_size"`
}

// SpeedConfig defines tick timing and its progression.
type SpeedConfig struct {
	BaseIntervalMs float64 `yaml:"base_interval_ms"`
	SpeedupFactor  float64 `yaml:"speedup_factor"`  // Interval multiplier per food eaten
	MinIntervalMs  float64 `yaml:"min_interval_ms"` // 0 disables the floor
}

// FoodConfig defines food placement.
type FoodConfig struct {
	AvoidSnake bool `yaml:"avoid_snake"` // Re-roll onto free cells only
}

// StartConfig defines the snake placed at the start of every game.
type StartConfig struct {
	HeadX  int `yaml:"head_x"`
	HeadY  int `yaml:"head_y"`
	Length int `yaml:"length"` // Segments trail to the left of the head
}

// AppearanceConfig holds cosmetic settings shared by every renderer.
type AppearanceConfig struct {
	SnakeColor  string `yaml:"snake_color"`
	FoodColor   string `yaml:"food_color"`
	MouthOpenMs int    `yaml:"mouth_open_ms"`
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	var errs []error

	b := c.Board
	if b.GridSize <= 0 {
		errs = append(errs, fmt.Errorf("board.grid_size must be positive, got %d", b.GridSize))
	} else {
		if b.Width <= 0 || b.Width%b.GridSize != 0 {
			errs = append(errs, fmt.Errorf("board.width %d must be a positive multiple of grid_size %d", b.Width, b.GridSize))
		}
		if b.Height <= 0 || b.Height%b.GridSize != 0 {
			errs = append(errs, fmt.Errorf("board.height %d must be a positive multiple of grid_size %d", b.Height, b.GridSize))
		}
	}

	s := c.Speed
	if s.BaseIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("speed.base_interval_ms must be positive, got %v", s.BaseIntervalMs))
	}
	if s.SpeedupFactor <= 0 || s.SpeedupFactor > 1 {
		errs = append(errs, fmt.Errorf("speed.speedup_factor must be in (0, 1], got %v", s.SpeedupFactor))
	}
	if s.MinIntervalMs < 0 || (s.BaseIntervalMs > 0 && s.MinIntervalMs > s.BaseIntervalMs) {
		errs = append(errs, fmt.Errorf("speed.min_interval_ms must be in [0, base_interval_ms], got %v", s.MinIntervalMs))
	}

	st := c.Snake
	if st.Length < 1 {
		errs = append(errs, fmt.Errorf("snake.length must be at least 1, got %d", st.Length))
	}
	if b.GridSize > 0 && st.Length >= 1 {
		tailX := st.HeadX - (st.Length-1)*b.GridSize
		board := core.NewRect(0, 0, b.Width, b.Height)
		if st.HeadX%b.GridSize != 0 || st.HeadY%b.GridSize != 0 {
			errs = append(errs, fmt.Errorf("snake head (%d,%d) is not aligned to grid_size %d", st.HeadX, st.HeadY, b.GridSize))
		} else if !board.Contains(st.HeadX, st.HeadY) || !board.Contains(tailX, st.HeadY) {
			errs = append(errs, fmt.Errorf("snake of length %d at (%d,%d) does not fit the board", st.Length, st.HeadX, st.HeadY))
		}
	}

	if _, ok := core.ParseColor(c.Appearance.SnakeColor); !ok {
		errs = append(errs, fmt.Errorf("appearance.snake_color %q is not a known color", c.Appearance.SnakeColor))
	}
	if _, ok := core.ParseColor(c.Appearance.FoodColor); !ok {
		errs = append(errs, fmt.Errorf("appearance.food_color %q is not a known color", c.Appearance.FoodColor))
	}
	if c.Appearance.MouthOpenMs < 0 {
		errs = append(errs, fmt.Errorf("appearance.mouth_open_ms must not be negative, got %d", c.Appearance.MouthOpenMs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}

// SnakeColor returns the parsed snake color, falling back to green.
func (c SnakeConfig) SnakeColor() core.Color {
	if col, ok := core.ParseColor(c.Appearance.SnakeColor); ok {
		return col
	}
	return core.ColorGreen
}

// FoodColor returns the parsed food color, falling back to red.
func (c SnakeConfig) FoodColor() core.Color {
	if col, ok := core.ParseColor(c.Appearance.FoodColor); ok {
		return col
	}
	return core.ColorBrightRed
}
