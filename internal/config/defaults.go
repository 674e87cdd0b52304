package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
// It matches defaults/snake.yaml and is used if the embedded file fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    480,
			Height:   480,
			GridSize: 20,
		},
		Speed: SpeedConfig{
			BaseIntervalMs: 200,
			SpeedupFactor:  0.95,
			MinIntervalMs:  40,
		},
		Food: FoodConfig{
			AvoidSnake: false,
		},
		Snake: StartConfig{
			HeadX:  200,
			HeadY:  200,
			Length: 3,
		},
		Appearance: AppearanceConfig{
			SnakeColor:  "green",
			FoodColor:   "bright_red",
			MouthOpenMs: 200,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
