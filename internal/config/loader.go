package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the file looked up in the user and local config dirs.
const configFileName = "snake.yaml"

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.gridsnake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Only an explicit customPath can fail; broken files found by search are skipped.
func LoadSnake(customPath string) (SnakeConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(configFileName), filepath.Join("configs", configFileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

// LoadSnakeWithPreset loads the configuration and applies a difficulty preset.
func LoadSnakeWithPreset(customPath, difficulty string) (SnakeConfig, error) {
	preset, err := ParseDifficulty(difficulty)
	if err != nil {
		return SnakeConfig{}, err
	}

	cfg, err := LoadSnake(customPath)
	if err != nil {
		return cfg, err
	}

	ApplySnakePreset(&cfg, preset)
	return cfg, nil
}

// loadFile reads a YAML file over the defaults, so partial files only
// override the keys they set.
func loadFile(path string) (SnakeConfig, error) {
	cfg := embeddedDefault()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func embeddedDefault() SnakeConfig {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridsnake", "configs", filename)
}
