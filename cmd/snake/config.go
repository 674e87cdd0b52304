package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in snake.yaml. Save it to ~/.gridsnake/configs/snake.yaml
or ./configs/snake.yaml and edit it to change the board, speed or colors.

With --effective, print the configuration after --config and --difficulty
are applied instead.

Examples:
  snake config > ~/.gridsnake/configs/snake.yaml
  snake config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded configuration with presets applied")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
