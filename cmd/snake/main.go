// snake is a grid snake game for the terminal, the desktop and SSH.
//
// Usage:
//
//	snake play               - Play in the terminal (Bubble Tea)
//	snake console            - Play on a raw terminal screen (tcell)
//	snake window             - Play in a desktop window (Ebitengine)
//	snake serve              - Start SSH server for remote play
//	snake scores             - Show the run history and best score
//	snake config             - Print the default configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible food placement
//	--db <path>           - Set database path (default: ~/.gridsnake/scores.db)
//	--config <path>       - Load a custom snake.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Grid snake - steer, eat, grow, don't crash",
	Long: `Grid snake is the classic snake game on a fixed grid. Each food eaten
grows the snake by one segment and makes it a little faster. The game ends
when the head hits a wall or the body.

Available commands:
  play     - Play in the terminal
  console  - Play on a raw terminal screen
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the run history
  config   - Print the default configuration

Examples:
  snake play
  snake play --difficulty hard
  snake window --scale 2
  snake serve --ssh :2222
  snake scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridsnake/scores.db", "Path to scores database (empty disables it)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
