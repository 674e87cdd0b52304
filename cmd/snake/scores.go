package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var (
	flagLimit     int
	flagRecent    bool
	flagPlain     bool
	flagClear     bool
	flagResetBest bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history and best score",
	Long: `Display recorded runs and the best score.

On a terminal the runs are shown in an interactive table; with --plain or
when output is piped, a plain listing is printed instead.

Examples:
  snake scores
  snake scores --recent --limit 20
  snake scores --plain > scores.txt
  snake scores --clear --reset-best`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list in plain mode")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain listing even on a terminal")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history")
	scoresCmd.Flags().BoolVar(&flagResetBest, "reset-best", false, "Reset the best score to zero")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return fmt.Errorf("no scores database: --db is empty")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear || flagResetBest {
		return resetScores(os.Stdout, store)
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(os.Stdout, store, flagLimit, flagRecent)
}

func resetScores(w io.Writer, store *storage.Store) error {
	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Fprintln(w, "Run history cleared.")
	}
	if flagResetBest {
		if err := storage.NewHighScoreSlot(store).Reset(); err != nil {
			return fmt.Errorf("resetting best score: %w", err)
		}
		fmt.Fprintln(w, "Best score reset.")
	}
	return nil
}

// printScores writes a plain listing of runs and the best score.
func printScores(w io.Writer, store *storage.Store, limit int, recent bool) error {
	title := "High Scores"
	load := store.TopRuns
	if recent {
		title = "Recent Runs"
		load = store.RecentRuns
	}

	runs, err := load(limit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(w, "%s - Snake\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-5s  %s\n", "Rank", "Score", "Length", "Cause", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-5s  %s\n", "----", "-----", "------", "-----", "----")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-6d  %-6d  %-5s  %s\n", i+1, run.Score, run.Length, run.Cause, dateStr)
	}

	fmt.Fprintln(w)
	best, err := storage.NewHighScoreSlot(store).LoadHighScore()
	if err != nil {
		return fmt.Errorf("reading best score: %w", err)
	}
	fmt.Fprintf(w, "Best: %d\n", best)

	if stats, statsErr := store.GetStats(); statsErr == nil && stats.GamesCount > 0 {
		fmt.Fprintf(w, "Games: %d  Avg: %.1f  Walls: %d  Self: %d\n",
			stats.GamesCount, stats.AvgScore, stats.WallDeaths, stats.SelfDeaths)
	}
	return nil
}
