package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScoresEmpty(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := printScores(&buf, store, 10, false); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("output = %q, want empty-history message", buf.String())
	}
}

func TestPrintScores(t *testing.T) {
	store := openTestStore(t)
	runs := []snake.RunResult{
		{ID: uuid.New(), Score: 4, Length: 7, Cause: snake.CauseWall},
		{ID: uuid.New(), Score: 9, Length: 12, Cause: snake.CauseSelf},
	}
	for _, r := range runs {
		if err := store.RecordRun(r); err != nil {
			t.Fatal(err)
		}
	}
	if err := storage.NewHighScoreSlot(store).SaveHighScore(9); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := printScores(&buf, store, 10, false); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := buf.String()

	first := strings.Index(out, "  1     9")
	second := strings.Index(out, "  2     4")
	if first < 0 || second < 0 || first > second {
		t.Errorf("runs not listed best first:\n%s", out)
	}
	if !strings.Contains(out, "Best: 9") {
		t.Errorf("missing best score:\n%s", out)
	}
	if !strings.Contains(out, "Games: 2") {
		t.Errorf("missing stats line:\n%s", out)
	}
}

func TestResetScores(t *testing.T) {
	store := openTestStore(t)
	if err := store.RecordRun(snake.RunResult{ID: uuid.New(), Score: 3, Length: 6, Cause: snake.CauseWall}); err != nil {
		t.Fatal(err)
	}
	slot := storage.NewHighScoreSlot(store)
	if err := slot.SaveHighScore(3); err != nil {
		t.Fatal(err)
	}

	flagClear, flagResetBest = true, true
	t.Cleanup(func() { flagClear, flagResetBest = false, false })

	var buf bytes.Buffer
	if err := resetScores(&buf, store); err != nil {
		t.Fatalf("resetScores() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil || len(runs) != 0 {
		t.Errorf("runs after clear = %v, %v", runs, err)
	}
	if best, err := slot.LoadHighScore(); err != nil || best != 0 {
		t.Errorf("best after reset = %d, %v", best, err)
	}
}
