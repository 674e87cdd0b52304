package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := NewHighScoreSlot(store).SaveHighScore(12); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	best, err := NewHighScoreSlot(store).LoadHighScore()
	if err != nil || best != 12 {
		t.Errorf("LoadHighScore() = %d, %v; want 12", best, err)
	}
}

func TestRunsSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []snake.RunResult{
		{ID: uuid.New(), Score: 100, Length: 103, Cause: snake.CauseWall},
		{ID: uuid.New(), Score: 50, Length: 53, Cause: snake.CauseSelf},
		{ID: uuid.New(), Score: 200, Length: 203, Cause: snake.CauseWall},
	}
	for _, r := range runs {
		if err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Unexpected order: %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}
	if top[0].RunID != runs[2].ID || top[0].Length != 203 || top[0].Cause != "wall" {
		t.Errorf("Unexpected top run %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be parsed")
	}

	limited, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}

	recent, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].RunID != runs[2].ID {
		t.Errorf("Expected latest run first, got %+v", recent)
	}

	best, err := store.BestRun()
	if err != nil || best != 200 {
		t.Errorf("BestRun() = %d, %v; want 200", best, err)
	}
}

func TestRunDuplicateID(t *testing.T) {
	store := openTestStore(t)
	run := snake.RunResult{ID: uuid.New(), Score: 3, Length: 6, Cause: snake.CauseSelf}

	if err := store.RecordRun(run); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if err := store.RecordRun(run); err == nil {
		t.Error("Expected error recording the same run twice")
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, r := range []snake.RunResult{
		{Score: 4, Length: 7, Cause: snake.CauseWall},
		{Score: 8, Length: 11, Cause: snake.CauseSelf},
		{Score: 6, Length: 9, Cause: snake.CauseWall},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.BestScore != 8 || stats.TotalScore != 18 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.AvgScore != 6 {
		t.Errorf("Expected average 6, got %v", stats.AvgScore)
	}
	if stats.WallDeaths != 2 || stats.SelfDeaths != 1 {
		t.Errorf("Expected 2 wall and 1 self deaths, got %d/%d", stats.WallDeaths, stats.SelfDeaths)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)
	slot := NewHighScoreSlot(store)

	store.SaveRun(snake.RunResult{Score: 5, Length: 8, Cause: snake.CauseWall})
	slot.SaveHighScore(5)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	// The best score lives in its own slot
	if best, _ := slot.LoadHighScore(); best != 5 {
		t.Errorf("Expected best score kept after clearing runs, got %d", best)
	}
}

func TestHighScoreSlot(t *testing.T) {
	store := openTestStore(t)
	slot := NewHighScoreSlot(store)

	best, err := slot.LoadHighScore()
	if err != nil || best != 0 {
		t.Fatalf("Missing value should load as 0, got %d, %v", best, err)
	}

	if err := slot.SaveHighScore(7); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	// A lower score never replaces a higher one
	if err := slot.SaveHighScore(3); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if best, _ := slot.LoadHighScore(); best != 7 {
		t.Errorf("Expected 7, got %d", best)
	}

	if err := slot.SaveHighScore(11); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if best, _ := slot.LoadHighScore(); best != 11 {
		t.Errorf("Expected 11, got %d", best)
	}

	raw, ok, err := store.Value(HighScoreKey)
	if err != nil || !ok || raw != "11" {
		t.Errorf("Value(%q) = %q, %v, %v", HighScoreKey, raw, ok, err)
	}

	if err := slot.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if best, _ := slot.LoadHighScore(); best != 0 {
		t.Errorf("Expected 0 after reset, got %d", best)
	}
}

func TestHighScoreSlotCorrupt(t *testing.T) {
	store := openTestStore(t)
	slot := NewHighScoreSlot(store)

	for _, raw := range []string{"abc", "-4", ""} {
		if err := store.SetValue(HighScoreKey, raw); err != nil {
			t.Fatalf("SetValue() failed: %v", err)
		}
		best, err := slot.LoadHighScore()
		if err == nil {
			t.Errorf("Expected error for corrupt value %q", raw)
		}
		if best != 0 {
			t.Errorf("Corrupt value %q should load as 0, got %d", raw, best)
		}
	}

	// A good save repairs the slot
	if err := slot.SaveHighScore(2); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if best, err := slot.LoadHighScore(); err != nil || best != 2 {
		t.Errorf("LoadHighScore() = %d, %v; want 2", best, err)
	}
}

func TestEngineWithStore(t *testing.T) {
	store := openTestStore(t)
	slot := NewHighScoreSlot(store)
	slot.SaveHighScore(4)

	e := snake.NewEngine(snake.DefaultConfig(), snake.WithHighScoreStore(slot), snake.WithScoreRecorder(store))
	if e.HighScore() != 4 {
		t.Errorf("Expected engine to load best 4, got %d", e.HighScore())
	}

	store.SetValue(HighScoreKey, "garbage")
	e = snake.NewEngine(snake.DefaultConfig(), snake.WithHighScoreStore(slot))
	if e.HighScore() != 0 {
		t.Errorf("Expected corrupt best to default to 0, got %d", e.HighScore())
	}
}
