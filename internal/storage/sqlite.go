// Package storage provides SQLite-based persistence for the best score and
// the history of finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// HighScoreKey is the fixed identifier of the best-score value.
const HighScoreKey = "highScore"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single finished game.
type RunEntry struct {
	ID        int64
	RunID     uuid.UUID
	Score     int
	Length    int
	Cause     string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			cause TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun implements snake.ScoreRecorder.
func (s *Store) RecordRun(run snake.RunResult) error {
	_, err := s.SaveRun(run)
	return err
}

// SaveRun records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run snake.RunResult) (int64, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (run_id, score, length, cause) VALUES (?, ?, ?, ?)",
		run.ID.String(), run.Score, run.Length, run.Cause.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, run_id, score, length, cause, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the most recent N runs.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, run_id, score, length, cause, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var runID string
		var createdAt any
		if err := rows.Scan(&e.ID, &runID, &e.Score, &e.Length, &e.Cause, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if parsed, err := uuid.Parse(runID); err == nil {
			e.RunID = parsed
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestRun returns the highest recorded run score.
// Returns 0 if no runs exist.
func (s *Store) BestRun() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes the run history. The best score is kept.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over the run history.
type Stats struct {
	GamesCount int
	BestScore  int
	AvgScore   float64
	TotalScore int64
	WallDeaths int
	SelfDeaths int
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics over all recorded runs.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(SUM(cause = 'wall'), 0), COALESCE(SUM(cause = 'self'), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.GamesCount, &stats.BestScore, &stats.AvgScore, &stats.TotalScore,
		&stats.WallDeaths, &stats.SelfDeaths, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// Value returns the string stored under key. ok is false if the key is unset.
func (s *Store) Value(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, true, nil
}

// SetValue stores value under key, replacing any previous value.
func (s *Store) SetValue(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// DeleteValue removes key.
func (s *Store) DeleteValue(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %s: %w", key, err)
	}
	return nil
}

// HighScoreSlot stores the best score as a single value keyed by
// HighScoreKey. It implements snake.HighScoreStore.
type HighScoreSlot struct {
	store *Store
	key   string
}

// NewHighScoreSlot returns the best-score slot of store.
func NewHighScoreSlot(store *Store) *HighScoreSlot {
	return &HighScoreSlot{store: store, key: HighScoreKey}
}

// LoadHighScore returns the stored best score. A missing value is 0. A
// value that is not a non-negative integer is reported as an error along
// with 0.
func (h *HighScoreSlot) LoadHighScore() (int, error) {
	raw, ok, err := h.store.Value(h.key)
	if err != nil || !ok {
		return 0, err
	}

	score, err := strconv.Atoi(raw)
	if err != nil || score < 0 {
		return 0, fmt.Errorf("storage: corrupt %s value %q", h.key, raw)
	}
	return score, nil
}

// SaveHighScore stores score unless a higher one is already stored, so
// concurrent sessions never lower the best.
func (h *HighScoreSlot) SaveHighScore(score int) error {
	_, err := h.store.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		 WHERE CAST(kv.value AS INTEGER) < CAST(excluded.value AS INTEGER)`,
		h.key, strconv.Itoa(score),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", h.key, err)
	}
	return nil
}

// Reset clears the stored best score.
func (h *HighScoreSlot) Reset() error {
	return h.store.DeleteValue(h.key)
}

var (
	_ snake.HighScoreStore = (*HighScoreSlot)(nil)
	_ snake.ScoreRecorder  = (*Store)(nil)
)

// parseTime handles the datetime column as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
