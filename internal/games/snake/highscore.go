package snake

import (
	"sync"

	"github.com/google/uuid"
)

// HighScoreStore persists the single best-score value.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// RunResult describes one finished game.
type RunResult struct {
	ID     uuid.UUID
	Score  int
	Length int
	Cause  Cause
}

// ScoreRecorder receives every finished game with a positive score.
type ScoreRecorder interface {
	RecordRun(run RunResult) error
}

// MemoryHighScore keeps the best score in memory for the life of the process.
type MemoryHighScore struct {
	mu    sync.Mutex
	value int
}

// LoadHighScore returns the stored value.
func (m *MemoryHighScore) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

// SaveHighScore stores score.
func (m *MemoryHighScore) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = score
	return nil
}
