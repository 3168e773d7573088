// internal/store/memory.go
//
// In-memory history of completed game sessions.
// This is the only "persistence" the game has: state lives for the process
// lifetime and is discarded on exit.
//
// Characteristics:
//   - Sessions are kept in completion order; entries are never removed or reordered.
//   - The running score is credited from Session.Points as each session is recorded.
//   - Guarded by an RWMutex (concurrent reads allowed, writes exclusive).

package store

import (
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/robalobadob/numguess/internal/game"
)

// Store defines the history interface used by the CLI and statistics.
// It also satisfies game.Recorder.
type Store interface {
	// Record appends a completed session and credits its points.
	Record(s game.Session)

	// All returns the sessions in chronological order.
	// Sessions and their attempt logs are copies and may be modified by the caller.
	All() []game.Session

	// TotalScore returns the running score.
	TotalScore() int

	// Len returns the number of recorded sessions.
	Len() int
}

// memory is the slice-backed Store implementation.
type memory struct {
	mu       sync.RWMutex   // guards sessions and score
	sessions []game.Session // append-only
	score    int
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Record appends s to the history. The attempt log is copied so the stored
// session cannot change afterwards. Losses carry zero points, so only wins
// move the running score.
func (m *memory) Record(s game.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.Attempts = slices.Clone(s.Attempts)
	m.sessions = append(m.sessions, s)
	if s.Won {
		m.score += s.Points
	}
}

// All returns a deep copy of the recorded sessions.
func (m *memory) All() []game.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Map(m.sessions, func(s game.Session, _ int) game.Session {
		s.Attempts = slices.Clone(s.Attempts)
		return s
	})
}

// TotalScore returns the running score.
func (m *memory) TotalScore() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.score
}

// Len returns the number of recorded sessions.
func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
