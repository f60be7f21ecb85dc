// internal/store/memory.go
//
// In-memory record of finished sessions for the lifetime of the process.
// Nothing is written to disk; the tally is printed when the player leaves.
//
// Characteristics:
//   - Stores game.Result values keyed by session ID, in finish order.
//   - Concurrency-safe via RWMutex.
//   - Errors are returned for missing IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/memory/internal/game"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("not found")

// Summary aggregates the sessions played so far.
type Summary struct {
	Played        int
	Wins          int
	Losses        int
	CurrentStreak int // consecutive wins ending with the latest session
	BestStreak    int
}

// Store records finished sessions.
type Store interface {
	// Save records or replaces a session result.
	Save(ctx context.Context, r game.Result) error

	// Get retrieves a result by session ID.
	Get(ctx context.Context, id string) (game.Result, error)

	// Summary aggregates everything saved so far.
	Summary(ctx context.Context) (Summary, error)
}

// memory is an in-memory Store implementation.
type memory struct {
	mu      sync.RWMutex
	results map[string]game.Result
	order   []string // session IDs in first-save order
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{results: make(map[string]game.Result)}
}

func (m *memory) Save(ctx context.Context, r game.Result) error {
	if r.ID == "" {
		return errors.New("store: result without id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.results[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	m.results[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (game.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.results[id]; ok {
		return r, nil
	}
	return game.Result{}, ErrNotFound
}

func (m *memory) Summary(ctx context.Context) (Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var s Summary
	for _, id := range m.order {
		r := m.results[id]
		s.Played++
		if r.Won {
			s.Wins++
			s.CurrentStreak++
			if s.CurrentStreak > s.BestStreak {
				s.BestStreak = s.CurrentStreak
			}
		} else {
			s.Losses++
			s.CurrentStreak = 0
		}
	}
	return s, nil
}
