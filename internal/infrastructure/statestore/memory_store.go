package statestore

import (
	"context"
	"sync"
	"time"

	"github.com/vegaslabs/casinocore/internal/domain"
)

type memoryEntry struct {
	state     []byte
	expiresAt time.Time
}

// MemoryStore is the in-process domain.GameStateStore used by tests and by
// deployments that run without Redis. Expiry is checked lazily on read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	// now is swappable for TTL tests.
	now func() time.Time
}

// NewMemoryStore creates an empty in-memory state store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Put overwrites the entry whole.
func (s *MemoryStore) Put(_ context.Context, playerID string, game domain.Game, state []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.now().Add(ttl)
	}

	buf := make([]byte, len(state))
	copy(buf, state)
	s.entries[stateKey(playerID, game)] = memoryEntry{state: buf, expiresAt: expiresAt}
	return nil
}

// Get returns the entry, or found=false when absent or expired.
func (s *MemoryStore) Get(_ context.Context, playerID string, game domain.Game) ([]byte, bool, error) {
	key := stateKey(playerID, game)

	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	// Hand back a copy so callers cannot mutate the stored entry.
	buf := make([]byte, len(entry.state))
	copy(buf, entry.state)
	return buf, true, nil
}

// Delete removes the entry.
func (s *MemoryStore) Delete(_ context.Context, playerID string, game domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, stateKey(playerID, game))
	return nil
}
