package lock

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// acquireTimeout bounds how long one settlement waits behind another for the
// same player before giving up.
const acquireTimeout = 5 * time.Second

// PlayerLockManager serializes balance adjustments per player id inside one
// process. It is the optional hardening for the ledger's documented
// read-modify-write race: wired only when ledger.serialize_players is set.
type PlayerLockManager struct {
	locks sync.Map // map[string]*sync.Mutex
}

// NewPlayerLockManager creates a new lock manager.
func NewPlayerLockManager() *PlayerLockManager {
	return &PlayerLockManager{}
}

// Lock acquires the player's lock, honoring context cancellation and the
// acquire timeout.
func (m *PlayerLockManager) Lock(ctx context.Context, playerID string) error {
	mu := m.getOrCreateMutex(playerID)

	lockChan := make(chan struct{})
	go func() {
		mu.Lock()
		close(lockChan)
	}()

	select {
	case <-lockChan:
		return nil
	case <-ctx.Done():
		go func() {
			// The goroutine above still acquires eventually; release so the
			// mutex is not leaked locked.
			<-lockChan
			mu.Unlock()
		}()
		return fmt.Errorf("failed to acquire lock for player %s: %w", playerID, ctx.Err())
	case <-time.After(acquireTimeout):
		go func() {
			<-lockChan
			mu.Unlock()
		}()
		return fmt.Errorf("failed to acquire lock for player %s: timeout", playerID)
	}
}

// Unlock releases the player's lock.
func (m *PlayerLockManager) Unlock(playerID string) {
	muInterface, ok := m.locks.Load(playerID)
	if !ok {
		return
	}
	muInterface.(*sync.Mutex).Unlock()
}

// TryLock attempts to acquire the player's lock without blocking.
func (m *PlayerLockManager) TryLock(playerID string) bool {
	return m.getOrCreateMutex(playerID).TryLock()
}

func (m *PlayerLockManager) getOrCreateMutex(playerID string) *sync.Mutex {
	if mu, ok := m.locks.Load(playerID); ok {
		return mu.(*sync.Mutex)
	}
	actual, _ := m.locks.LoadOrStore(playerID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
