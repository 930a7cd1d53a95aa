// Package engine provides the closed set of game engines and their lookup
// registry.
package engine

import (
	"fmt"
	"sync"

	"github.com/vegaslabs/casinocore/internal/domain"
)

// Registry is a thread-safe game -> engine lookup. The orchestrator resolves
// every wager through it, so remote and in-process engines are
// interchangeable behind domain.GameEngine.
type Registry struct {
	mu      sync.RWMutex
	engines map[domain.Game]domain.GameEngine
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[domain.Game]domain.GameEngine),
	}
}

// Register adds an engine, replacing any previous engine for the same game.
func (r *Registry) Register(e domain.GameEngine) error {
	if e == nil {
		return fmt.Errorf("cannot register nil engine")
	}
	if e.Game() == "" {
		return fmt.Errorf("engine game cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[e.Game()] = e
	return nil
}

// Get retrieves the engine for a game.
func (r *Registry) Get(game domain.Game) (domain.GameEngine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.engines[game]
	return e, ok
}

// Games returns the registered games.
func (r *Registry) Games() []domain.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]domain.Game, 0, len(r.engines))
	for g := range r.engines {
		games = append(games, g)
	}
	return games
}
