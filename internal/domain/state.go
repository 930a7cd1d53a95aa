package domain

import (
	"context"
	"time"
)

// GameStateStore keeps ephemeral per-(player, game) session state: the last
// resolved roll/spin/hand and the bet that produced it. It exists so a
// client can re-render "what just happened"; it is never authoritative for
// money and absence is never an error for the orchestrator. Entries are
// overwritten whole, not merged, and expire after the TTL.
type GameStateStore interface {
	Put(ctx context.Context, playerID string, game Game, state []byte, ttl time.Duration) error
	// Get returns (nil, false, nil) when no state exists.
	Get(ctx context.Context, playerID string, game Game) ([]byte, bool, error)
	Delete(ctx context.Context, playerID string, game Game) error
}
