// Package statestore implements the ephemeral per-(player, game) session
// state store.
package statestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vegaslabs/casinocore/internal/domain"
)

// RedisStore implements domain.GameStateStore on Redis.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a state store over the given Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func stateKey(playerID string, game domain.Game) string {
	return fmt.Sprintf("state:%s:%s", game, playerID)
}

// Put overwrites the entry whole. Entries are never merged.
func (s *RedisStore) Put(ctx context.Context, playerID string, game domain.Game, state []byte, ttl time.Duration) error {
	return s.rdb.Set(ctx, stateKey(playerID, game), state, ttl).Err()
}

// Get returns the entry, or found=false when absent or expired.
func (s *RedisStore) Get(ctx context.Context, playerID string, game domain.Game) ([]byte, bool, error) {
	val, err := s.rdb.Get(ctx, stateKey(playerID, game)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Delete removes the entry.
func (s *RedisStore) Delete(ctx context.Context, playerID string, game domain.Game) error {
	return s.rdb.Del(ctx, stateKey(playerID, game)).Err()
}
