package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/engine/blackjack"
	"github.com/vegaslabs/casinocore/internal/infrastructure/statestore"
)

func (a *application) InitGameStateStore(rdb *redis.Client) domain.GameStateStore {
	return statestore.NewRedisStore(rdb)
}

func (a *application) InitBlackjackSessionStore(store domain.GameStateStore) *blackjack.SessionStore {
	return blackjack.NewSessionStore(store)
}
