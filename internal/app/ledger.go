package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/ledger"
	"github.com/vegaslabs/casinocore/internal/infrastructure/lock"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
)

func (a *application) InitBalanceLedger(
	rdb *redis.Client,
	locks *lock.PlayerLockManager,
	log *logger.Logger,
) domain.BalanceLedger {
	defaultBalance := a.config.Ledger.DefaultBalance
	if defaultBalance <= 0 {
		defaultBalance = 1000
	}
	degraded := ledger.NewDegradedProvider(defaultBalance)
	return ledger.NewRedisLedger(rdb, degraded, locks, a.config.Ledger.SerializePlayers, defaultBalance, log)
}
