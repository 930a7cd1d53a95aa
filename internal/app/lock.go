package app

import "github.com/vegaslabs/casinocore/internal/infrastructure/lock"

func (a *application) InitPlayerLockManager() *lock.PlayerLockManager {
	return lock.NewPlayerLockManager()
}
