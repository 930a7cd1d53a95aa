package app

import (
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/flags"
)

func (a *application) InitFlagProvider() domain.FlagProvider {
	return flags.NewProvider(a.config.Flags)
}
