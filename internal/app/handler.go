package app

import (
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/engine"
	"github.com/vegaslabs/casinocore/internal/http/handlers"
	"github.com/vegaslabs/casinocore/internal/infrastructure/auth"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
)

func (a *application) InitAuthHandler(uc domain.SettlementUseCase, jwt auth.JWTService) *handlers.AuthHandler {
	return handlers.NewAuthHandler(uc, jwt)
}

func (a *application) InitWagerHandler(uc domain.SettlementUseCase, log *logger.Logger) *handlers.WagerHandler {
	return handlers.NewWagerHandler(uc, log)
}

func (a *application) InitScoringHandler(uc domain.ScoringUseCase, log *logger.Logger) *handlers.ScoringHandler {
	return handlers.NewScoringHandler(uc, log)
}

func (a *application) InitEngineHandler(engines *engine.Registry) *handlers.EngineHandler {
	return handlers.NewEngineHandler(engines)
}
