package app

import (
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/engine"
	"github.com/vegaslabs/casinocore/internal/engine/blackjack"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"github.com/vegaslabs/casinocore/internal/usecase/scoring"
	"github.com/vegaslabs/casinocore/internal/usecase/settlement"
)

func (a *application) InitScoringUseCase(
	resultRepo domain.GameResultRepository,
	scoreRepo domain.PlayerScoreRepository,
	log *logger.Logger,
) domain.ScoringUseCase {
	return scoring.NewScoringUseCase(resultRepo, scoreRepo, log)
}

func (a *application) InitSettlementUseCase(
	engines *engine.Registry,
	balanceLedger domain.BalanceLedger,
	stateStore domain.GameStateStore,
	sessions *blackjack.SessionStore,
	resultRecorder domain.ResultRecorder,
	log *logger.Logger,
) domain.SettlementUseCase {
	return settlement.NewSettlementUseCase(
		engines,
		balanceLedger,
		stateStore,
		sessions,
		resultRecorder,
		log,
		a.config.Policy.MinBet,
		settlement.MinBetBehavior(a.config.Policy.MinBetBehavior),
	)
}
