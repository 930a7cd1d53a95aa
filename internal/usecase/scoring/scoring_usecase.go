// Package scoring implements the result recorder: the durable append-only
// log of resolved wagers plus the aggregate queries over it.
package scoring

import (
	"context"
	"time"

	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const (
	topPlayersLimit    = 10
	recentResultsLimit = 20
)

// ScoringUseCase implements domain.ScoringUseCase
type ScoringUseCase struct {
	resultRepo domain.GameResultRepository
	scoreRepo  domain.PlayerScoreRepository
	logger     *logger.Logger
}

// NewScoringUseCase creates a new scoring usecase
func NewScoringUseCase(
	resultRepo domain.GameResultRepository,
	scoreRepo domain.PlayerScoreRepository,
	logger *logger.Logger,
) domain.ScoringUseCase {
	return &ScoringUseCase{
		resultRepo: resultRepo,
		scoreRepo:  scoreRepo,
		logger:     logger,
	}
}

// Record appends the result row and folds its net winnings into the
// per-(player, game) score. The score update is best effort: losing it
// skews the leaderboard, not the result log, and the log can rebuild it.
func (uc *ScoringUseCase) Record(ctx context.Context, result *domain.GameResult) error {
	if result.Username == "" {
		return domain.NewInvalidInputError("username", "required")
	}
	if result.Game == "" {
		return domain.NewInvalidInputError("game", "required")
	}
	if result.Timestamp.IsZero() {
		result.Timestamp = time.Now()
	}

	if err := uc.resultRepo.Create(ctx, result); err != nil {
		return domain.NewDatabaseError("create game result", err)
	}

	if err := uc.scoreRepo.Upsert(ctx, result.Username, result.Game, result.Payout-result.BetAmount, "player"); err != nil {
		uc.logger.Warn("Failed to update player score",
			zap.String("username", result.Username),
			zap.String("game", result.Game),
			zap.Error(err))
	}

	return nil
}

// StatsFor aggregates totals, leaderboard and recent results for one game,
// or across all games for domain.GameAll.
func (uc *ScoringUseCase) StatsFor(ctx context.Context, game domain.Game) (*domain.GameStats, error) {
	if game != domain.GameAll && !game.IsPlayable() {
		return nil, domain.NewInvalidInputError("game", "unknown game: "+string(game))
	}

	totalGames, totalWins, totalBet, totalPayout, err := uc.resultRepo.Totals(ctx, string(game))
	if err != nil {
		return nil, domain.NewDatabaseError("aggregate game results", err)
	}

	top, err := uc.resultRepo.TopByWinnings(ctx, string(game), topPlayersLimit)
	if err != nil {
		return nil, domain.NewDatabaseError("query top players", err)
	}

	recent, err := uc.resultRepo.Recent(ctx, string(game), recentResultsLimit)
	if err != nil {
		return nil, domain.NewDatabaseError("query recent results", err)
	}

	return &domain.GameStats{
		Game:        string(game),
		TotalGames:  totalGames,
		TotalWins:   totalWins,
		TotalLosses: totalGames - totalWins,
		TotalBet:    totalBet,
		TotalPayout: totalPayout,
		TopPlayers:  top,
		Recent:      recent,
	}, nil
}

// TopPlayers returns the duplicated leaderboard rows kept apart from the
// result log.
func (uc *ScoringUseCase) TopPlayers(ctx context.Context, game domain.Game, limit int) ([]*domain.PlayerScore, error) {
	if limit <= 0 || limit > 100 {
		limit = topPlayersLimit
	}
	scores, err := uc.scoreRepo.TopByScore(ctx, string(game), limit)
	if err != nil {
		return nil, domain.NewDatabaseError("query player scores", err)
	}
	return scores, nil
}
