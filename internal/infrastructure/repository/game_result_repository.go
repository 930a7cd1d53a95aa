package repository

import (
	"context"

	"github.com/vegaslabs/casinocore/internal/domain"
	"gorm.io/gorm"
)

// GameResultRepository implements domain.GameResultRepository
type GameResultRepository struct {
	db *gorm.DB
}

// NewGameResultRepository creates a new game result repository
func NewGameResultRepository(db *gorm.DB) domain.GameResultRepository {
	return &GameResultRepository{db: db}
}

// Create appends one result row. Rows are never updated or deleted.
func (r *GameResultRepository) Create(ctx context.Context, result *domain.GameResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

// Totals aggregates the result log for one game; game "all" spans every game.
func (r *GameResultRepository) Totals(ctx context.Context, game string) (int64, int64, float64, float64, error) {
	type row struct {
		TotalGames  int64
		TotalWins   int64
		TotalBet    float64
		TotalPayout float64
	}

	var out row
	query := r.db.WithContext(ctx).Model(&domain.GameResult{}).
		Select("COUNT(*) AS total_games, " +
			"COUNT(*) FILTER (WHERE win) AS total_wins, " +
			"COALESCE(SUM(bet_amount), 0) AS total_bet, " +
			"COALESCE(SUM(payout), 0) AS total_payout")
	if game != string(domain.GameAll) {
		query = query.Where("game = ?", game)
	}

	if err := query.Scan(&out).Error; err != nil {
		return 0, 0, 0, 0, err
	}
	return out.TotalGames, out.TotalWins, out.TotalBet, out.TotalPayout, nil
}

// TopByWinnings returns the leaderboard derived from the result log itself.
func (r *GameResultRepository) TopByWinnings(ctx context.Context, game string, limit int) ([]domain.TopPlayer, error) {
	var players []domain.TopPlayer
	query := r.db.WithContext(ctx).Model(&domain.GameResult{}).
		Select("username, COALESCE(SUM(payout - bet_amount), 0) AS winnings, COUNT(*) FILTER (WHERE win) AS wins").
		Group("username").
		Order("winnings DESC").
		Limit(limit)
	if game != string(domain.GameAll) {
		query = query.Where("game = ?", game)
	}

	if err := query.Scan(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// Recent returns the newest result rows for one game.
func (r *GameResultRepository) Recent(ctx context.Context, game string, limit int) ([]*domain.GameResult, error) {
	var results []*domain.GameResult
	query := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit)
	if game != string(domain.GameAll) {
		query = query.Where("game = ?", game)
	}

	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
