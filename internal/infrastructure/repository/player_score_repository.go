package repository

import (
	"context"
	"time"

	"github.com/vegaslabs/casinocore/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerScoreRepository implements domain.PlayerScoreRepository
type PlayerScoreRepository struct {
	db *gorm.DB
}

// NewPlayerScoreRepository creates a new player score repository
func NewPlayerScoreRepository(db *gorm.DB) domain.PlayerScoreRepository {
	return &PlayerScoreRepository{db: db}
}

// Upsert adds delta winnings to the (username, game) leaderboard row,
// creating it when missing.
func (r *PlayerScoreRepository) Upsert(ctx context.Context, username, game string, delta float64, role string) error {
	if role == "" {
		role = "player"
	}

	score := &domain.PlayerScore{
		Username:  username,
		Game:      game,
		Score:     delta,
		Role:      role,
		Timestamp: time.Now(),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "username"}, {Name: "game"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score":     gorm.Expr("player_scores.score + ?", delta),
			"timestamp": time.Now(),
		}),
	}).Create(score).Error
}

// TopByScore returns the highest leaderboard rows for one game.
func (r *PlayerScoreRepository) TopByScore(ctx context.Context, game string, limit int) ([]*domain.PlayerScore, error) {
	var scores []*domain.PlayerScore
	query := r.db.WithContext(ctx).
		Order("score DESC").
		Limit(limit)
	if game != string(domain.GameAll) {
		query = query.Where("game = ?", game)
	}

	if err := query.Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}
