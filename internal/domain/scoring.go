package domain

import (
	"context"
	"time"
)

// GameResult is one durable row per resolved wager, the scoring store's
// append-only log. Rows are never mutated or deleted; aggregate stats and
// leaderboards are derived from them. Duplicate or missing rows are
// tolerated: this is approximate analytics, not the ledger of record.
type GameResult struct {
	ID        int64     `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Username  string    `json:"username" gorm:"index:idx_username_timestamp;type:varchar(64);not null"`
	Game      string    `json:"game" gorm:"index:idx_game_timestamp;type:varchar(16);not null"`
	Action    string    `json:"action" gorm:"type:varchar(16);not null"`
	BetAmount float64   `json:"bet_amount" gorm:"type:numeric(20,2);not null"`
	Payout    float64   `json:"payout" gorm:"type:numeric(20,2);not null"`
	Win       bool      `json:"win" gorm:"not null"`
	Result    string    `json:"result" gorm:"type:varchar(16)"`
	GameData  string    `json:"game_data" gorm:"type:text"`
	Metadata  string    `json:"metadata" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"index:idx_game_timestamp,sort:desc;index:idx_username_timestamp,sort:desc;not null"`
}

// TableName specifies the table name for GameResult
func (GameResult) TableName() string {
	return "game_results"
}

// PlayerScore is the derived per-(username, game) leaderboard row: latest
// winnings total plus a role tag, duplicated out of the result log so
// leaderboard queries do not scan it.
type PlayerScore struct {
	ID        int64     `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Username  string    `json:"username" gorm:"uniqueIndex:idx_username_game;type:varchar(64);not null"`
	Game      string    `json:"game" gorm:"uniqueIndex:idx_username_game;index:idx_game_score;type:varchar(16);not null"`
	Score     float64   `json:"score" gorm:"index:idx_game_score,sort:desc;type:numeric(20,2);not null"`
	Role      string    `json:"role" gorm:"type:varchar(32);not null;default:'player'"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
}

// TableName specifies the table name for PlayerScore
func (PlayerScore) TableName() string {
	return "player_scores"
}

// TopPlayer is one leaderboard entry.
type TopPlayer struct {
	Username string  `json:"username"`
	Winnings float64 `json:"winnings"`
	Wins     int64   `json:"wins"`
}

// GameStats aggregates the result log for one game, or for all games when
// queried with GameAll.
type GameStats struct {
	Game        string        `json:"game"`
	TotalGames  int64         `json:"total_games"`
	TotalWins   int64         `json:"total_wins"`
	TotalLosses int64         `json:"total_losses"`
	TotalBet    float64       `json:"total_bet"`
	TotalPayout float64       `json:"total_payout"`
	TopPlayers  []TopPlayer   `json:"top_players"`
	Recent      []*GameResult `json:"recent"`
}

// GameResultRepository defines the interface for the result log
type GameResultRepository interface {
	Create(ctx context.Context, result *GameResult) error
	Totals(ctx context.Context, game string) (totalGames, totalWins int64, totalBet, totalPayout float64, err error)
	TopByWinnings(ctx context.Context, game string, limit int) ([]TopPlayer, error)
	Recent(ctx context.Context, game string, limit int) ([]*GameResult, error)
}

// PlayerScoreRepository defines the interface for leaderboard rows
type PlayerScoreRepository interface {
	Upsert(ctx context.Context, username, game string, delta float64, role string) error
	TopByScore(ctx context.Context, game string, limit int) ([]*PlayerScore, error)
}

// ScoringUseCase defines the interface for the result recorder business logic
type ScoringUseCase interface {
	Record(ctx context.Context, result *GameResult) error
	StatsFor(ctx context.Context, game Game) (*GameStats, error)
	TopPlayers(ctx context.Context, game Game, limit int) ([]*PlayerScore, error)
}

// ResultRecorder is the orchestrator's fire-and-forget sink. Record must
// never block the wager path and must never surface a failure to the
// caller: at most once, best effort.
type ResultRecorder interface {
	Record(result *GameResult)
}
