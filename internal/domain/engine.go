package domain

import "context"

// EngineRequest carries everything a game engine needs to resolve a bet.
// It mirrors the wire shape of the per-game services: the orchestrator does
// not tell an engine anything about balances.
type EngineRequest struct {
	PlayerID  string         `json:"player_id"`
	Action    Action         `json:"action"`
	BetAmount float64        `json:"bet_amount"`
	BetType   string         `json:"bet_type,omitempty"`
	BetDetail map[string]any `json:"bet_detail,omitempty"`
}

// GameEngine maps a wager to an outcome. Implementations are pure apart from
// the random draw; they never touch the balance ledger. Resolve returns an
// AppError with code INVALID_INPUT for a bad bet type, POLICY_FORBIDDEN when
// a feature flag disables the bet type, and INVALID_STATE for an illegal
// blackjack transition.
type GameEngine interface {
	Game() Game
	Resolve(ctx context.Context, req EngineRequest) (*Outcome, error)
}

// FlagProvider answers boolean feature-flag lookups. Evaluation mechanics
// live outside the core; this is only what the engines consume.
type FlagProvider interface {
	BoolFlag(ctx context.Context, key string, defaultValue bool) bool
}

// Feature flag keys the engines consult.
const (
	FlagHouseAdvantage = "casino.house-advantage"
	FlagDicePassLine   = "dice.pass-line"
	FlagDiceComeBets   = "dice.come-bets"
)
