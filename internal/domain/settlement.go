package domain

import "context"

// SettlementUseCase defines the interface for the wager settlement business
// logic: the only path through which a bet becomes a balance change.
type SettlementUseCase interface {
	// PlaceWager runs the full settlement flow for one wager: policy
	// check, funds check, engine resolve, debit and credit, async result
	// recording, display state write.
	PlaceWager(ctx context.Context, wager Wager) (*Settlement, error)

	// Balance returns the player's current balance.
	Balance(ctx context.Context, playerID string) (float64, error)

	// AdjustBalance applies a signed delta to the player's balance outside
	// the wager path, clamped at zero by the ledger.
	AdjustBalance(ctx context.Context, playerID string, delta float64) (float64, error)

	// DisplayState returns the last stored display state for the player
	// and game, with found=false when none exists.
	DisplayState(ctx context.Context, playerID string, game Game) ([]byte, bool, error)
}
