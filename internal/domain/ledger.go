package domain

import "context"

// BalanceLedger is the authoritative player balance store. Amounts are
// non-negative; unknown players materialize with the configured starting
// amount on first access.
//
// Adjust is read-modify-write, not compare-and-swap: two concurrent adjusts
// for the same player can both validate against the same pre-read value and
// lose one update. That anomaly is an accepted design point of the ledger
// (see DESIGN.md); deployments that prefer correctness over fidelity can
// serialize per-player adjusts through the lock manager.
//
// Implementations must not fail the caller when the underlying store is
// unreachable: they fall back to the injected degraded provider and log
// LEDGER_DEGRADED.
type BalanceLedger interface {
	Get(ctx context.Context, playerID string) (float64, error)
	Set(ctx context.Context, playerID string, amount float64) error
	Adjust(ctx context.Context, playerID string, delta float64) (float64, error)
}
