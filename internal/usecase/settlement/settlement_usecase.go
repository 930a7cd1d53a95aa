// Package settlement is the orchestrator that turns a wager into a balance
// change. It owns the order of operations for every game: policy check,
// funds check, engine resolve, debit then credit, async result recording,
// display state write. Engines never touch money and the ledger never sees
// a wager that failed validation.
package settlement

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/engine"
	"github.com/vegaslabs/casinocore/internal/engine/blackjack"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// MinBetBehavior selects what happens to a bet below the table minimum.
type MinBetBehavior string

const (
	// MinBetCoerce silently raises the bet to the minimum.
	MinBetCoerce MinBetBehavior = "coerce"
	// MinBetReject refuses the wager with INVALID_INPUT.
	MinBetReject MinBetBehavior = "reject"
)

const displayStateTTL = 10 * time.Minute

// SettlementUseCase implements domain.SettlementUseCase.
type SettlementUseCase struct {
	engines        *engine.Registry
	ledger         domain.BalanceLedger
	stateStore     domain.GameStateStore
	sessions       *blackjack.SessionStore
	recorder       domain.ResultRecorder
	logger         *logger.Logger
	minBet         float64
	minBetBehavior MinBetBehavior
}

// NewSettlementUseCase creates a new settlement usecase
func NewSettlementUseCase(
	engines *engine.Registry,
	ledger domain.BalanceLedger,
	stateStore domain.GameStateStore,
	sessions *blackjack.SessionStore,
	recorder domain.ResultRecorder,
	logger *logger.Logger,
	minBet float64,
	minBetBehavior MinBetBehavior,
) domain.SettlementUseCase {
	if minBet <= 0 {
		minBet = 10
	}
	if minBetBehavior != MinBetReject {
		minBetBehavior = MinBetCoerce
	}
	logger.Info("SettlementUseCase initialized successfully")
	return &SettlementUseCase{
		engines:        engines,
		ledger:         ledger,
		stateStore:     stateStore,
		sessions:       sessions,
		recorder:       recorder,
		logger:         logger,
		minBet:         minBet,
		minBetBehavior: minBetBehavior,
	}
}

// PlaceWager runs the full settlement flow for one wager.
func (uc *SettlementUseCase) PlaceWager(ctx context.Context, wager domain.Wager) (*domain.Settlement, error) {
	if err := uc.validate(&wager); err != nil {
		return nil, err
	}

	eng, ok := uc.engines.Get(wager.Game)
	if !ok {
		return nil, domain.NewEngineUnavailableError(string(wager.Game), nil)
	}

	if wager.Game == domain.GameBlackjack {
		return uc.placeBlackjack(ctx, eng, wager)
	}

	// Single-shot games: the whole stake is at risk on this one call.
	stake := wager.BetAmount

	balance, err := uc.ledger.Get(ctx, wager.PlayerID)
	if err != nil {
		return nil, err
	}
	if balance < stake {
		return nil, domain.NewInsufficientFundsError(balance, stake)
	}

	outcome, err := eng.Resolve(ctx, domain.EngineRequest{
		PlayerID:  wager.PlayerID,
		Action:    wager.Action,
		BetAmount: stake,
		BetType:   wager.BetType,
		BetDetail: wager.BetDetail,
	})
	if err != nil {
		// No money has moved yet; the wager simply did not happen.
		return nil, err
	}

	newBalance, err := uc.applyMoney(ctx, wager.PlayerID, stake, outcome.Payout)
	if err != nil {
		return nil, err
	}

	uc.record(&wager, stake, outcome)
	uc.writeDisplayState(ctx, &wager, stake, outcome)

	return &domain.Settlement{Outcome: outcome, NewBalance: newBalance}, nil
}

// Balance returns the player's current balance.
func (uc *SettlementUseCase) Balance(ctx context.Context, playerID string) (float64, error) {
	if playerID == "" {
		return 0, domain.NewInvalidInputError("player_id", "player id is required")
	}
	return uc.ledger.Get(ctx, playerID)
}

// AdjustBalance applies a signed delta outside the wager path.
func (uc *SettlementUseCase) AdjustBalance(ctx context.Context, playerID string, delta float64) (float64, error) {
	if playerID == "" {
		return 0, domain.NewInvalidInputError("player_id", "player id is required")
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return 0, domain.NewInvalidInputError("delta", "delta must be a finite number")
	}

	newBalance, err := uc.ledger.Adjust(ctx, playerID, delta)
	if err != nil {
		return 0, err
	}

	uc.logger.Info("Balance adjusted",
		zap.String("player_id", playerID),
		zap.Float64("delta", delta),
		zap.Float64("new_balance", newBalance))
	return newBalance, nil
}

// DisplayState returns the last stored display state for the player and game.
func (uc *SettlementUseCase) DisplayState(ctx context.Context, playerID string, game domain.Game) ([]byte, bool, error) {
	if playerID == "" {
		return nil, false, domain.NewInvalidInputError("player_id", "player id is required")
	}
	if !game.IsPlayable() {
		return nil, false, domain.NewInvalidInputError("game", "unknown game: "+string(game))
	}
	return uc.stateStore.Get(ctx, playerID, game)
}

// validate rejects malformed wagers and applies the table minimum before any
// other step runs.
func (uc *SettlementUseCase) validate(wager *domain.Wager) error {
	if wager.PlayerID == "" {
		return domain.NewInvalidInputError("player_id", "player id is required")
	}
	if !wager.Game.IsPlayable() {
		return domain.NewInvalidInputError("game", "unknown game: "+string(wager.Game))
	}
	if !actionAllowed(wager.Game, wager.Action) {
		return domain.NewInvalidInputError("action", "action "+string(wager.Action)+" is not valid for "+string(wager.Game))
	}
	if math.IsNaN(wager.BetAmount) || math.IsInf(wager.BetAmount, 0) || wager.BetAmount < 0 {
		return domain.NewInvalidInputError("bet_amount", "bet amount must be a non-negative number")
	}

	// The table minimum only applies where a new stake enters play; the
	// in-hand blackjack actions carry no bet of their own.
	if !stakesNewBet(wager.Action) {
		return nil
	}
	if wager.BetAmount < uc.minBet {
		if uc.minBetBehavior == MinBetReject {
			return domain.NewInvalidInputError("bet_amount", "bet amount is below the table minimum")
		}
		uc.logger.Debug("Coercing bet up to table minimum",
			zap.String("player_id", wager.PlayerID),
			zap.Float64("bet_amount", wager.BetAmount),
			zap.Float64("min_bet", uc.minBet))
		wager.BetAmount = uc.minBet
	}
	return nil
}

// applyMoney debits the stake and credits the payout as two separate ledger
// adjusts. Zero amounts skip their adjust; when nothing moves the current
// balance is read back for the response.
func (uc *SettlementUseCase) applyMoney(ctx context.Context, playerID string, stake, payout float64) (float64, error) {
	var (
		newBalance float64
		err        error
		moved      bool
	)

	if stake > 0 {
		newBalance, err = uc.ledger.Adjust(ctx, playerID, -stake)
		if err != nil {
			return 0, err
		}
		moved = true
	}
	if payout > 0 {
		newBalance, err = uc.ledger.Adjust(ctx, playerID, payout)
		if err != nil {
			return 0, err
		}
		moved = true
	}
	if !moved {
		newBalance, err = uc.ledger.Get(ctx, playerID)
		if err != nil {
			return 0, err
		}
	}
	return newBalance, nil
}

// record hands the resolved wager to the fire-and-forget recorder. Only
// terminal outcomes become rows; in-hand blackjack progress is not a
// resolved wager.
func (uc *SettlementUseCase) record(wager *domain.Wager, stake float64, outcome *domain.Outcome) {
	if uc.recorder == nil || !isTerminal(outcome.Result) {
		return
	}

	gameData := ""
	if len(outcome.GameData) > 0 {
		if raw, err := json.Marshal(outcome.GameData); err == nil {
			gameData = string(raw)
		}
	}

	// Same metadata blob the remote ingestion path carries, so locally
	// settled rows look no different from HTTP-ingested ones.
	metadata := ""
	if raw, err := json.Marshal(map[string]string{"timestamp": outcome.Timestamp.Format(time.RFC3339)}); err == nil {
		metadata = string(raw)
	}

	uc.recorder.Record(&domain.GameResult{
		Username:  wager.PlayerID,
		Game:      string(wager.Game),
		Action:    string(wager.Action),
		BetAmount: stake,
		Payout:    outcome.Payout,
		Win:       outcome.Win,
		Result:    outcome.Result,
		GameData:  gameData,
		Metadata:  metadata,
		Timestamp: outcome.Timestamp,
	})
}

// writeDisplayState stores the latest outcome for client re-rendering. The
// write is best effort: the settlement already happened and a read model
// miss is not worth failing it for.
func (uc *SettlementUseCase) writeDisplayState(ctx context.Context, wager *domain.Wager, stake float64, outcome *domain.Outcome) {
	state := map[string]any{
		"game":       wager.Game,
		"action":     wager.Action,
		"bet_amount": stake,
		"outcome":    outcome,
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return
	}
	if err := uc.stateStore.Put(ctx, wager.PlayerID, wager.Game, raw, displayStateTTL); err != nil {
		uc.logger.Warn("Failed to write display state",
			zap.String("player_id", wager.PlayerID),
			zap.String("game", string(wager.Game)),
			zap.Error(err))
	}
}

func actionAllowed(game domain.Game, action domain.Action) bool {
	switch game {
	case domain.GameDice:
		return action == domain.ActionRoll
	case domain.GameSlots, domain.GameRoulette:
		return action == domain.ActionSpin
	case domain.GameBlackjack:
		switch action {
		case domain.ActionDeal, domain.ActionHit, domain.ActionStand, domain.ActionDouble:
			return true
		}
	}
	return false
}

// stakesNewBet reports whether the action puts fresh money on the table.
func stakesNewBet(action domain.Action) bool {
	switch action {
	case domain.ActionRoll, domain.ActionSpin, domain.ActionDeal:
		return true
	}
	return false
}

func isTerminal(result string) bool {
	switch result {
	case domain.ResultWin, domain.ResultLose, domain.ResultPush, domain.ResultBlackjack, domain.ResultBust:
		return true
	}
	return false
}
