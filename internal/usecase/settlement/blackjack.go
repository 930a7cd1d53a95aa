package settlement

import (
	"context"

	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/engine/blackjack"
	"go.uber.org/zap"
)

// placeBlackjack settles one blackjack action. Money moves differently from
// the single-shot games: the stake is debited at deal and again at double,
// and the gross payout is credited only when the hand reaches a terminal
// result. Hit and stand move no new money of their own.
func (uc *SettlementUseCase) placeBlackjack(ctx context.Context, eng domain.GameEngine, wager domain.Wager) (*domain.Settlement, error) {
	stake, totalBet, err := uc.blackjackStake(ctx, &wager)
	if err != nil {
		return nil, err
	}

	if stake > 0 {
		balance, err := uc.ledger.Get(ctx, wager.PlayerID)
		if err != nil {
			return nil, err
		}
		if balance < stake {
			return nil, domain.NewInsufficientFundsError(balance, stake)
		}
	}

	outcome, err := eng.Resolve(ctx, domain.EngineRequest{
		PlayerID:  wager.PlayerID,
		Action:    wager.Action,
		BetAmount: wager.BetAmount,
		BetType:   wager.BetType,
		BetDetail: wager.BetDetail,
	})
	if err != nil {
		return nil, err
	}

	newBalance, err := uc.applyMoney(ctx, wager.PlayerID, stake, outcome.Payout)
	if err != nil {
		return nil, err
	}

	uc.record(&wager, totalBet, outcome)
	uc.writeDisplayState(ctx, &wager, totalBet, outcome)

	if isTerminal(outcome.Result) {
		uc.logger.Info("Blackjack hand resolved",
			zap.String("player_id", wager.PlayerID),
			zap.String("result", outcome.Result),
			zap.Float64("bet", totalBet),
			zap.Float64("payout", outcome.Payout))
	}

	return &domain.Settlement{Outcome: outcome, NewBalance: newBalance}, nil
}

// blackjackStake works out the fresh money this action puts at risk and the
// total bet riding on the hand afterwards. Double needs the session read
// before the engine mutates it: the funds check covers the additional stake,
// which equals the pre-double bet.
func (uc *SettlementUseCase) blackjackStake(ctx context.Context, wager *domain.Wager) (stake, totalBet float64, err error) {
	switch wager.Action {
	case domain.ActionDeal:
		return wager.BetAmount, wager.BetAmount, nil

	case domain.ActionHit, domain.ActionStand:
		session, found, err := uc.sessions.Load(ctx, wager.PlayerID)
		if err != nil {
			return 0, 0, domain.NewInternalError("Failed to load blackjack session", err)
		}
		if !found || session.State != blackjack.StatePlayerTurn {
			return 0, 0, domain.NewInvalidStateError(string(wager.Action), sessionStateLabel(session, found))
		}
		return 0, session.Bet, nil

	case domain.ActionDouble:
		session, found, err := uc.sessions.Load(ctx, wager.PlayerID)
		if err != nil {
			return 0, 0, domain.NewInternalError("Failed to load blackjack session", err)
		}
		if !found || session.State != blackjack.StatePlayerTurn {
			return 0, 0, domain.NewInvalidStateError(string(wager.Action), sessionStateLabel(session, found))
		}
		return session.Bet, session.Bet * 2, nil
	}

	return 0, 0, domain.NewInvalidInputError("action", "unknown blackjack action: "+string(wager.Action))
}

func sessionStateLabel(session *blackjack.Session, found bool) string {
	if !found {
		return string(blackjack.StateAwaitingBet)
	}
	return string(session.State)
}
