package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/engine/blackjack"
)

func dealtOutcome() *domain.Outcome {
	return &domain.Outcome{
		Result:    domain.ResultDealt,
		Timestamp: time.Now().UTC(),
	}
}

func terminalWin(payout float64) *domain.Outcome {
	return &domain.Outcome{
		Win:              true,
		Payout:           payout,
		PayoutMultiplier: 2,
		Result:           domain.ResultWin,
		Timestamp:        time.Now().UTC(),
	}
}

func savePlayerTurn(t *testing.T, f *fixture, player string, bet float64) {
	t.Helper()
	require.NoError(t, f.sessions.Save(context.Background(), player, &blackjack.Session{
		State: blackjack.StatePlayerTurn,
		Bet:   bet,
		PlayerHand: []blackjack.Card{
			{Rank: "5", Suit: "spades"},
			{Rank: "6", Suit: "hearts"},
		},
		DealerHand: []blackjack.Card{
			{Rank: "K", Suit: "clubs"},
			{Rank: "7", Suit: "diamonds"},
		},
	}))
}

func TestBlackjackDealDebitsStake(t *testing.T) {
	f := newFixture(t, domain.GameBlackjack, MinBetCoerce)
	ctx := context.Background()

	f.ledger.EXPECT().Get(ctx, "alice").Return(100.0, nil)
	f.engine.EXPECT().Resolve(ctx, gomock.Any()).Return(dealtOutcome(), nil)
	f.ledger.EXPECT().Adjust(ctx, "alice", -20.0).Return(80.0, nil)

	settlement, err := f.uc.PlaceWager(ctx, domain.Wager{
		PlayerID:  "alice",
		Game:      domain.GameBlackjack,
		Action:    domain.ActionDeal,
		BetAmount: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, settlement.NewBalance)
	assert.Equal(t, domain.ResultDealt, settlement.Outcome.Result)
}

func TestBlackjackDealInsufficientFunds(t *testing.T) {
	f := newFixture(t, domain.GameBlackjack, MinBetCoerce)
	ctx := context.Background()

	f.ledger.EXPECT().Get(ctx, "alice").Return(15.0, nil)

	_, err := f.uc.PlaceWager(ctx, domain.Wager{
		PlayerID:  "alice",
		Game:      domain.GameBlackjack,
		Action:    domain.ActionDeal,
		BetAmount: 20,
	})

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInsufficientFunds, appErr.Code)
}

func TestBlackjackHitMovesNoNewMoney(t *testing.T) {
	f := newFixture(t, domain.GameBlackjack, MinBetCoerce)
	ctx := context.Background()
	savePlayerTurn(t, f, "alice", 20)

	f.engine.EXPECT().Resolve(ctx, gomock.Any()).Return(&domain.Outcome{
		Result:    domain.ResultHit,
		Timestamp: time.Now().UTC(),
	}, nil)
	f.ledger.EXPECT().Get(ctx, "alice").Return(80.0, nil)

	settlement, err := f.uc.PlaceWager(ctx, domain.Wager{
		PlayerID: "alice",
		Game:     domain.GameBlackjack,
		Action:   domain.ActionHit,
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, settlement.NewBalance)
}

func TestBlackjackStandCreditsTerminalPayout(t *testing.T) {
	f := newFixture(t, domain.GameBlackjack, MinBetCoerce)
	ctx := context.Background()
	savePlayerTurn(t, f, "alice", 20)

	f.engine.EXPECT().Resolve(ctx, gomock.Any()).Return(terminalWin(40), nil)
	f.ledger.EXPECT().Adjust(ctx, "alice", 40.0).Return(120.0, nil)
	f.recorder.EXPECT().Record(gomock.Any()).Do(func(result *domain.GameResult) {
		assert.Equal(t, 20.0, result.BetAmount)
		assert.Equal(t, 40.0, result.Payout)
	})

	settlement, err := f.uc.PlaceWager(ctx, domain.Wager{
		PlayerID: "alice",
		Game:     domain.GameBlackjack,
		Action:   domain.ActionStand,
	})
	require.NoError(t, err)
	assert.Equal(t, 120.0, settlement.NewBalance)
}

func TestBlackjackDoubleDebitsAdditionalStake(t *testing.T) {
	f := newFixture(t, domain.GameBlackjack, MinBetCoerce)
	ctx := context.Background()
	savePlayerTurn(t, f, "alice", 20)

	// Funds check covers only the additional 20 on top of the hand.
	f.ledger.EXPECT().Get(ctx, "alice").Return(25.0, nil)
	f.engine.EXPECT().Resolve(ctx, gomock.Any()).Return(terminalWin(80), nil)
	f.ledger.EXPECT().Adjust(ctx, "alice", -20.0).Return(5.0, nil)
	f.ledger.EXPECT().Adjust(ctx, "alice", 80.0).Return(85.0, nil)
	f.recorder.EXPECT().Record(gomock.Any()).Do(func(result *domain.GameResult) {
		assert.Equal(t, 40.0, result.BetAmount)
		assert.Equal(t, 80.0, result.Payout)
	})

	settlement, err := f.uc.PlaceWager(ctx, domain.Wager{
		PlayerID: "alice",
		Game:     domain.GameBlackjack,
		Action:   domain.ActionDouble,
	})
	require.NoError(t, err)
	assert.Equal(t, 85.0, settlement.NewBalance)
}

func TestBlackjackDoubleInsufficientFunds(t *testing.T) {
	f := newFixture(t, domain.GameBlackjack, MinBetCoerce)
	ctx := context.Background()
	savePlayerTurn(t, f, "alice", 20)

	f.ledger.EXPECT().Get(ctx, "alice").Return(15.0, nil)

	_, err := f.uc.PlaceWager(ctx, domain.Wager{
		PlayerID: "alice",
		Game:     domain.GameBlackjack,
		Action:   domain.ActionDouble,
	})

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInsufficientFunds, appErr.Code)
}

func TestBlackjackActionWithoutSession(t *testing.T) {
	f := newFixture(t, domain.GameBlackjack, MinBetCoerce)

	for _, action := range []domain.Action{domain.ActionHit, domain.ActionStand, domain.ActionDouble} {
		_, err := f.uc.PlaceWager(context.Background(), domain.Wager{
			PlayerID: "alice",
			Game:     domain.GameBlackjack,
			Action:   action,
		})
		appErr, ok := domain.IsAppError(err)
		require.True(t, ok, "action %s", action)
		assert.Equal(t, domain.ErrCodeInvalidState, appErr.Code)
	}
}
