package settlement

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/domain/mocks"
	"github.com/vegaslabs/casinocore/internal/engine"
	"github.com/vegaslabs/casinocore/internal/engine/blackjack"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"github.com/vegaslabs/casinocore/internal/infrastructure/statestore"
)

type fixture struct {
	ctrl     *gomock.Controller
	engine   *mocks.MockGameEngine
	ledger   *mocks.MockBalanceLedger
	recorder *mocks.MockResultRecorder
	store    domain.GameStateStore
	sessions *blackjack.SessionStore
	uc       domain.SettlementUseCase
}

func newFixture(t *testing.T, game domain.Game, behavior MinBetBehavior) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	eng := mocks.NewMockGameEngine(ctrl)
	eng.EXPECT().Game().Return(game).AnyTimes()

	registry := engine.NewRegistry()
	require.NoError(t, registry.Register(eng))

	ledger := mocks.NewMockBalanceLedger(ctrl)
	recorder := mocks.NewMockResultRecorder(ctrl)
	store := statestore.NewMemoryStore()
	sessions := blackjack.NewSessionStore(store)

	uc := NewSettlementUseCase(
		registry,
		ledger,
		store,
		sessions,
		recorder,
		logger.NewLogger("test", "debug"),
		10,
		behavior,
	)

	return &fixture{
		ctrl:     ctrl,
		engine:   eng,
		ledger:   ledger,
		recorder: recorder,
		store:    store,
		sessions: sessions,
		uc:       uc,
	}
}

func winOutcome(payout float64) *domain.Outcome {
	return &domain.Outcome{
		Win:              true,
		Payout:           payout,
		PayoutMultiplier: 2,
		Result:           domain.ResultWin,
		Timestamp:        time.Now().UTC(),
	}
}

func loseOutcome() *domain.Outcome {
	return &domain.Outcome{
		Result:    domain.ResultLose,
		Timestamp: time.Now().UTC(),
	}
}

func TestPlaceWagerWin(t *testing.T) {
	f := newFixture(t, domain.GameDice, MinBetCoerce)
	ctx := context.Background()

	f.ledger.EXPECT().Get(ctx, "alice").Return(1000.0, nil)
	f.engine.EXPECT().Resolve(ctx, gomock.Any()).Return(winOutcome(100), nil)
	gomock.InOrder(
		f.ledger.EXPECT().Adjust(ctx, "alice", -50.0).Return(950.0, nil),
		f.ledger.EXPECT().Adjust(ctx, "alice", 100.0).Return(1050.0, nil),
	)
	f.recorder.EXPECT().Record(gomock.Any()).Do(func(result *domain.GameResult) {
		assert.Equal(t, "alice", result.Username)
		assert.Equal(t, "dice", result.Game)
		assert.Equal(t, 50.0, result.BetAmount)
		assert.Equal(t, 100.0, result.Payout)
		assert.True(t, result.Win)
		assert.Equal(t, `{"timestamp":"`+result.Timestamp.Format(time.RFC3339)+`"}`, result.Metadata)
	})

	settlement, err := f.uc.PlaceWager(ctx, domain.Wager{
		PlayerID:  "alice",
		Game:      domain.GameDice,
		Action:    domain.ActionRoll,
		BetAmount: 50,
		BetType:   "pass",
	})
	require.NoError(t, err)
	assert.Equal(t, 1050.0, settlement.NewBalance)
	assert.True(t, settlement.Outcome.Win)

	// A resolved wager leaves display state behind.
	_, found, err := f.store.Get(ctx, "alice", domain.GameDice)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestPlaceWagerLossSkipsCredit(t *testing.T) {
	f := newFixture(t, domain.GameDice, MinBetCoerce)
	ctx := context.Background()

	f.ledger.EXPECT().Get(ctx, "alice").Return(1000.0, nil)
	f.engine.EXPECT().Resolve(ctx, gomock.Any()).Return(loseOutcome(), nil)
	f.ledger.EXPECT().Adjust(ctx, "alice", -50.0).Return(950.0, nil)
	f.recorder.EXPECT().Record(gomock.Any())

	settlement, err := f.uc.PlaceWager(ctx, domain.Wager{
		PlayerID:  "alice",
		Game:      domain.GameDice,
		Action:    domain.ActionRoll,
		BetAmount: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 950.0, settlement.NewBalance)
}

func TestPlaceWagerInsufficientFunds(t *testing.T) {
	f := newFixture(t, domain.GameDice, MinBetCoerce)
	ctx := context.Background()

	f.ledger.EXPECT().Get(ctx, "alice").Return(30.0, nil)

	_, err := f.uc.PlaceWager(ctx, domain.Wager{
		PlayerID:  "alice",
		Game:      domain.GameDice,
		Action:    domain.ActionRoll,
		BetAmount: 50,
	})

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInsufficientFunds, appErr.Code)
	assert.Contains(t, appErr.Details, "balance=30.00")
	assert.Contains(t, appErr.Details, "required=50.00")
}

func TestPlaceWagerEngineFailureMovesNoMoney(t *testing.T) {
	f := newFixture(t, domain.GameDice, MinBetCoerce)
	ctx := context.Background()

	f.ledger.EXPECT().Get(ctx, "alice").Return(1000.0, nil)
	f.engine.EXPECT().Resolve(ctx, gomock.Any()).
		Return(nil, domain.NewEngineUnavailableError("dice", errors.New("connection refused")))

	_, err := f.uc.PlaceWager(ctx, domain.Wager{
		PlayerID:  "alice",
		Game:      domain.GameDice,
		Action:    domain.ActionRoll,
		BetAmount: 50,
	})

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeEngineUnavailable, appErr.Code)
}

func TestPlaceWagerCoercesMinBet(t *testing.T) {
	f := newFixture(t, domain.GameDice, MinBetCoerce)
	ctx := context.Background()

	f.ledger.EXPECT().Get(ctx, "alice").Return(1000.0, nil)
	f.engine.EXPECT().Resolve(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.EngineRequest) (*domain.Outcome, error) {
			assert.Equal(t, 10.0, req.BetAmount)
			return loseOutcome(), nil
		})
	f.ledger.EXPECT().Adjust(ctx, "alice", -10.0).Return(990.0, nil)
	f.recorder.EXPECT().Record(gomock.Any())

	_, err := f.uc.PlaceWager(ctx, domain.Wager{
		PlayerID:  "alice",
		Game:      domain.GameDice,
		Action:    domain.ActionRoll,
		BetAmount: 0,
	})
	require.NoError(t, err)
}

func TestPlaceWagerRejectsBelowMinBet(t *testing.T) {
	f := newFixture(t, domain.GameDice, MinBetReject)

	_, err := f.uc.PlaceWager(context.Background(), domain.Wager{
		PlayerID:  "alice",
		Game:      domain.GameDice,
		Action:    domain.ActionRoll,
		BetAmount: 5,
	})

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidInput, appErr.Code)
}

func TestPlaceWagerValidation(t *testing.T) {
	f := newFixture(t, domain.GameDice, MinBetCoerce)

	tests := []struct {
		name  string
		wager domain.Wager
	}{
		{"Missing_Player", domain.Wager{Game: domain.GameDice, Action: domain.ActionRoll, BetAmount: 50}},
		{"Unknown_Game", domain.Wager{PlayerID: "alice", Game: "poker", Action: domain.ActionDeal, BetAmount: 50}},
		{"Wrong_Action", domain.Wager{PlayerID: "alice", Game: domain.GameDice, Action: domain.ActionSpin, BetAmount: 50}},
		{"Negative_Bet", domain.Wager{PlayerID: "alice", Game: domain.GameDice, Action: domain.ActionRoll, BetAmount: -5}},
		{"Blackjack_Action_On_Dice", domain.Wager{PlayerID: "alice", Game: domain.GameDice, Action: domain.ActionHit, BetAmount: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.PlaceWager(context.Background(), tt.wager)
			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, domain.ErrCodeInvalidInput, appErr.Code)
		})
	}
}

func TestPlaceWagerUnregisteredGame(t *testing.T) {
	f := newFixture(t, domain.GameDice, MinBetCoerce)

	_, err := f.uc.PlaceWager(context.Background(), domain.Wager{
		PlayerID:  "alice",
		Game:      domain.GameSlots,
		Action:    domain.ActionSpin,
		BetAmount: 50,
	})

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeEngineUnavailable, appErr.Code)
}

func TestDisplayStateWriteFailureDoesNotFailSettlement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mocks.NewMockGameEngine(ctrl)
	eng.EXPECT().Game().Return(domain.GameDice).AnyTimes()
	registry := engine.NewRegistry()
	require.NoError(t, registry.Register(eng))

	ledger := mocks.NewMockBalanceLedger(ctrl)
	recorder := mocks.NewMockResultRecorder(ctrl)
	store := mocks.NewMockGameStateStore(ctrl)
	sessions := blackjack.NewSessionStore(statestore.NewMemoryStore())

	uc := NewSettlementUseCase(registry, ledger, store, sessions, recorder,
		logger.NewLogger("test", "debug"), 10, MinBetCoerce)

	ctx := context.Background()
	ledger.EXPECT().Get(ctx, "alice").Return(1000.0, nil)
	eng.EXPECT().Resolve(ctx, gomock.Any()).Return(loseOutcome(), nil)
	ledger.EXPECT().Adjust(ctx, "alice", -50.0).Return(950.0, nil)
	recorder.EXPECT().Record(gomock.Any())
	store.EXPECT().Put(ctx, "alice", domain.GameDice, gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	settlement, err := uc.PlaceWager(ctx, domain.Wager{
		PlayerID:  "alice",
		Game:      domain.GameDice,
		Action:    domain.ActionRoll,
		BetAmount: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 950.0, settlement.NewBalance)
}

func TestBalanceRequiresPlayer(t *testing.T) {
	f := newFixture(t, domain.GameDice, MinBetCoerce)

	_, err := f.uc.Balance(context.Background(), "")
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidInput, appErr.Code)
}

func TestAdjustBalance(t *testing.T) {
	f := newFixture(t, domain.GameDice, MinBetCoerce)
	ctx := context.Background()

	f.ledger.EXPECT().Adjust(ctx, "alice", -50.0).Return(950.0, nil)

	newBalance, err := f.uc.AdjustBalance(ctx, "alice", -50)
	require.NoError(t, err)
	assert.Equal(t, 950.0, newBalance)
}

func TestAdjustBalanceRejectsNonFiniteDelta(t *testing.T) {
	f := newFixture(t, domain.GameDice, MinBetCoerce)

	for _, delta := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := f.uc.AdjustBalance(context.Background(), "alice", delta)
		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidInput, appErr.Code)
	}
}

// scriptedLedger reproduces the read-modify-write anomaly: two concurrent
// adjusts both read the same base value and the slower write wins.
type scriptedLedger struct {
	mu      sync.Mutex
	balance float64
	reads   []float64
}

func (l *scriptedLedger) Get(context.Context, string) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance, nil
}

func (l *scriptedLedger) Set(_ context.Context, _ string, amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance = amount
	return nil
}

func (l *scriptedLedger) Adjust(_ context.Context, _ string, delta float64) (float64, error) {
	l.mu.Lock()
	base := l.balance
	l.reads = append(l.reads, base)
	l.mu.Unlock()

	// Window between read and write where a concurrent adjust can land.
	time.Sleep(time.Millisecond)

	l.mu.Lock()
	l.balance = base + delta
	next := l.balance
	l.mu.Unlock()
	return next, nil
}

func TestAdjustLostUpdateAnomaly(t *testing.T) {
	led := &scriptedLedger{balance: 1000}
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = led.Adjust(ctx, "alice", -50)
	}()
	go func() {
		defer wg.Done()
		_, _ = led.Adjust(ctx, "alice", -50)
	}()
	wg.Wait()

	// Both adjusts read 1000 before either wrote, so one debit is lost.
	require.Len(t, led.reads, 2)
	if led.reads[0] == led.reads[1] {
		assert.Equal(t, 950.0, led.balance)
	} else {
		assert.Equal(t, 900.0, led.balance)
	}
}
