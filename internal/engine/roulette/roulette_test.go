package roulette

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/domain/mocks"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"pgregory.net/rapid"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name           string
		winning        int
		betType        string
		straight       int
		wantWin        bool
		wantMultiplier float64
	}{
		{"Straight_Hit", 17, BetStraight, 17, true, 36},
		{"Straight_Miss", 18, BetStraight, 17, false, 36},
		{"Straight_Zero", 0, BetStraight, 0, true, 36},
		{"Red_Hit", 1, BetRed, -1, true, 2},
		{"Red_Miss", 2, BetRed, -1, false, 2},
		{"Black_Hit", 2, BetBlack, -1, true, 2},
		{"Odd_Hit", 3, BetOdd, -1, true, 2},
		{"Even_Hit", 4, BetEven, -1, true, 2},
		{"Low_Hit", 18, BetLow, -1, true, 2},
		{"Low_Miss", 19, BetLow, -1, false, 2},
		{"High_Hit", 19, BetHigh, -1, true, 2},
		{"Zero_Loses_Red", 0, BetRed, -1, false, 2},
		{"Zero_Loses_Black", 0, BetBlack, -1, false, 2},
		{"Zero_Loses_Odd", 0, BetOdd, -1, false, 2},
		{"Zero_Loses_Even", 0, BetEven, -1, false, 2},
		{"Zero_Loses_Low", 0, BetLow, -1, false, 2},
		{"Zero_Loses_High", 0, BetHigh, -1, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win, multiplier := Evaluate(tt.winning, tt.betType, tt.straight)
			assert.Equal(t, tt.wantWin, win)
			assert.Equal(t, tt.wantMultiplier, multiplier)
		})
	}
}

func TestColor(t *testing.T) {
	assert.Equal(t, "green", Color(0))
	assert.Equal(t, "red", Color(1))
	assert.Equal(t, "black", Color(2))
	assert.Equal(t, "red", Color(36))
	assert.Equal(t, "black", Color(35))
}

func TestEvaluateProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		winning := rapid.IntRange(0, 36).Draw(rt, "winning")

		// Red and black partition the non-zero wheel.
		redWin, _ := Evaluate(winning, BetRed, -1)
		blackWin, _ := Evaluate(winning, BetBlack, -1)
		if winning == 0 {
			if redWin || blackWin {
				rt.Fatalf("zero paid an outside color bet")
			}
		} else if redWin == blackWin {
			rt.Fatalf("number %d is neither red nor black exclusively", winning)
		}

		// Low and high never both win.
		lowWin, _ := Evaluate(winning, BetLow, -1)
		highWin, _ := Evaluate(winning, BetHigh, -1)
		if lowWin && highWin {
			rt.Fatalf("number %d won both low and high", winning)
		}
	})
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	flags := mocks.NewMockFlagProvider(ctrl)
	flags.EXPECT().BoolFlag(gomock.Any(), domain.FlagHouseAdvantage, false).Return(false).AnyTimes()

	return New(flags, logger.NewLogger("test", "debug"))
}

func TestResolveStraightRequiresNumber(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.Resolve(context.Background(), domain.EngineRequest{
		PlayerID:  "alice",
		Action:    domain.ActionSpin,
		BetAmount: 10,
		BetType:   BetStraight,
	})

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidInput, appErr.Code)
}

func TestResolveStraightNumberRange(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.Resolve(context.Background(), domain.EngineRequest{
		PlayerID:  "alice",
		Action:    domain.ActionSpin,
		BetAmount: 10,
		BetType:   BetStraight,
		BetDetail: map[string]any{"number": 37},
	})

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidInput, appErr.Code)
}

func TestResolveStraightNumberTypes(t *testing.T) {
	eng := newTestEngine(t)

	// JSON decodes numbers to float64, clients may also send strings.
	for _, detail := range []map[string]any{
		{"number": float64(17)},
		{"number": 17},
		{"number": "17"},
	} {
		outcome, err := eng.Resolve(context.Background(), domain.EngineRequest{
			PlayerID:  "alice",
			Action:    domain.ActionSpin,
			BetAmount: 10,
			BetType:   BetStraight,
			BetDetail: detail,
		})
		require.NoError(t, err)
		assert.Equal(t, float64(36), outcome.PayoutMultiplier)
	}
}

func TestResolveHouseAdvantageConvertsWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	flags := mocks.NewMockFlagProvider(ctrl)
	flags.EXPECT().BoolFlag(gomock.Any(), domain.FlagHouseAdvantage, false).Return(true).AnyTimes()

	eng := New(flags, logger.NewLogger("test", "debug"))

	converted, kept := 0, 0
	for i := 0; i < 2000; i++ {
		outcome, err := eng.Resolve(context.Background(), domain.EngineRequest{
			PlayerID:  "alice",
			Action:    domain.ActionSpin,
			BetAmount: 10,
			BetType:   BetRed,
		})
		require.NoError(t, err)

		winning := outcome.GameData["winningNumber"].(int)
		spunWin, _ := Evaluate(winning, BetRed, -1)

		switch {
		case spunWin && !outcome.Win:
			converted++
			assert.Zero(t, outcome.Payout)
			assert.Equal(t, domain.ResultLose, outcome.Result)
			assert.Equal(t, float64(2), outcome.PayoutMultiplier)
		case spunWin:
			kept++
			assert.Equal(t, 20.0, outcome.Payout)
			assert.Equal(t, domain.ResultWin, outcome.Result)
		default:
			assert.False(t, outcome.Win)
			assert.Zero(t, outcome.Payout)
		}
	}

	// Conversion hits about a quarter of winning spins; over this many spins
	// both buckets are populated with overwhelming probability.
	assert.Greater(t, converted, 0)
	assert.Greater(t, kept, converted)
}

func TestResolveDefaultsToRed(t *testing.T) {
	eng := newTestEngine(t)

	outcome, err := eng.Resolve(context.Background(), domain.EngineRequest{
		PlayerID:  "alice",
		Action:    domain.ActionSpin,
		BetAmount: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, BetRed, outcome.GameData["betType"])
}
