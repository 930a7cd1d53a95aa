// Package dice implements the craps-style dice engine: two uniform draws in
// [1,6] with a payout table keyed by bet type.
package dice

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// houseAdvantageRate is the probability of converting a won roll into a loss
// while the casino.house-advantage flag is on. The conversion is logged on
// every application; it is policy, never silent.
const houseAdvantageRate = 0.25

// BetType names the supported dice bets.
const (
	BetPass      = "pass"
	BetCome      = "come"
	BetDontPass  = "dont_pass"
	BetField     = "field"
	BetSnakeEyes = "snake_eyes"
	BetBoxcars   = "boxcars"
	BetSevenOut  = "seven_out"
)

// Engine implements domain.GameEngine for dice.
type Engine struct {
	flags  domain.FlagProvider
	logger *logger.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a dice engine with its own seeded random source.
func New(flags domain.FlagProvider, logger *logger.Logger) *Engine {
	return &Engine{
		flags:  flags,
		logger: logger,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Game returns the game this engine resolves.
func (e *Engine) Game() domain.Game {
	return domain.GameDice
}

// Resolve draws two dice and settles the bet type against the payout table.
func (e *Engine) Resolve(ctx context.Context, req domain.EngineRequest) (*domain.Outcome, error) {
	if req.BetAmount <= 0 {
		return nil, domain.NewInvalidInputError("bet_amount", "must be greater than 0")
	}

	betType := req.BetType
	if betType == "" {
		betType = BetPass
	}
	if !KnownBetType(betType) {
		return nil, domain.NewInvalidInputError("bet_type", "unknown dice bet type: "+betType)
	}

	if betType == BetPass && !e.flags.BoolFlag(ctx, domain.FlagDicePassLine, true) {
		return nil, domain.NewPolicyForbiddenError(BetPass)
	}
	if betType == BetCome && !e.flags.BoolFlag(ctx, domain.FlagDiceComeBets, false) {
		return nil, domain.NewPolicyForbiddenError(BetCome)
	}

	e.mu.Lock()
	d1 := e.rnd.Intn(6) + 1
	d2 := e.rnd.Intn(6) + 1
	houseRoll := e.rnd.Float64()
	e.mu.Unlock()

	win, multiplier := Evaluate(d1, d2, betType)

	payout := 0.0
	if win {
		payout = req.BetAmount * multiplier

		if e.flags.BoolFlag(ctx, domain.FlagHouseAdvantage, false) && houseRoll < houseAdvantageRate {
			win = false
			payout = 0
			e.logger.Info("House advantage applied: win converted to loss",
				zap.String("game", "dice"),
				zap.String("player_id", req.PlayerID),
				zap.Int("dice1", d1),
				zap.Int("dice2", d2))
		}
	}

	result := domain.ResultLose
	if win {
		result = domain.ResultWin
	}

	return &domain.Outcome{
		Win:              win,
		Payout:           payout,
		PayoutMultiplier: multiplier,
		Result:           result,
		GameData: map[string]any{
			"dice1":   d1,
			"dice2":   d2,
			"sum":     d1 + d2,
			"betType": betType,
		},
		Timestamp: time.Now().UTC(),
	}, nil
}

// KnownBetType reports whether betType is in the payout table.
func KnownBetType(betType string) bool {
	switch betType {
	case BetPass, BetCome, BetDontPass, BetField, BetSnakeEyes, BetBoxcars, BetSevenOut:
		return true
	}
	return false
}

// Evaluate applies the payout table to a concrete roll. The multiplier is
// returned for losing rolls too so the caller can report the odds played.
func Evaluate(d1, d2 int, betType string) (win bool, multiplier float64) {
	sum := d1 + d2
	switch betType {
	case BetPass, BetCome:
		return sum == 7 || sum == 11, 2
	case BetDontPass:
		return sum == 2 || sum == 3, 2
	case BetField:
		switch sum {
		case 2, 3, 4, 9, 10, 11, 12:
			return true, 2
		}
		return false, 2
	case BetSnakeEyes:
		return d1 == 1 && d2 == 1, 30
	case BetBoxcars:
		return d1 == 6 && d2 == 6, 30
	case BetSevenOut:
		return sum == 7, 4
	}
	return false, 0
}
