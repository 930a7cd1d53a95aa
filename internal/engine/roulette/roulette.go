// Package roulette implements the European wheel engine: one uniform draw
// over 0..36 settled against color, number and parity bets at standard odds.
package roulette

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const houseAdvantageRate = 0.25

// BetType names the supported roulette bets.
const (
	BetStraight = "straight"
	BetRed      = "red"
	BetBlack    = "black"
	BetOdd      = "odd"
	BetEven     = "even"
	BetLow      = "low"
	BetHigh     = "high"
)

// redNumbers on a European wheel.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// Engine implements domain.GameEngine for roulette.
type Engine struct {
	flags  domain.FlagProvider
	logger *logger.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a roulette engine with its own seeded random source.
func New(flags domain.FlagProvider, logger *logger.Logger) *Engine {
	return &Engine{
		flags:  flags,
		logger: logger,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Game returns the game this engine resolves.
func (e *Engine) Game() domain.Game {
	return domain.GameRoulette
}

// Resolve spins the wheel once. Straight bets carry the target number in
// bet_detail["number"]; zero loses every outside bet.
func (e *Engine) Resolve(ctx context.Context, req domain.EngineRequest) (*domain.Outcome, error) {
	if req.BetAmount <= 0 {
		return nil, domain.NewInvalidInputError("bet_amount", "must be greater than 0")
	}

	betType := req.BetType
	if betType == "" {
		betType = BetRed
	}
	if !KnownBetType(betType) {
		return nil, domain.NewInvalidInputError("bet_type", "unknown roulette bet type: "+betType)
	}

	straightNumber := -1
	if betType == BetStraight {
		n, err := straightTarget(req.BetDetail)
		if err != nil {
			return nil, err
		}
		straightNumber = n
	}

	e.mu.Lock()
	winning := e.rnd.Intn(37)
	houseRoll := e.rnd.Float64()
	e.mu.Unlock()

	win, multiplier := Evaluate(winning, betType, straightNumber)

	payout := 0.0
	if win {
		payout = req.BetAmount * multiplier

		if e.flags.BoolFlag(ctx, domain.FlagHouseAdvantage, false) && houseRoll < houseAdvantageRate {
			win = false
			payout = 0
			e.logger.Info("House advantage applied: win converted to loss",
				zap.String("game", "roulette"),
				zap.String("player_id", req.PlayerID),
				zap.Int("winning_number", winning))
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
			"winningNumber": winning,
			"color":         Color(winning),
			"betType":       betType,
		},
		Timestamp: time.Now().UTC(),
	}, nil
}

// KnownBetType reports whether betType is a supported roulette bet.
func KnownBetType(betType string) bool {
	switch betType {
	case BetStraight, BetRed, BetBlack, BetOdd, BetEven, BetLow, BetHigh:
		return true
	}
	return false
}

// Color returns green for zero, else red or black per the wheel layout.
func Color(number int) string {
	if number == 0 {
		return "green"
	}
	if redNumbers[number] {
		return "red"
	}
	return "black"
}

// Evaluate settles a concrete spin at standard European odds.
func Evaluate(winning int, betType string, straightNumber int) (win bool, multiplier float64) {
	switch betType {
	case BetStraight:
		return winning == straightNumber, 36
	case BetRed:
		return Color(winning) == "red", 2
	case BetBlack:
		return Color(winning) == "black", 2
	case BetOdd:
		return winning != 0 && winning%2 == 1, 2
	case BetEven:
		return winning != 0 && winning%2 == 0, 2
	case BetLow:
		return winning >= 1 && winning <= 18, 2
	case BetHigh:
		return winning >= 19 && winning <= 36, 2
	}
	return false, 0
}

// straightTarget pulls the straight-bet number out of the detail blob,
// tolerating the numeric types JSON decoding produces.
func straightTarget(detail map[string]any) (int, error) {
	raw, ok := detail["number"]
	if !ok {
		return 0, domain.NewInvalidInputError("bet_detail.number", "required for straight bets")
	}

	var n int
	switch v := raw.(type) {
	case float64:
		n = int(v)
	case int:
		n = v
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, domain.NewInvalidInputError("bet_detail.number", "must be an integer")
		}
		n = parsed
	default:
		return 0, domain.NewInvalidInputError("bet_detail.number", "must be an integer")
	}

	if n < 0 || n > 36 {
		return 0, domain.NewInvalidInputError("bet_detail.number", "must be between 0 and 36")
	}
	return n, nil
}
