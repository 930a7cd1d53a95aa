// Package slots implements the three-reel slot engine: weighted symbol
// draws with a payout table keyed by exact triple match.
package slots

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
)

// symbolWeight pairs a reel symbol with its draw weight. Rarer symbols pay
// more; weights are per reel and reels draw independently.
type symbolWeight struct {
	Symbol string
	Weight int
}

var reel = []symbolWeight{
	{"cherry", 30},
	{"lemon", 25},
	{"orange", 20},
	{"bell", 12},
	{"bar", 8},
	{"seven", 4},
	{"diamond", 1},
}

// triplePayout maps an exact triple to its multiplier.
var triplePayout = map[string]float64{
	"cherry":  2,
	"lemon":   3,
	"orange":  4,
	"bell":    8,
	"bar":     15,
	"seven":   40,
	"diamond": 100,
}

// Engine implements domain.GameEngine for slots.
type Engine struct {
	logger *logger.Logger

	mu  sync.Mutex
	rnd *rand.Rand

	totalWeight int
}

// New creates a slots engine with its own seeded random source.
func New(logger *logger.Logger) *Engine {
	total := 0
	for _, sw := range reel {
		total += sw.Weight
	}
	return &Engine{
		logger:      logger,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
		totalWeight: total,
	}
}

// Game returns the game this engine resolves.
func (e *Engine) Game() domain.Game {
	return domain.GameSlots
}

// Resolve spins three reels. A near miss (two matching symbols) is
// classified for UX feedback only and never pays.
func (e *Engine) Resolve(ctx context.Context, req domain.EngineRequest) (*domain.Outcome, error) {
	if req.BetAmount <= 0 {
		return nil, domain.NewInvalidInputError("bet_amount", "must be greater than 0")
	}

	e.mu.Lock()
	reels := [3]string{e.draw(), e.draw(), e.draw()}
	e.mu.Unlock()

	win, multiplier, nearMiss := Evaluate(reels)

	payout := 0.0
	result := domain.ResultLose
	if win {
		payout = req.BetAmount * multiplier
		result = domain.ResultWin
	}

	return &domain.Outcome{
		Win:              win,
		Payout:           payout,
		PayoutMultiplier: multiplier,
		Result:           result,
		GameData: map[string]any{
			"reels":    []string{reels[0], reels[1], reels[2]},
			"nearMiss": nearMiss,
		},
		Timestamp: time.Now().UTC(),
	}, nil
}

// draw picks one weighted symbol. Caller holds e.mu.
func (e *Engine) draw() string {
	n := e.rnd.Intn(e.totalWeight)
	for _, sw := range reel {
		n -= sw.Weight
		if n < 0 {
			return sw.Symbol
		}
	}
	return reel[len(reel)-1].Symbol
}

// Evaluate settles a concrete spin: exact triple pays per the table, two
// matching symbols is a near miss worth nothing.
func Evaluate(reels [3]string) (win bool, multiplier float64, nearMiss bool) {
	if reels[0] == reels[1] && reels[1] == reels[2] {
		return true, triplePayout[reels[0]], false
	}
	if reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2] {
		return false, 0, true
	}
	return false, 0, false
}

// Symbols lists the reel symbols in payout order, cheapest first.
func Symbols() []string {
	out := make([]string, len(reel))
	for i, sw := range reel {
		out[i] = sw.Symbol
	}
	return out
}
