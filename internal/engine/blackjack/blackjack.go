// Package blackjack implements the only stateful engine: a session state
// machine (AwaitingBet -> Dealt -> PlayerTurn -> DealerTurn -> Resolved)
// persisted in the game state store. Each action is one engine call; the
// orchestrator debits at deal and double and credits on the terminal
// outcome.
package blackjack

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Payout rules: win pays 1:1, a natural pays 3:2, push refunds the stake.
// Expressed as gross credit multipliers over the (possibly doubled) bet.
const (
	multiplierWin     = 2.0
	multiplierNatural = 2.5
	multiplierPush    = 1.0
	dealerStandsAt    = 17
)

// Engine implements domain.GameEngine for blackjack.
type Engine struct {
	sessions *SessionStore
	logger   *logger.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a blackjack engine over the given session store.
func New(sessions *SessionStore, logger *logger.Logger) *Engine {
	return &Engine{
		sessions: sessions,
		logger:   logger,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Game returns the game this engine resolves.
func (e *Engine) Game() domain.Game {
	return domain.GameBlackjack
}

// Resolve dispatches one action against the player's session. Non-terminal
// actions return a zero-payout outcome with the running hand in GameData;
// the terminal outcome carries the gross payout for the whole hand.
func (e *Engine) Resolve(ctx context.Context, req domain.EngineRequest) (*domain.Outcome, error) {
	switch req.Action {
	case domain.ActionDeal:
		return e.deal(ctx, req)
	case domain.ActionHit:
		return e.hit(ctx, req)
	case domain.ActionStand:
		return e.stand(ctx, req)
	case domain.ActionDouble:
		return e.double(ctx, req)
	default:
		return nil, domain.NewInvalidInputError("action", "unknown blackjack action: "+string(req.Action))
	}
}

func (e *Engine) deal(ctx context.Context, req domain.EngineRequest) (*domain.Outcome, error) {
	if req.BetAmount <= 0 {
		return nil, domain.NewInvalidInputError("bet_amount", "must be greater than 0")
	}

	if session, found, err := e.sessions.Load(ctx, req.PlayerID); err == nil && found && session.State != StateResolved {
		return nil, domain.NewInvalidStateError(string(domain.ActionDeal), string(session.State))
	}

	e.mu.Lock()
	player := []Card{drawCard(e.rnd), drawCard(e.rnd)}
	dealer := []Card{drawCard(e.rnd), drawCard(e.rnd)}
	e.mu.Unlock()

	session := &Session{
		State:      StatePlayerTurn,
		Bet:        req.BetAmount,
		PlayerHand: player,
		DealerHand: dealer,
		StartedAt:  time.Now().UTC(),
	}

	// Immediate blackjack resolves the hand before the player ever acts.
	if IsNatural(player) {
		session.State = StateResolved
		if err := e.sessions.Save(ctx, req.PlayerID, session); err != nil {
			e.logger.Warn("Failed to save blackjack session", zap.Error(err))
		}
		if IsNatural(dealer) {
			return e.terminalOutcome(session, domain.ResultPush, multiplierPush), nil
		}
		return e.terminalOutcome(session, domain.ResultBlackjack, multiplierNatural), nil
	}

	if err := e.sessions.Save(ctx, req.PlayerID, session); err != nil {
		e.logger.Warn("Failed to save blackjack session", zap.Error(err))
	}

	return e.progressOutcome(session, domain.ResultDealt), nil
}

func (e *Engine) hit(ctx context.Context, req domain.EngineRequest) (*domain.Outcome, error) {
	session, err := e.loadActive(ctx, req.PlayerID, domain.ActionHit)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	session.PlayerHand = append(session.PlayerHand, drawCard(e.rnd))
	e.mu.Unlock()

	value := HandValue(session.PlayerHand)
	switch {
	case value > 21:
		session.State = StateResolved
		e.save(ctx, req.PlayerID, session)
		return e.terminalOutcome(session, domain.ResultBust, 0), nil
	case value == 21:
		// Nothing left for the player to decide; play the dealer out.
		return e.playDealer(ctx, req.PlayerID, session)
	default:
		e.save(ctx, req.PlayerID, session)
		return e.progressOutcome(session, domain.ResultHit), nil
	}
}

func (e *Engine) stand(ctx context.Context, req domain.EngineRequest) (*domain.Outcome, error) {
	session, err := e.loadActive(ctx, req.PlayerID, domain.ActionStand)
	if err != nil {
		return nil, err
	}
	return e.playDealer(ctx, req.PlayerID, session)
}

func (e *Engine) double(ctx context.Context, req domain.EngineRequest) (*domain.Outcome, error) {
	session, err := e.loadActive(ctx, req.PlayerID, domain.ActionDouble)
	if err != nil {
		return nil, err
	}
	if len(session.PlayerHand) != 2 || session.Doubled {
		return nil, domain.NewInvalidStateError(string(domain.ActionDouble), string(session.State))
	}

	session.Bet *= 2
	session.Doubled = true

	e.mu.Lock()
	session.PlayerHand = append(session.PlayerHand, drawCard(e.rnd))
	e.mu.Unlock()

	if HandValue(session.PlayerHand) > 21 {
		session.State = StateResolved
		e.save(ctx, req.PlayerID, session)
		return e.terminalOutcome(session, domain.ResultBust, 0), nil
	}
	return e.playDealer(ctx, req.PlayerID, session)
}

// playDealer runs DealerTurn to completion and resolves the hand.
func (e *Engine) playDealer(ctx context.Context, playerID string, session *Session) (*domain.Outcome, error) {
	session.State = StateDealerTurn

	e.mu.Lock()
	for HandValue(session.DealerHand) < dealerStandsAt {
		session.DealerHand = append(session.DealerHand, drawCard(e.rnd))
	}
	e.mu.Unlock()

	playerValue := HandValue(session.PlayerHand)
	dealerValue := HandValue(session.DealerHand)

	session.State = StateResolved
	e.save(ctx, playerID, session)

	switch {
	case dealerValue > 21 || playerValue > dealerValue:
		return e.terminalOutcome(session, domain.ResultWin, multiplierWin), nil
	case playerValue == dealerValue:
		return e.terminalOutcome(session, domain.ResultPush, multiplierPush), nil
	default:
		return e.terminalOutcome(session, domain.ResultLose, 0), nil
	}
}

// loadActive fetches the session and rejects actions outside PlayerTurn.
func (e *Engine) loadActive(ctx context.Context, playerID string, action domain.Action) (*Session, error) {
	session, found, err := e.sessions.Load(ctx, playerID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load blackjack session", err)
	}
	if !found {
		return nil, domain.NewInvalidStateError(string(action), string(StateAwaitingBet))
	}
	if session.State != StatePlayerTurn {
		return nil, domain.NewInvalidStateError(string(action), string(session.State))
	}
	return session, nil
}

func (e *Engine) save(ctx context.Context, playerID string, session *Session) {
	if err := e.sessions.Save(ctx, playerID, session); err != nil {
		e.logger.Warn("Failed to save blackjack session", zap.Error(err))
	}
}

// progressOutcome reports a non-terminal step: no payout, hand in GameData.
// The dealer's hole card stays hidden until the hand resolves.
func (e *Engine) progressOutcome(session *Session, result string) *domain.Outcome {
	return &domain.Outcome{
		Win:    false,
		Payout: 0,
		Result: result,
		GameData: map[string]any{
			"state":       string(session.State),
			"playerHand":  handStrings(session.PlayerHand),
			"playerValue": HandValue(session.PlayerHand),
			"dealerUp":    session.DealerHand[0].Rank + " of " + session.DealerHand[0].Suit,
			"bet":         session.Bet,
		},
		Timestamp: time.Now().UTC(),
	}
}

// terminalOutcome reports the resolved hand. Payout is gross credit over the
// final (possibly doubled) bet.
func (e *Engine) terminalOutcome(session *Session, result string, multiplier float64) *domain.Outcome {
	win := result == domain.ResultWin || result == domain.ResultBlackjack
	return &domain.Outcome{
		Win:              win,
		Payout:           session.Bet * multiplier,
		PayoutMultiplier: multiplier,
		Result:           result,
		GameData: map[string]any{
			"state":       string(StateResolved),
			"playerHand":  handStrings(session.PlayerHand),
			"playerValue": HandValue(session.PlayerHand),
			"dealerHand":  handStrings(session.DealerHand),
			"dealerValue": HandValue(session.DealerHand),
			"bet":         session.Bet,
			"doubled":     session.Doubled,
		},
		Timestamp: time.Now().UTC(),
	}
}
