package blackjack

import (
	"context"
	"encoding/json"
	"time"

	"github.com/vegaslabs/casinocore/internal/domain"
)

// State is the blackjack session state machine position.
type State string

const (
	StateAwaitingBet State = "awaiting_bet"
	StateDealt       State = "dealt"
	StatePlayerTurn  State = "player_turn"
	StateDealerTurn  State = "dealer_turn"
	StateResolved    State = "resolved"
)

// Session is the finite-state object for one player's hand, keyed by player
// in the game state store. It is the only game state that is read back by
// the engine; every other game treats the store as write-only display state.
type Session struct {
	State      State     `json:"state"`
	Bet        float64   `json:"bet"`
	Doubled    bool      `json:"doubled"`
	PlayerHand []Card    `json:"player_hand"`
	DealerHand []Card    `json:"dealer_hand"`
	StartedAt  time.Time `json:"started_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// sessionGame namespaces blackjack sessions away from the display state the
// orchestrator writes under the plain "blackjack" key.
const sessionGame = domain.Game("blackjack_session")

// sessionTTL bounds how long an unfinished hand survives. An expired hand is
// simply gone; the player deals again.
const sessionTTL = 30 * time.Minute

// SessionStore persists blackjack sessions on top of the shared game state
// store.
type SessionStore struct {
	store domain.GameStateStore
}

// NewSessionStore wraps a game state store for session persistence.
func NewSessionStore(store domain.GameStateStore) *SessionStore {
	return &SessionStore{store: store}
}

// Load returns the player's session, or (nil, false, nil) when none exists.
func (s *SessionStore) Load(ctx context.Context, playerID string) (*Session, bool, error) {
	raw, found, err := s.store.Get(ctx, playerID, sessionGame)
	if err != nil || !found {
		return nil, false, err
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// A corrupt session is unrecoverable display state, not money; drop it.
		_ = s.store.Delete(ctx, playerID, sessionGame)
		return nil, false, nil
	}
	return &session, true, nil
}

// Save overwrites the player's session.
func (s *SessionStore) Save(ctx context.Context, playerID string, session *Session) error {
	session.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, playerID, sessionGame, raw, sessionTTL)
}

// Delete removes the player's session.
func (s *SessionStore) Delete(ctx context.Context, playerID string) error {
	return s.store.Delete(ctx, playerID, sessionGame)
}
