package domain

import "time"

// Game identifies one of the casino games.
type Game string

const (
	GameDice      Game = "dice"
	GameSlots     Game = "slots"
	GameRoulette  Game = "roulette"
	GameBlackjack Game = "blackjack"

	// GameAll is the aggregate pseudo-game for stats queries.
	GameAll Game = "all"
)

// KnownGames lists every playable game.
var KnownGames = []Game{GameDice, GameSlots, GameRoulette, GameBlackjack}

// IsPlayable reports whether g names a real game (not the "all" aggregate).
func (g Game) IsPlayable() bool {
	for _, k := range KnownGames {
		if g == k {
			return true
		}
	}
	return false
}

// Action is the player move within a game.
type Action string

const (
	ActionSpin   Action = "spin"
	ActionRoll   Action = "roll"
	ActionDeal   Action = "deal"
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionDouble Action = "double"
)

// Wager is the ephemeral value object carried through one settlement call.
// It is never persisted.
type Wager struct {
	PlayerID  string
	Game      Game
	Action    Action
	BetAmount float64
	BetType   string
	BetDetail map[string]any
}

// Outcome is the resolved result of a wager, immutable once produced by an
// engine. Payout is the gross amount credited back (0 on a loss, bet amount
// on a push).
type Outcome struct {
	Win              bool           `json:"win"`
	Payout           float64        `json:"payout"`
	PayoutMultiplier float64        `json:"payout_multiplier"`
	Result           string         `json:"result"`
	GameData         map[string]any `json:"game_data,omitempty"`
	Timestamp        time.Time      `json:"timestamp"`
}

// Outcome result labels.
const (
	ResultWin       = "win"
	ResultLose      = "lose"
	ResultPush      = "push"
	ResultBlackjack = "blackjack"
	ResultBust      = "bust"
	ResultDealt     = "dealt"
	ResultHit       = "hit"
)

// Settlement is what the orchestrator hands back to the caller: the engine
// outcome plus the balance after debit and credit were applied.
type Settlement struct {
	Outcome    *Outcome `json:"outcome"`
	NewBalance float64  `json:"new_balance"`
}
