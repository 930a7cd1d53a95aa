package blackjack

import "math/rand"

// Card is one playing card. Rank is "A", "2".."10", "J", "Q", "K".
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

var (
	ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	suits = []string{"spades", "hearts", "diamonds", "clubs"}
)

// drawCard deals one card from an effectively infinite shoe.
func drawCard(rnd *rand.Rand) Card {
	return Card{
		Rank: ranks[rnd.Intn(len(ranks))],
		Suit: suits[rnd.Intn(len(suits))],
	}
}

// cardValue returns the hard value of a card; aces count 1 here and are
// promoted to 11 in HandValue when that does not bust the hand.
func cardValue(c Card) int {
	switch c.Rank {
	case "A":
		return 1
	case "J", "Q", "K", "10":
		return 10
	default:
		// ranks "2".."9"
		return int(c.Rank[0] - '0')
	}
}

// HandValue computes the best blackjack value of a hand, counting one ace
// as 11 when that keeps the hand at 21 or under.
func HandValue(hand []Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		total += cardValue(c)
		if c.Rank == "A" {
			aces++
		}
	}
	if aces > 0 && total+10 <= 21 {
		total += 10
	}
	return total
}

// IsNatural reports a two-card 21.
func IsNatural(hand []Card) bool {
	return len(hand) == 2 && HandValue(hand) == 21
}

// handStrings renders a hand for the game-detail blob.
func handStrings(hand []Card) []string {
	out := make([]string, len(hand))
	for i, c := range hand {
		out[i] = c.Rank + " of " + c.Suit
	}
	return out
}
