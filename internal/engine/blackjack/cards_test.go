package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func card(rank string) Card {
	return Card{Rank: rank, Suit: "spades"}
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		want int
	}{
		{"Hard_Total", []Card{card("5"), card("9")}, 14},
		{"Face_Cards", []Card{card("K"), card("Q")}, 20},
		{"Soft_Ace", []Card{card("A"), card("6")}, 17},
		{"Natural", []Card{card("A"), card("K")}, 21},
		{"Ace_Demoted", []Card{card("A"), card("9"), card("5")}, 15},
		{"Two_Aces", []Card{card("A"), card("A")}, 12},
		{"Two_Aces_High", []Card{card("A"), card("A"), card("9")}, 21},
		{"Bust", []Card{card("K"), card("Q"), card("5")}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandValue(tt.hand))
		})
	}
}

func TestIsNatural(t *testing.T) {
	assert.True(t, IsNatural([]Card{card("A"), card("K")}))
	assert.False(t, IsNatural([]Card{card("K"), card("Q")}))
	// 21 in three cards is not a natural.
	assert.False(t, IsNatural([]Card{card("7"), card("7"), card("7")}))
}

func TestHandValueProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(rt, "cards")
		gen := rapid.SampledFrom(ranks)

		hand := make([]Card, n)
		hard := 0
		for i := range hand {
			hand[i] = card(gen.Draw(rt, "rank"))
			hard += cardValue(hand[i])
		}

		value := HandValue(hand)

		// The best value never undercuts the hard total and an ace adds
		// at most ten on top of it.
		if value < hard || value > hard+10 {
			rt.Fatalf("hand %v: value %d outside [%d, %d]", hand, value, hard, hard+10)
		}

		// Promotion never busts a hand that was not already busted.
		if hard <= 21 && value > 21 {
			rt.Fatalf("hand %v: promotion busted %d -> %d", hand, hard, value)
		}
	})
}
