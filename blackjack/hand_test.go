package blackjack

import (
	"testing"

	"github.com/lazharichir/blackjack/cards"
	"github.com/stretchr/testify/require"
)

// handOf builds a hand from card shorthands like "As" or "10h".
func handOf(t *testing.T, shorthands ...string) *Hand {
	t.Helper()
	hand := NewHand()
	for _, s := range shorthands {
		card, err := cards.CardFromString(s)
		require.NoError(t, err)
		hand.AddCard(card)
	}
	return hand
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name      string
		cards     []string
		value     int
		soft      bool
		busted    bool
		blackjack bool
	}{
		{"two aces", []string{"As", "Ah"}, 12, true, false, false},
		{"six aces and a five", []string{"As", "Ah", "Ad", "Ac", "As", "Ah", "5d"}, 21, true, false, false},
		{"king queen", []string{"Ks", "Qh"}, 20, false, false, false},
		{"natural blackjack", []string{"As", "Kh"}, 21, false, false, true},
		{"ten jack ace", []string{"10s", "Jh", "Ad"}, 21, false, false, false},
		{"forced hard twelve", []string{"As", "6h", "5d"}, 12, false, false, false},
		{"soft seventeen", []string{"As", "6h"}, 17, true, false, false},
		{"soft eighteen three cards", []string{"As", "2h", "5d"}, 18, true, false, false},
		{"hard twenty", []string{"Ks", "5h", "5d"}, 20, false, false, false},
		{"bust", []string{"Ks", "Qh", "5d"}, 25, false, true, false},
		{"bust with demoted aces", []string{"Ks", "Qh", "As", "Ah"}, 22, false, true, false},
		{"empty hand", nil, 0, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := handOf(t, tt.cards...)
			require.Equal(t, tt.value, hand.Value())
			require.Equal(t, tt.soft, hand.IsSoft(), "IsSoft")
			require.Equal(t, tt.busted, hand.IsBusted(), "IsBusted")
			require.Equal(t, tt.blackjack, hand.IsBlackjack(), "IsBlackjack")
		})
	}
}

func TestBustedValueEqualsForcedMinimum(t *testing.T) {
	// All aces demoted and still over 21: the value is the forced minimum.
	hand := handOf(t, "As", "Kh", "Qd", "2c")
	require.True(t, hand.IsBusted())
	require.Equal(t, 23, hand.Value())
}

func TestHasPair(t *testing.T) {
	require.True(t, handOf(t, "8s", "8h").HasPair())
	require.True(t, handOf(t, "Ks", "Kh").HasPair())
	require.False(t, handOf(t, "Ks", "Qh").HasPair(), "same value, different rank")
	require.False(t, handOf(t, "8s", "8h", "8d").HasPair(), "three cards")
	require.False(t, handOf(t, "8s").HasPair(), "one card")
}

func TestClear(t *testing.T) {
	hand := handOf(t, "Ks", "Qh")
	hand.Clear()
	require.Equal(t, 0, hand.Count())
	require.Equal(t, 0, hand.Value())
}

func TestCardsReturnsCopy(t *testing.T) {
	hand := handOf(t, "Ks", "Qh")
	cc := hand.Cards()
	cc[0] = cards.Card{Suit: cards.Spades, Rank: cards.Two}
	require.Equal(t, 20, hand.Value(), "mutating the copy must not touch the hand")
}
