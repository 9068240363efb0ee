package blackjack

import (
	"testing"

	"github.com/lazharichir/blackjack/cards"
	"github.com/stretchr/testify/require"
)

func TestCanSplit(t *testing.T) {
	require.True(t, CanSplit(handOf(t, "8s", "8h")))
	require.True(t, CanSplit(handOf(t, "As", "Ah")))
	require.False(t, CanSplit(handOf(t, "8s", "9h")))
	require.False(t, CanSplit(handOf(t, "Ks", "Qh")), "ten-value cards of different rank")
	require.False(t, CanSplit(handOf(t, "8s", "8h", "8d")))
	require.False(t, CanSplit(handOf(t, "8s")))
	require.False(t, CanSplit(nil))
}

func TestSplit(t *testing.T) {
	original := handOf(t, "8s", "8h")

	first, second, err := Split(original)
	require.NoError(t, err)

	require.Equal(t, 1, first.Count())
	require.Equal(t, 1, second.Count())
	require.True(t, first.IsSplitHand())
	require.True(t, second.IsSplitHand())

	// Card identity is preserved, no new cards invented.
	require.Equal(t, "8♠", first.String())
	require.Equal(t, "8♥", second.String())

	// The original is not consumed by the split itself.
	require.Equal(t, 2, original.Count())
	require.False(t, original.IsSplitHand())
}

func TestSplitFailsWithoutMutating(t *testing.T) {
	original := handOf(t, "8s", "9h")

	first, second, err := Split(original)
	var actionErr *ActionError
	require.ErrorAs(t, err, &actionErr)
	require.Equal(t, ReasonNotAPair, actionErr.Reason)
	require.Nil(t, first)
	require.Nil(t, second)
	require.Equal(t, 2, original.Count())
}

func TestIsSplitAcesHand(t *testing.T) {
	aces := handOf(t, "As", "Ah")
	first, second, err := Split(aces)
	require.NoError(t, err)

	require.True(t, IsSplitAcesHand(first))
	require.True(t, IsSplitAcesHand(second))

	// After the one permitted draw, the restriction predicate no longer holds.
	card, err2 := cards.CardFromString("5d")
	require.NoError(t, err2)
	first.AddCard(card)
	require.False(t, IsSplitAcesHand(first))

	// A split pair of eights is not a split-aces hand.
	eights := handOf(t, "8s", "8h")
	left, _, err := Split(eights)
	require.NoError(t, err)
	require.False(t, IsSplitAcesHand(left))

	// A fresh one-card hand that was not split does not qualify.
	require.False(t, IsSplitAcesHand(handOf(t, "As")))
	require.False(t, IsSplitAcesHand(nil))
}

func TestSplitTwentyOneIsNotANatural(t *testing.T) {
	aces := handOf(t, "As", "Ah")
	first, _, err := Split(aces)
	require.NoError(t, err)

	ten, err := cards.CardFromString("Kd")
	require.NoError(t, err)
	first.AddCard(ten)

	require.Equal(t, 21, first.Value())
	require.False(t, first.IsBlackjack())

	rules := defaultRules()

	outcome, err := rules.DetermineOutcome(first, handOf(t, "10s", "10h"))
	require.NoError(t, err)
	require.Equal(t, OutcomeWin, outcome, "split 21 wins at even money, no natural upgrade")

	outcome, err = rules.DetermineOutcome(first, handOf(t, "Ad", "Qc"))
	require.NoError(t, err)
	require.Equal(t, OutcomeLose, outcome, "split 21 loses to a dealer natural")
}
