package blackjack

import "github.com/lazharichir/blackjack/cards"

// The split manager is stateless per call; the split-count limit is enforced
// by the table layer with a per-seat counter.

// CanSplit reports whether a hand may be split: exactly two cards of the
// same rank.
func CanSplit(hand *Hand) bool {
	return hand != nil && hand.HasPair()
}

// Split produces two fresh one-card hands tagged as split hands, preserving
// card identity. The original hand is left untouched when splitting fails.
func Split(hand *Hand) (*Hand, *Hand, error) {
	if !CanSplit(hand) {
		return nil, nil, &ActionError{Action: ActionSplit, Reason: ReasonNotAPair}
	}

	cc := hand.Cards()
	return newSplitHand(cc[0]), newSplitHand(cc[1]), nil
}

// IsSplitAcesHand reports whether the hand is a one-card split hand holding
// an ace. Such hands receive exactly one more card and then stand.
func IsSplitAcesHand(hand *Hand) bool {
	if hand == nil || !hand.IsSplitHand() || hand.Count() != 1 {
		return false
	}
	return hand.cards[0].Rank == cards.Ace
}

func newSplitHand(card cards.Card) *Hand {
	return &Hand{cards: cards.Stack{card}, split: true}
}
