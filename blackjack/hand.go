package blackjack

import (
	"strconv"

	"github.com/lazharichir/blackjack/cards"
)

// Hand is the ordered set of cards held by one party for the duration of a
// round. Split hands are tagged at construction and never retagged.
type Hand struct {
	cards cards.Stack
	split bool
}

// NewHand creates a hand holding the given cards
func NewHand(cc ...cards.Card) *Hand {
	h := &Hand{}
	for _, c := range cc {
		h.AddCard(c)
	}
	return h
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card cards.Card) {
	h.cards = append(h.cards, card)
}

// Clear removes all cards from the hand
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() cards.Stack {
	out := make(cards.Stack, len(h.cards))
	copy(out, h.cards)
	return out
}

// Count returns the number of cards in the hand
func (h *Hand) Count() int {
	return len(h.cards)
}

// Value returns the hand total. Every ace counts as 11 first; while the
// running total exceeds 21 and an ace is still counted as 11, one such ace is
// demoted to 1.
func (h *Hand) Value() int {
	total, _ := h.value()
	return total
}

// IsSoft reports whether the final total still counts an ace as 11. A natural
// blackjack reports as blackjack, not soft.
func (h *Hand) IsSoft() bool {
	_, elevenAces := h.value()
	return elevenAces > 0 && !h.IsBlackjack()
}

// IsBusted reports whether the hand total exceeds 21
func (h *Hand) IsBusted() bool {
	return h.Value() > 21
}

// IsBlackjack reports whether the hand is a two-card natural 21. A hand made
// by splitting is never a natural, even at 21 with two cards.
func (h *Hand) IsBlackjack() bool {
	return !h.split && len(h.cards) == 2 && h.Value() == 21
}

// HasPair reports whether the hand is exactly two cards of the same rank
func (h *Hand) HasPair() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank
}

// IsSplitHand reports whether the hand was produced by splitting
func (h *Hand) IsSplitHand() bool {
	return h.split
}

func (h *Hand) String() string {
	return h.cards.String()
}

// value computes the total and how many aces remain counted as 11.
func (h *Hand) value() (total, elevenAces int) {
	for _, c := range h.cards {
		total += hardCardValue(c)
		if c.Rank == cards.Ace {
			elevenAces++
		}
	}
	for total > 21 && elevenAces > 0 {
		total -= 10
		elevenAces--
	}
	return total, elevenAces
}

// hardCardValue returns a card's provisional value: face value for 2-10,
// 10 for J/Q/K, 11 for an ace.
func hardCardValue(c cards.Card) int {
	switch c.Rank {
	case cards.Ace:
		return 11
	case cards.Jack, cards.Queen, cards.King:
		return 10
	default:
		v, _ := strconv.Atoi(string(c.Rank))
		return v
	}
}
