package cards

import "errors"

// ErrEmptySupply is returned when drawing from a supply with no cards left.
var ErrEmptySupply = errors.New("no cards remaining in supply")

// NewDeck52 creates a standard deck of 52 cards
func NewDeck52() Stack {
	var deck Stack
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck.AddCard(Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

// Deck is a single-deck card supply. Cards are drawn from the front and the
// deck is re-ordered by the injected shuffler.
type Deck struct {
	cards    Stack
	shuffler Shuffler
}

// NewDeck creates a full, freshly shuffled 52-card deck
func NewDeck(shuffler Shuffler) *Deck {
	d := &Deck{shuffler: shuffler}
	d.Reset()
	return d
}

// Draw removes and returns the next card
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptySupply
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Shuffle re-orders the remaining cards
func (d *Deck) Shuffle() {
	d.shuffler.Shuffle(d.cards)
}

// Reset restores the full 52-card set and shuffles
func (d *Deck) Reset() {
	d.cards = NewDeck52()
	d.Shuffle()
}

// Remaining returns the count of undrawn cards
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// RemainingPercentage returns the fraction of the deck still undrawn
func (d *Deck) RemainingPercentage() float64 {
	return float64(len(d.cards)) / 52.0
}
