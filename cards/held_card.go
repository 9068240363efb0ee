package cards

type CardVisibility string

const (
	FaceDown CardVisibility = "down" // Hidden, e.g. the dealer's hole card
	FaceUp   CardVisibility = "up"   // Everyone can see
)

// HeldCard represents a card that's in play with visibility information
type HeldCard struct {
	Card
	Visibility CardVisibility
}

// NewHeldCard creates a new held card with the specified visibility
func NewHeldCard(card Card, visibility CardVisibility) HeldCard {
	return HeldCard{Card: card, Visibility: visibility}
}

// Hidden reports whether the card is face down
func (c HeldCard) Hidden() bool {
	return c.Visibility == FaceDown
}

// Reveal turns the card face up
func (c *HeldCard) Reveal() {
	c.Visibility = FaceUp
}

type HeldStack []HeldCard

// Add adds a card to the stack
func (s *HeldStack) Add(card HeldCard) {
	*s = append(*s, card)
}

func (s HeldStack) String() string {
	var out string
	for i, c := range s {
		if i > 0 {
			out += " "
		}
		if c.Hidden() {
			out += "??"
		} else {
			out += c.Card.String()
		}
	}
	return out
}
