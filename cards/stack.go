package cards

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack with the given cards
func NewStack(cards ...Card) Stack {
	return cards
}

// AddCard appends a card to the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

func (s Stack) String() string {
	var out string
	for i, c := range s {
		if i > 0 {
			out += " "
		}
		out += c.String()
	}
	return out
}
