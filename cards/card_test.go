package cards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		// Valid cards with different suit notations
		{"Ace of Spades Unicode", "A♠", Card{Suit: Spades, Rank: Ace}, false},
		{"Ace of Spades lowercase", "As", Card{Suit: Spades, Rank: Ace}, false},
		{"Ace of Spades uppercase", "AS", Card{Suit: Spades, Rank: Ace}, false},
		{"Ten of Hearts Unicode", "10♥", Card{Suit: Hearts, Rank: Ten}, false},
		{"Ten of Hearts lowercase", "10h", Card{Suit: Hearts, Rank: Ten}, false},
		{"Queen of Diamonds Unicode", "Q♦", Card{Suit: Diamonds, Rank: Queen}, false},
		{"Queen of Diamonds lowercase", "Qd", Card{Suit: Diamonds, Rank: Queen}, false},
		{"Two of Clubs Unicode", "2♣", Card{Suit: Clubs, Rank: Two}, false},
		{"Two of Clubs uppercase", "2C", Card{Suit: Clubs, Rank: Two}, false},

		// All ranks for a single suit
		{"King of Hearts", "Kh", Card{Suit: Hearts, Rank: King}, false},
		{"Jack of Hearts", "Jh", Card{Suit: Hearts, Rank: Jack}, false},
		{"Nine of Hearts", "9h", Card{Suit: Hearts, Rank: Nine}, false},
		{"Eight of Hearts", "8h", Card{Suit: Hearts, Rank: Eight}, false},
		{"Seven of Hearts", "7h", Card{Suit: Hearts, Rank: Seven}, false},
		{"Six of Hearts", "6h", Card{Suit: Hearts, Rank: Six}, false},
		{"Five of Hearts", "5h", Card{Suit: Hearts, Rank: Five}, false},
		{"Four of Hearts", "4h", Card{Suit: Hearts, Rank: Four}, false},
		{"Three of Hearts", "3h", Card{Suit: Hearts, Rank: Three}, false},

		// Unicode handling edge cases
		{"Proper encoding Spades", "A♠", Card{Suit: Spades, Rank: Ace}, false},
		{"Proper encoding Clubs", "2♣", Card{Suit: Clubs, Rank: Two}, false},

		// Handling of spaces and unusual input format
		{"Input with trailing space", "AS ", Card{}, true},
		{"Input with leading space", " AS", Card{}, true},
		{"Input with mixed case", "aS", Card{}, true},

		// Invalid inputs
		{"Too short input", "A", Card{}, true},
		{"Empty input", "", Card{}, true},
		{"Invalid suit", "10X", Card{}, true},
		{"Invalid rank", "11S", Card{}, true},
		{"Invalid format", "XX", Card{}, true},
		{"Reverse order", "♠A", Card{}, true},
		{"Special characters", "A$", Card{}, true},
		{"Number too large", "100S", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CardFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err, "CardFromString(%q) should return an error", tt.input)
			} else {
				require.NoError(t, err, "CardFromString(%q) should not return an error", tt.input)
				require.Equal(t, tt.want, got, "CardFromString(%q) should return the correct card", tt.input)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	require.Equal(t, "A♠", Card{Suit: Spades, Rank: Ace}.String())
	require.Equal(t, "10♦", Card{Suit: Diamonds, Rank: Ten}.String())
}

func TestHeldCardVisibility(t *testing.T) {
	hole := NewHeldCard(Card{Suit: Hearts, Rank: King}, FaceDown)
	require.True(t, hole.Hidden())

	var stack HeldStack
	stack.Add(NewHeldCard(Card{Suit: Spades, Rank: Ace}, FaceUp))
	stack.Add(hole)
	require.Equal(t, "A♠ ??", stack.String())

	stack[1].Reveal()
	require.Equal(t, "A♠ K♥", stack.String())
}

func TestCardStringRoundTripsThroughParser(t *testing.T) {
	for _, suit := range Suits {
		for _, rank := range Ranks {
			card := Card{Suit: suit, Rank: rank}
			parsed, err := CardFromString(card.String())
			require.NoError(t, err, "parsing %q", card.String())
			require.Equal(t, card, parsed)
		}
	}
}
