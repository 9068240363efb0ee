package cards

import (
	"math/rand"
	"time"
)

// Shuffler re-orders a sequence of cards in place. It is injected into card
// supplies so shuffling stays deterministic under test doubles.
type Shuffler interface {
	Shuffle(cards []Card)
}

// RandShuffler shuffles cards with math/rand.
type RandShuffler struct {
	rng *rand.Rand
}

// NewRandShuffler creates a shuffler seeded from the current time.
func NewRandShuffler() *RandShuffler {
	return &RandShuffler{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Shuffle re-orders the cards randomly
func (s *RandShuffler) Shuffle(cards []Card) {
	s.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
