package cards

import (
	"fmt"
	"time"
)

// DeckSize is the number of cards in one standard deck.
const DeckSize = 52

// NotificationKind identifies the kind of shoe notification.
type NotificationKind string

const (
	// NotificationReshuffled signals the shoe reset and reshuffled itself.
	NotificationReshuffled NotificationKind = "reshuffled"
	// NotificationReshuffleNeeded signals penetration crossed the threshold
	// but auto-reshuffle is off, leaving the decision to the caller.
	NotificationReshuffleNeeded NotificationKind = "reshuffle-needed"
)

// ShoeNotification describes a reshuffle signal raised by the shoe. The shoe
// queues notifications rather than calling back into observers, so a draw
// never re-enters caller code while the shoe is mid-mutation.
type ShoeNotification struct {
	Kind                NotificationKind
	RemainingPercentage float64
	Threshold           float64
	Reason              string
	At                  time.Time
}

// Shoe is a multi-deck card supply. It tracks penetration and raises
// reshuffle notifications once the remaining fraction falls to or below the
// configured threshold.
type Shoe struct {
	cards         Stack
	deckCount     int
	shuffler      Shuffler
	threshold     float64
	autoReshuffle bool
	notified      bool
	pending       []ShoeNotification
}

// NewShoe creates a full, freshly shuffled shoe with the given number of decks
func NewShoe(deckCount int, shuffler Shuffler) (*Shoe, error) {
	if deckCount <= 0 {
		return nil, fmt.Errorf("deck count must be positive, got %d", deckCount)
	}
	s := &Shoe{
		deckCount: deckCount,
		shuffler:  shuffler,
	}
	s.Reset()
	return s, nil
}

// SetPenetrationThreshold sets the remaining fraction at or below which a
// reshuffle is signaled. Values outside [0, 1] are rejected.
func (s *Shoe) SetPenetrationThreshold(threshold float64) error {
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("penetration threshold must be within [0, 1], got %v", threshold)
	}
	s.threshold = threshold
	return nil
}

// PenetrationThreshold returns the configured threshold
func (s *Shoe) PenetrationThreshold() float64 {
	return s.threshold
}

// SetAutoReshuffle toggles automatic reshuffling on threshold crossing
func (s *Shoe) SetAutoReshuffle(enabled bool) {
	s.autoReshuffle = enabled
}

// DeckCount returns the number of decks composing the shoe
func (s *Shoe) DeckCount() int {
	return s.deckCount
}

// TotalCards returns the full capacity of the shoe
func (s *Shoe) TotalCards() int {
	return s.deckCount * DeckSize
}

// Remaining returns the count of undrawn cards
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// RemainingPercentage returns the fraction of the shoe still undrawn
func (s *Shoe) RemainingPercentage() float64 {
	return float64(len(s.cards)) / float64(s.TotalCards())
}

// Draw removes and returns the next card. After a successful draw the shoe
// checks penetration: with auto-reshuffle on it resets and queues a
// "reshuffled" notification, otherwise it queues "reshuffle-needed" once per
// crossing and leaves the cards untouched.
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptySupply
	}
	card := s.cards[0]
	s.cards = s.cards[1:]

	if s.NeedsReshuffle() {
		if s.autoReshuffle {
			s.TriggerReshuffle("penetration threshold crossed")
		} else if !s.notified {
			s.notified = true
			s.queue(NotificationReshuffleNeeded, "penetration threshold crossed")
		}
	}

	return card, nil
}

// Shuffle re-orders the remaining cards
func (s *Shoe) Shuffle() {
	s.shuffler.Shuffle(s.cards)
}

// Reset restores the full deckCount*52 set of cards and shuffles
func (s *Shoe) Reset() {
	var full Stack
	for i := 0; i < s.deckCount; i++ {
		full = append(full, NewDeck52()...)
	}
	s.cards = full
	s.notified = false
	s.Shuffle()
}

// NeedsReshuffle reports whether the remaining fraction is at or below the
// threshold. An optional override threshold replaces the configured one for
// this check. A full shoe never needs reshuffling.
func (s *Shoe) NeedsReshuffle(thresholdOverride ...float64) bool {
	threshold := s.threshold
	if len(thresholdOverride) > 0 {
		threshold = thresholdOverride[0]
	}
	if len(s.cards) == s.TotalCards() {
		return false
	}
	return s.RemainingPercentage() <= threshold
}

// TriggerReshuffle resets the shoe and queues a "reshuffled" notification
// carrying the penetration state at the moment of the trigger.
func (s *Shoe) TriggerReshuffle(reason string) {
	at := s.RemainingPercentage()
	s.Reset()
	s.pending = append(s.pending, ShoeNotification{
		Kind:                NotificationReshuffled,
		RemainingPercentage: at,
		Threshold:           s.threshold,
		Reason:              reason,
		At:                  time.Now(),
	})
}

// Notifications drains and returns the queued shoe notifications
func (s *Shoe) Notifications() []ShoeNotification {
	pending := s.pending
	s.pending = nil
	return pending
}

func (s *Shoe) queue(kind NotificationKind, reason string) {
	s.pending = append(s.pending, ShoeNotification{
		Kind:                kind,
		RemainingPercentage: s.RemainingPercentage(),
		Threshold:           s.threshold,
		Reason:              reason,
		At:                  time.Now(),
	})
}
