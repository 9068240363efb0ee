package events

import (
	"testing"
	"time"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/money"
)

func TestInMemoryEventStore(t *testing.T) {
	store := NewInMemoryEventStore()

	// Test data
	tableID := "table-123"
	playerID := "player-456"

	t.Run("Append and load events", func(t *testing.T) {
		stake, err := money.FromString("10", "USD")
		if err != nil {
			t.Fatalf("Failed to build stake: %v", err)
		}

		roundStarted := RoundStarted{
			TableID: tableID,
			RoundID: "round-1",
			Players: []string{playerID, "player-789"},
			At:      time.Now(),
		}

		betPlaced := BetPlaced{
			TableID:  tableID,
			RoundID:  "round-1",
			PlayerID: playerID,
			BetID:    "bet-1",
			Kind:     "standard",
			Stake:    stake,
			At:       time.Now(),
		}

		cardDealt := CardDealt{
			TableID: tableID,
			RoundID: "round-1",
			Seat:    playerID,
			Card:    cards.Card{Suit: cards.Spades, Rank: cards.Ace},
			At:      time.Now(),
		}

		if err := store.Append(roundStarted); err != nil {
			t.Errorf("Failed to append RoundStarted event: %v", err)
		}
		if err := store.Append(betPlaced); err != nil {
			t.Errorf("Failed to append BetPlaced event: %v", err)
		}
		if err := store.Append(cardDealt); err != nil {
			t.Errorf("Failed to append CardDealt event: %v", err)
		}

		events, err := store.LoadEvents(tableID)
		if err != nil {
			t.Errorf("Failed to load events: %v", err)
		}

		if len(events) != 3 {
			t.Errorf("Expected 3 events, got %d", len(events))
		}

		// Check event types and ordering
		if events[0].Name() != "ROUND_STARTED" {
			t.Errorf("Expected first event to be ROUND_STARTED, got %s", events[0].Name())
		}
		if events[1].Name() != "BET_PLACED" {
			t.Errorf("Expected second event to be BET_PLACED, got %s", events[1].Name())
		}
		if events[2].Name() != "CARD_DEALT" {
			t.Errorf("Expected third event to be CARD_DEALT, got %s", events[2].Name())
		}
	})

	t.Run("Load events for non-existent table", func(t *testing.T) {
		events, err := store.LoadEvents("non-existent-table")
		if err != nil {
			t.Errorf("Expected no error for non-existent table, got %v", err)
		}
		if len(events) != 0 {
			t.Errorf("Expected 0 events for non-existent table, got %d", len(events))
		}
	})

	t.Run("Reject event without tableID", func(t *testing.T) {
		if err := store.Append(RoundEnded{}); err == nil {
			t.Error("Expected error for event without tableID")
		}
	})
}
