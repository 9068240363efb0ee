package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/money"
)

// RoundRecord is the hand-off value the table produces for one settled hand.
type RoundRecord struct {
	PlayerID   string
	PlayerName string
	Outcome    blackjack.Outcome
	Wagered    money.Money
	Returned   money.Money
	At         time.Time
}

// PlayerStats aggregates a player's results across rounds.
type PlayerStats struct {
	PlayerID     string
	PlayerName   string
	RoundsPlayed int
	Wins         int
	Losses       int
	Pushes       int
	Blackjacks   int
	TotalWagered decimal.Decimal
	NetResult    decimal.Decimal
	Currency     string
	LastPlayed   time.Time
}

// Store defines the interface for statistics persistence
type Store interface {
	// RecordRound saves the result of one settled hand
	RecordRound(record RoundRecord) error

	// PlayerStats retrieves a player's aggregate statistics
	PlayerStats(playerID string) (*PlayerStats, error)

	// AllStats returns statistics for every known player
	AllStats() ([]*PlayerStats, error)

	// Close releases the store's resources
	Close() error
}

// apply folds one round record into the aggregate.
func (s *PlayerStats) apply(record RoundRecord) {
	s.PlayerName = record.PlayerName
	s.RoundsPlayed++
	switch record.Outcome {
	case blackjack.OutcomeWin:
		s.Wins++
	case blackjack.OutcomeLose:
		s.Losses++
	case blackjack.OutcomePush:
		s.Pushes++
	case blackjack.OutcomeBlackjack:
		s.Wins++
		s.Blackjacks++
	}
	s.TotalWagered = s.TotalWagered.Add(record.Wagered.Amount())
	s.NetResult = s.NetResult.Add(record.Returned.Amount().Sub(record.Wagered.Amount()))
	s.Currency = record.Wagered.Currency()
	if record.At.After(s.LastPlayed) {
		s.LastPlayed = record.At
	}
}
