package table

import (
	"fmt"

	"github.com/lazharichir/blackjack/betting"
	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/money"
)

// Player represents a seated player and their bankroll
type Player struct {
	ID      string
	Name    string
	Balance money.Money
}

// NewPlayer creates a new player with the given starting balance
func NewPlayer(id, name string, balance money.Money) *Player {
	return &Player{ID: id, Name: name, Balance: balance}
}

// Credit adds an amount to the player's balance
func (p *Player) Credit(amount money.Money) error {
	balance, err := p.Balance.Add(amount)
	if err != nil {
		return err
	}
	p.Balance = balance
	return nil
}

// Debit removes an amount from the player's balance
func (p *Player) Debit(amount money.Money) error {
	balance, err := p.Balance.Sub(amount)
	if err != nil {
		return err
	}
	if balance.IsNegative() {
		return fmt.Errorf("%w: balance %s, needed %s", ErrInsufficientBalance, p.Balance, amount)
	}
	p.Balance = balance
	return nil
}

// SeatHand pairs one playable hand with its bet and per-hand flags.
type SeatHand struct {
	Hand      *blackjack.Hand
	Bet       *betting.Bet
	Doubled   bool
	Stood     bool
	SplitAces bool
}

// Resolved reports whether the hand takes no further cards this round
func (sh *SeatHand) Resolved() bool {
	return sh.Stood || sh.Hand.IsBusted() || sh.Hand.IsBlackjack()
}

// Seat tracks one player's state within the active round.
type Seat struct {
	Player *Player
	Hands  []*SeatHand
	splits int
}

// Splits returns how many times the seat has split this round
func (s *Seat) Splits() int {
	return s.splits
}

// HandResult reports the settlement of one hand at round end.
type HandResult struct {
	PlayerID    string
	PlayerName  string
	BetID       string
	HandIndex   int
	Hand        *blackjack.Hand
	Outcome     blackjack.Outcome
	Stake       money.Money
	Payout      money.Money
	TotalReturn money.Money
}
