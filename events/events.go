package events

import (
	"time"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/money"
)

// Round lifecycle events

type RoundStarted struct {
	TableID string
	RoundID string
	Players []string
	At      time.Time
}

func (e RoundStarted) Name() string { return "ROUND_STARTED" }

type RoundEnded struct {
	TableID string
	RoundID string
	At      time.Time
}

func (e RoundEnded) Name() string { return "ROUND_ENDED" }

// Betting events

type BetPlaced struct {
	TableID  string
	RoundID  string
	PlayerID string
	BetID    string
	Kind     string
	Stake    money.Money
	At       time.Time
}

func (e BetPlaced) Name() string { return "BET_PLACED" }

type BetSettled struct {
	TableID     string
	RoundID     string
	PlayerID    string
	BetID       string
	Outcome     string
	Payout      money.Money
	TotalReturn money.Money
	At          time.Time
}

func (e BetSettled) Name() string { return "BET_SETTLED" }

// Dealing and action events

type CardDealt struct {
	TableID  string
	RoundID  string
	Seat     string // player ID, or "dealer"
	Card     cards.Card
	FaceDown bool
	At       time.Time
}

func (e CardDealt) Name() string { return "CARD_DEALT" }

type PlayerActed struct {
	TableID   string
	RoundID   string
	PlayerID  string
	Action    string
	HandIndex int
	At        time.Time
}

func (e PlayerActed) Name() string { return "PLAYER_ACTED" }

type HandSplit struct {
	TableID  string
	RoundID  string
	PlayerID string
	Rank     cards.Rank
	At       time.Time
}

func (e HandSplit) Name() string { return "HAND_SPLIT" }

type DealerRevealed struct {
	TableID  string
	RoundID  string
	HoleCard cards.Card
	Value    int
	At       time.Time
}

func (e DealerRevealed) Name() string { return "DEALER_REVEALED" }

// Shoe events

type ShoeReshuffled struct {
	TableID             string
	RemainingPercentage float64
	Threshold           float64
	Reason              string
	At                  time.Time
}

func (e ShoeReshuffled) Name() string { return "SHOE_RESHUFFLED" }

type ReshuffleNeeded struct {
	TableID             string
	RemainingPercentage float64
	Threshold           float64
	Reason              string
	At                  time.Time
}

func (e ReshuffleNeeded) Name() string { return "RESHUFFLE_NEEDED" }
