package table

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lazharichir/blackjack/betting"
	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/money"
)

// DealerSeat is the seat label used for dealer cards in events.
const DealerSeat = "dealer"

var (
	ErrPlayerNotSeated     = errors.New("player not seated at table")
	ErrPlayerAlreadySeated = errors.New("player already at table")
	ErrNoActiveRound       = errors.New("no active round")
	ErrRoundInProgress     = errors.New("a round is already in progress")
	ErrNoBetsPlaced        = errors.New("no bets placed")
	ErrBetOutOfRange       = errors.New("bet outside table limits")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrHandIndex           = errors.New("no such hand")
	ErrHandNotLive         = errors.New("hand takes no further action")
	ErrHandsUnresolved     = errors.New("player hands still unresolved")
	ErrDealerNotDone       = errors.New("dealer has not played yet")
)

// Status represents the table lifecycle
type Status string

const (
	StatusWaiting   Status = "waiting"   // No active round
	StatusBetting   Status = "betting"   // Round started, bets open
	StatusPlaying   Status = "playing"   // Cards dealt, players act
	StatusCompleted Status = "completed" // Round settled
)

// Table owns the shoe, the dealer hand, and the per-round player state. One
// round is processed as a sequence of synchronous calls; the table is never
// shared across goroutines.
type Table struct {
	ID     string
	Name   string
	Rules  config.TableRules
	Status Status

	engine     blackjack.Rules
	shoe       *cards.Shoe
	multiplier decimal.Decimal
	minBet     money.Money
	maxBet     money.Money

	players []*Player
	seats   map[string]*Seat
	order   []string // seat order, by join order
	dealer  *blackjack.Hand
	roundID string

	dealerDone   bool
	holeRevealed bool

	// events
	Events        []events.Event
	eventHandlers []events.EventHandler
}

// New creates a table from validated rules, with the shoe built and shuffled
func New(name string, rules config.TableRules, shuffler cards.Shuffler) (*Table, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table rules: %w", err)
	}

	shoe, err := cards.NewShoe(rules.NumberOfDecks, shuffler)
	if err != nil {
		return nil, err
	}
	if err := shoe.SetPenetrationThreshold(rules.PenetrationThreshold); err != nil {
		return nil, err
	}
	shoe.SetAutoReshuffle(rules.AutoReshuffle)

	minBet, err := money.FromFloat(rules.MinBet, rules.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid minBet: %w", err)
	}
	maxBet, err := money.FromFloat(rules.MaxBet, rules.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid maxBet: %w", err)
	}

	return &Table{
		ID:         uuid.NewString(),
		Name:       name,
		Rules:      rules,
		Status:     StatusWaiting,
		engine:     blackjack.NewRules(rules.DealerHitsOnSoft17, rules.AllowDoubleDown, rules.AllowSplit),
		shoe:       shoe,
		multiplier: decimal.NewFromFloat(rules.BlackjackPayoutMultiplier),
		minBet:     minBet,
		maxBet:     maxBet,
		seats:      make(map[string]*Seat),
		dealer:     blackjack.NewHand(),
	}, nil
}

// Engine returns the table's rules engine
func (t *Table) Engine() blackjack.Rules {
	return t.engine
}

// Shoe returns the table's card supply
func (t *Table) Shoe() *cards.Shoe {
	return t.shoe
}

// RoundID returns the identifier of the active round
func (t *Table) RoundID() string {
	return t.roundID
}

// SeatPlayer adds a player to the table
func (t *Table) SeatPlayer(player *Player) error {
	for _, p := range t.players {
		if p.ID == player.ID {
			return ErrPlayerAlreadySeated
		}
	}
	if player.Balance.Currency() != t.Rules.Currency {
		return fmt.Errorf("%w: table pays %s", money.ErrCurrencyMismatch, t.Rules.Currency)
	}

	t.players = append(t.players, player)
	return nil
}

// Player returns a seated player by ID
func (t *Table) Player(playerID string) (*Player, error) {
	for _, p := range t.players {
		if p.ID == playerID {
			return p, nil
		}
	}
	return nil, ErrPlayerNotSeated
}

// Seat returns a player's active-round seat
func (t *Table) Seat(playerID string) (*Seat, error) {
	seat, ok := t.seats[playerID]
	if !ok {
		return nil, ErrPlayerNotSeated
	}
	return seat, nil
}

// Dealer returns the dealer's hand
func (t *Table) Dealer() *blackjack.Hand {
	return t.dealer
}

// DealerView returns the dealer's cards with the hole card hidden until the
// dealer's turn.
func (t *Table) DealerView() cards.HeldStack {
	var view cards.HeldStack
	for i, c := range t.dealer.Cards() {
		visibility := cards.FaceUp
		if i == 1 && !t.holeRevealed {
			visibility = cards.FaceDown
		}
		view.Add(cards.NewHeldCard(c, visibility))
	}
	return view
}

// StartRound opens a new betting round
func (t *Table) StartRound() error {
	if t.Status == StatusBetting || t.Status == StatusPlaying {
		return ErrRoundInProgress
	}
	if len(t.players) == 0 {
		return errors.New("need at least one seated player")
	}

	t.roundID = uuid.NewString()
	t.seats = make(map[string]*Seat)
	t.order = t.order[:0]
	t.dealer = blackjack.NewHand()
	t.dealerDone = false
	t.holeRevealed = false
	t.Status = StatusBetting

	var ids []string
	for _, p := range t.players {
		ids = append(ids, p.ID)
	}
	t.emitEvent(events.RoundStarted{
		TableID: t.ID,
		RoundID: t.roundID,
		Players: ids,
		At:      time.Now(),
	})

	return nil
}

// PlaceBet places a player's wager for the round. The stake leaves the
// player's balance immediately; losses are not re-deducted at settlement.
func (t *Table) PlaceBet(playerID string, stake money.Money) error {
	if t.Status != StatusBetting {
		return ErrNoActiveRound
	}
	player, err := t.Player(playerID)
	if err != nil {
		return err
	}
	if _, exists := t.seats[playerID]; exists {
		return fmt.Errorf("player %s already bet this round", playerID)
	}

	if stake.Currency() != t.Rules.Currency {
		return fmt.Errorf("%w: table pays %s", money.ErrCurrencyMismatch, t.Rules.Currency)
	}
	belowMin, err := stake.Cmp(t.minBet)
	if err != nil {
		return err
	}
	aboveMax, err := stake.Cmp(t.maxBet)
	if err != nil {
		return err
	}
	if belowMin < 0 {
		return fmt.Errorf("%w: %s is below the minimum %s", ErrBetOutOfRange, stake, t.minBet)
	}
	if aboveMax > 0 {
		return fmt.Errorf("%w: %s is above the maximum %s", ErrBetOutOfRange, stake, t.maxBet)
	}

	bet, err := betting.NewBet(playerID, stake, betting.KindStandard)
	if err != nil {
		return err
	}
	if err := player.Debit(stake); err != nil {
		return err
	}

	t.seats[playerID] = &Seat{
		Player: player,
		Hands:  []*SeatHand{{Hand: blackjack.NewHand(), Bet: bet}},
	}
	t.order = append(t.order, playerID)

	t.emitEvent(events.BetPlaced{
		TableID:  t.ID,
		RoundID:  t.roundID,
		PlayerID: playerID,
		BetID:    bet.ID,
		Kind:     string(bet.Kind),
		Stake:    stake,
		At:       time.Now(),
	})

	return nil
}

// DealInitial deals two cards to every betting seat and two to the dealer,
// the dealer's second card face down. Natural blackjacks stand immediately.
func (t *Table) DealInitial() error {
	if t.Status != StatusBetting {
		return ErrNoActiveRound
	}
	if len(t.order) == 0 {
		return ErrNoBetsPlaced
	}

	// Standard order: one card to each seat, dealer, then the second pass.
	for pass := 0; pass < 2; pass++ {
		for _, playerID := range t.order {
			seat := t.seats[playerID]
			if err := t.dealTo(seat.Hands[0].Hand, playerID, false); err != nil {
				return err
			}
		}
		faceDown := pass == 1
		if err := t.dealTo(t.dealer, DealerSeat, faceDown); err != nil {
			return err
		}
	}

	for _, playerID := range t.order {
		seat := t.seats[playerID]
		if seat.Hands[0].Hand.IsBlackjack() {
			seat.Hands[0].Stood = true
		}
	}

	t.Status = StatusPlaying
	return nil
}

// dealTo draws from the shoe into a hand, forwarding shoe notifications as
// events before the card-dealt event for the draw that triggered them.
func (t *Table) dealTo(hand *blackjack.Hand, seatLabel string, faceDown bool) error {
	card, err := t.shoe.Draw()
	if err != nil {
		return err
	}

	for _, n := range t.shoe.Notifications() {
		switch n.Kind {
		case cards.NotificationReshuffled:
			t.emitEvent(events.ShoeReshuffled{
				TableID:             t.ID,
				RemainingPercentage: n.RemainingPercentage,
				Threshold:           n.Threshold,
				Reason:              n.Reason,
				At:                  n.At,
			})
		case cards.NotificationReshuffleNeeded:
			t.emitEvent(events.ReshuffleNeeded{
				TableID:             t.ID,
				RemainingPercentage: n.RemainingPercentage,
				Threshold:           n.Threshold,
				Reason:              n.Reason,
				At:                  n.At,
			})
		}
	}

	hand.AddCard(card)
	t.emitEvent(events.CardDealt{
		TableID:  t.ID,
		RoundID:  t.roundID,
		Seat:     seatLabel,
		Card:     card,
		FaceDown: faceDown,
		At:       time.Now(),
	})
	return nil
}

// RegisterEventHandler registers a callback function that will be called when events occur
func (t *Table) RegisterEventHandler(handler events.EventHandler) {
	t.eventHandlers = append(t.eventHandlers, handler)
}

// emitEvent notifies all registered handlers of a new event
func (t *Table) emitEvent(event events.Event) {
	t.Events = append(t.Events, event)

	for _, handler := range t.eventHandlers {
		handler(event)
	}
}
