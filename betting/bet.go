package betting

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/money"
)

// Kind categorizes a bet.
type Kind string

const (
	KindStandard   Kind = "standard"
	KindSplit      Kind = "split"
	KindDoubleDown Kind = "double_down"
)

var (
	// ErrAlreadySettled is returned when a settled bet is touched again.
	// Re-settlement is a programming error, not a recoverable condition.
	ErrAlreadySettled = errors.New("bet already settled")
	// ErrNonPositiveStake is returned for zero or negative stakes.
	ErrNonPositiveStake = errors.New("stake must be positive")
	// ErrNotStandardBet is returned when deriving from a non-standard bet.
	ErrNotStandardBet = errors.New("derived bets require an unsettled standard bet")
)

// Bet is one wager at risk for one hand. It transitions exactly once from
// unsettled to settled, at which point payout and total return are fixed.
type Bet struct {
	ID       string
	PlayerID string
	Stake    money.Money
	Kind     Kind

	settled     bool
	outcome     blackjack.Outcome
	payout      money.Money
	totalReturn money.Money
}

// NewBet places a wager of the given stake for a player
func NewBet(playerID string, stake money.Money, kind Kind) (*Bet, error) {
	if !stake.IsPositive() {
		return nil, ErrNonPositiveStake
	}
	return &Bet{
		ID:       uuid.NewString(),
		PlayerID: playerID,
		Stake:    stake,
		Kind:     kind,
	}, nil
}

// NewSplitBet derives the second wager for a split hand: identical stake,
// same owner, split category. The original must be an unsettled standard bet.
func NewSplitBet(original *Bet) (*Bet, error) {
	if original.settled || original.Kind != KindStandard {
		return nil, ErrNotStandardBet
	}
	return NewBet(original.PlayerID, original.Stake, KindSplit)
}

// NewDoubleDownBet supersedes an unsettled standard bet with one of twice the
// stake. The original is discarded, never settled.
func NewDoubleDownBet(original *Bet) (*Bet, error) {
	if original.settled || original.Kind != KindStandard {
		return nil, ErrNotStandardBet
	}
	doubled, err := original.Stake.Mul(decimal.NewFromInt(2))
	if err != nil {
		return nil, err
	}
	return NewBet(original.PlayerID, doubled, KindDoubleDown)
}

// Settled reports whether the bet has been settled
func (b *Bet) Settled() bool {
	return b.settled
}

// Settle fixes the bet's outcome and computes payout and total return.
// Settling twice fails with ErrAlreadySettled.
func (b *Bet) Settle(outcome blackjack.Outcome, multiplier decimal.Decimal) (money.Money, error) {
	if b.settled {
		return money.Money{}, ErrAlreadySettled
	}

	payout, err := Payout(b.Stake, outcome, multiplier)
	if err != nil {
		return money.Money{}, err
	}
	totalReturn, err := TotalReturn(b.Stake, outcome, multiplier)
	if err != nil {
		return money.Money{}, err
	}

	b.settled = true
	b.outcome = outcome
	b.payout = payout
	b.totalReturn = totalReturn
	return totalReturn, nil
}

// Outcome returns the settled outcome
func (b *Bet) Outcome() (blackjack.Outcome, error) {
	if !b.settled {
		return "", errors.New("bet not settled yet")
	}
	return b.outcome, nil
}

// Payout returns the settled net profit
func (b *Bet) Payout() (money.Money, error) {
	if !b.settled {
		return money.Money{}, errors.New("bet not settled yet")
	}
	return b.payout, nil
}

// TotalReturn returns the settled amount handed back to the player
func (b *Bet) TotalReturn() (money.Money, error) {
	if !b.settled {
		return money.Money{}, errors.New("bet not settled yet")
	}
	return b.totalReturn, nil
}
