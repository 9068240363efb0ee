package betting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/money"
)

// DefaultBlackjackMultiplier is the reference 3:2 natural payout.
var DefaultBlackjackMultiplier = decimal.NewFromFloat(1.5)

// Payout returns the net profit for a settled stake: the stake itself on a
// win, stake times the multiplier on a natural, and zero on a push or a loss
// (the stake was already forfeited at placement time, it is not re-deducted
// here).
func Payout(stake money.Money, outcome blackjack.Outcome, multiplier decimal.Decimal) (money.Money, error) {
	switch outcome {
	case blackjack.OutcomeWin:
		return stake, nil
	case blackjack.OutcomeBlackjack:
		return stake.Mul(multiplier)
	case blackjack.OutcomePush, blackjack.OutcomeLose:
		return money.Zero(stake.Currency()), nil
	default:
		return money.Money{}, fmt.Errorf("unknown outcome: %s", outcome)
	}
}

// TotalReturn returns the amount handed back to the player: stake plus payout
// on a win or a natural, the bare stake on a push, and zero on a loss.
func TotalReturn(stake money.Money, outcome blackjack.Outcome, multiplier decimal.Decimal) (money.Money, error) {
	switch outcome {
	case blackjack.OutcomeWin, blackjack.OutcomeBlackjack:
		payout, err := Payout(stake, outcome, multiplier)
		if err != nil {
			return money.Money{}, err
		}
		return stake.Add(payout)
	case blackjack.OutcomePush:
		return stake, nil
	case blackjack.OutcomeLose:
		return money.Zero(stake.Currency()), nil
	default:
		return money.Money{}, fmt.Errorf("unknown outcome: %s", outcome)
	}
}
