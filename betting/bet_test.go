package betting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/money"
)

func stake(t *testing.T, amount string) money.Money {
	t.Helper()
	m, err := money.FromString(amount, "USD")
	require.NoError(t, err)
	return m
}

func TestPayout(t *testing.T) {
	multiplier := DefaultBlackjackMultiplier

	tests := []struct {
		name    string
		stake   string
		outcome blackjack.Outcome
		want    string
	}{
		{"win pays even money", "10", blackjack.OutcomeWin, "10.00 USD"},
		{"blackjack pays three to two", "10", blackjack.OutcomeBlackjack, "15.00 USD"},
		{"push pays nothing", "10", blackjack.OutcomePush, "0.00 USD"},
		{"lose pays nothing", "10", blackjack.OutcomeLose, "0.00 USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payout, err := Payout(stake(t, tt.stake), tt.outcome, multiplier)
			require.NoError(t, err)
			require.Equal(t, tt.want, payout.String())
		})
	}
}

func TestTotalReturn(t *testing.T) {
	multiplier := DefaultBlackjackMultiplier

	tests := []struct {
		name    string
		stake   string
		outcome blackjack.Outcome
		want    string
	}{
		{"win returns twice the stake", "10", blackjack.OutcomeWin, "20.00 USD"},
		{"blackjack returns stake plus payout", "10", blackjack.OutcomeBlackjack, "25.00 USD"},
		{"push returns the stake", "10", blackjack.OutcomePush, "10.00 USD"},
		{"lose returns nothing", "10", blackjack.OutcomeLose, "0.00 USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := TotalReturn(stake(t, tt.stake), tt.outcome, multiplier)
			require.NoError(t, err)
			require.Equal(t, tt.want, total.String())
		})
	}
}

// calculateTotalReturn(s, Blackjack, m) must equal s + calculatePayout(s, Blackjack, m).
func TestSettlementRoundTrip(t *testing.T) {
	for _, amount := range []string{"2", "10", "37.50", "100"} {
		for _, m := range []float64{1.2, 1.5, 2} {
			multiplier := decimal.NewFromFloat(m)
			s := stake(t, amount)

			payout, err := Payout(s, blackjack.OutcomeBlackjack, multiplier)
			require.NoError(t, err)
			total, err := TotalReturn(s, blackjack.OutcomeBlackjack, multiplier)
			require.NoError(t, err)

			sum, err := s.Add(payout)
			require.NoError(t, err)
			require.True(t, total.Equals(sum), "stake %s multiplier %v", amount, m)
		}
	}
}

func TestNewBet(t *testing.T) {
	bet, err := NewBet("player-1", stake(t, "10"), KindStandard)
	require.NoError(t, err)
	require.NotEmpty(t, bet.ID)
	require.Equal(t, "player-1", bet.PlayerID)
	require.False(t, bet.Settled())

	_, err = NewBet("player-1", money.Zero("USD"), KindStandard)
	require.ErrorIs(t, err, ErrNonPositiveStake)
}

func TestSettleExactlyOnce(t *testing.T) {
	bet, err := NewBet("player-1", stake(t, "10"), KindStandard)
	require.NoError(t, err)

	total, err := bet.Settle(blackjack.OutcomeWin, DefaultBlackjackMultiplier)
	require.NoError(t, err)
	require.Equal(t, "20.00 USD", total.String())
	require.True(t, bet.Settled())

	outcome, err := bet.Outcome()
	require.NoError(t, err)
	require.Equal(t, blackjack.OutcomeWin, outcome)

	payout, err := bet.Payout()
	require.NoError(t, err)
	require.Equal(t, "10.00 USD", payout.String())

	_, err = bet.Settle(blackjack.OutcomeWin, DefaultBlackjackMultiplier)
	require.ErrorIs(t, err, ErrAlreadySettled)
}

func TestAccessorsBeforeSettlement(t *testing.T) {
	bet, err := NewBet("player-1", stake(t, "10"), KindStandard)
	require.NoError(t, err)

	_, err = bet.Outcome()
	require.Error(t, err)
	_, err = bet.Payout()
	require.Error(t, err)
	_, err = bet.TotalReturn()
	require.Error(t, err)
}

func TestNewSplitBet(t *testing.T) {
	original, err := NewBet("player-1", stake(t, "10"), KindStandard)
	require.NoError(t, err)

	split, err := NewSplitBet(original)
	require.NoError(t, err)
	require.Equal(t, KindSplit, split.Kind)
	require.Equal(t, original.PlayerID, split.PlayerID)
	require.True(t, split.Stake.Equals(original.Stake))
	require.NotEqual(t, original.ID, split.ID)

	// A settled original cannot be split.
	_, err = original.Settle(blackjack.OutcomePush, DefaultBlackjackMultiplier)
	require.NoError(t, err)
	_, err = NewSplitBet(original)
	require.ErrorIs(t, err, ErrNotStandardBet)

	// A non-standard original cannot be split either.
	_, err = NewSplitBet(split)
	require.ErrorIs(t, err, ErrNotStandardBet)
}

func TestNewDoubleDownBet(t *testing.T) {
	original, err := NewBet("player-1", stake(t, "10"), KindStandard)
	require.NoError(t, err)

	doubled, err := NewDoubleDownBet(original)
	require.NoError(t, err)
	require.Equal(t, KindDoubleDown, doubled.Kind)
	require.Equal(t, "20.00 USD", doubled.Stake.String())

	_, err = NewDoubleDownBet(doubled)
	require.ErrorIs(t, err, ErrNotStandardBet)
}
