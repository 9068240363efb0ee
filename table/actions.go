package table

import (
	"fmt"
	"time"

	"github.com/lazharichir/blackjack/betting"
	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/events"
)

// liveHand fetches a hand that can still act this round. A completed
// split-aces hand reports its one-card restriction rather than the generic
// not-live error.
func (t *Table) liveHand(playerID string, handIndex int, action blackjack.Action) (*Seat, *SeatHand, error) {
	if t.Status != StatusPlaying {
		return nil, nil, ErrNoActiveRound
	}
	seat, err := t.Seat(playerID)
	if err != nil {
		return nil, nil, err
	}
	if handIndex < 0 || handIndex >= len(seat.Hands) {
		return nil, nil, fmt.Errorf("%w: index %d", ErrHandIndex, handIndex)
	}
	hand := seat.Hands[handIndex]
	if hand.Resolved() {
		if hand.SplitAces {
			return nil, nil, &blackjack.ActionError{Action: action, Reason: blackjack.ReasonSplitAcesLocked}
		}
		return nil, nil, ErrHandNotLive
	}
	return seat, hand, nil
}

// Hit draws one card into the given hand
func (t *Table) Hit(playerID string, handIndex int) error {
	_, hand, err := t.liveHand(playerID, handIndex, blackjack.ActionHit)
	if err != nil {
		return err
	}
	if err := t.engine.ValidateAction(blackjack.ActionHit, hand.Hand); err != nil {
		return err
	}

	if err := t.dealTo(hand.Hand, playerID, false); err != nil {
		return err
	}
	t.emitAction(playerID, blackjack.ActionHit, handIndex)
	return nil
}

// Stand finishes the given hand
func (t *Table) Stand(playerID string, handIndex int) error {
	_, hand, err := t.liveHand(playerID, handIndex, blackjack.ActionStand)
	if err != nil {
		return err
	}
	if err := t.engine.ValidateAction(blackjack.ActionStand, hand.Hand); err != nil {
		return err
	}

	hand.Stood = true
	t.emitAction(playerID, blackjack.ActionStand, handIndex)
	return nil
}

// DoubleDown doubles the hand's wager, draws exactly one card, and stands.
// The extra stake leaves the player's balance immediately.
func (t *Table) DoubleDown(playerID string, handIndex int) error {
	seat, hand, err := t.liveHand(playerID, handIndex, blackjack.ActionDoubleDown)
	if err != nil {
		return err
	}
	if err := t.engine.ValidateAction(blackjack.ActionDoubleDown, hand.Hand); err != nil {
		return err
	}

	doubled, err := betting.NewDoubleDownBet(hand.Bet)
	if err != nil {
		return err
	}
	if err := seat.Player.Debit(hand.Bet.Stake); err != nil {
		return err
	}

	hand.Bet = doubled
	hand.Doubled = true

	t.emitEvent(events.BetPlaced{
		TableID:  t.ID,
		RoundID:  t.roundID,
		PlayerID: playerID,
		BetID:    doubled.ID,
		Kind:     string(doubled.Kind),
		Stake:    doubled.Stake,
		At:       time.Now(),
	})

	if err := t.dealTo(hand.Hand, playerID, false); err != nil {
		return err
	}
	hand.Stood = true
	t.emitAction(playerID, blackjack.ActionDoubleDown, handIndex)
	return nil
}

// Split turns a paired hand into two hands, each dealt one card. Split aces
// receive their single card and stand. The split wager mirrors the original
// and leaves the player's balance immediately.
func (t *Table) Split(playerID string, handIndex int) error {
	seat, hand, err := t.liveHand(playerID, handIndex, blackjack.ActionSplit)
	if err != nil {
		return err
	}
	if err := t.engine.ValidateAction(blackjack.ActionSplit, hand.Hand); err != nil {
		return err
	}
	if seat.splits >= t.Rules.MaxSplits {
		return &blackjack.ActionError{Action: blackjack.ActionSplit, Reason: blackjack.ReasonSplitLimitReached}
	}

	splitBet, err := betting.NewSplitBet(hand.Bet)
	if err != nil {
		return err
	}
	if err := seat.Player.Debit(splitBet.Stake); err != nil {
		return err
	}

	splitRank := hand.Hand.Cards()[0].Rank
	first, second, err := blackjack.Split(hand.Hand)
	if err != nil {
		return err
	}
	splitAces := blackjack.IsSplitAcesHand(first)

	firstHand := &SeatHand{Hand: first, Bet: hand.Bet, SplitAces: splitAces}
	secondHand := &SeatHand{Hand: second, Bet: splitBet, SplitAces: splitAces}

	seat.Hands[handIndex] = firstHand
	rest := append([]*SeatHand{secondHand}, seat.Hands[handIndex+1:]...)
	seat.Hands = append(seat.Hands[:handIndex+1], rest...)
	seat.splits++

	t.emitEvent(events.HandSplit{
		TableID:  t.ID,
		RoundID:  t.roundID,
		PlayerID: playerID,
		Rank:     splitRank,
		At:       time.Now(),
	})
	t.emitEvent(events.BetPlaced{
		TableID:  t.ID,
		RoundID:  t.roundID,
		PlayerID: playerID,
		BetID:    splitBet.ID,
		Kind:     string(splitBet.Kind),
		Stake:    splitBet.Stake,
		At:       time.Now(),
	})

	// Each split hand is dealt one card right away.
	if err := t.dealTo(first, playerID, false); err != nil {
		return err
	}
	if err := t.dealTo(second, playerID, false); err != nil {
		return err
	}

	if splitAces {
		firstHand.Stood = true
		secondHand.Stood = true
	}

	t.emitAction(playerID, blackjack.ActionSplit, handIndex)
	return nil
}

// allHandsResolved reports whether every seat hand is done acting
func (t *Table) allHandsResolved() bool {
	for _, playerID := range t.order {
		for _, hand := range t.seats[playerID].Hands {
			if !hand.Resolved() {
				return false
			}
		}
	}
	return true
}

// PlayDealer reveals the hole card and plays the dealer hand to completion
// under the configured hit policy.
func (t *Table) PlayDealer() error {
	if t.Status != StatusPlaying {
		return ErrNoActiveRound
	}
	if !t.allHandsResolved() {
		return ErrHandsUnresolved
	}

	t.holeRevealed = true
	hole := t.dealer.Cards()[1]
	t.emitEvent(events.DealerRevealed{
		TableID:  t.ID,
		RoundID:  t.roundID,
		HoleCard: hole,
		Value:    t.dealer.Value(),
		At:       time.Now(),
	})

	// The dealer only draws while at least one hand is still contesting.
	if t.anyHandContesting() {
		for t.engine.ShouldDealerHit(t.dealer.Value(), t.dealer.IsSoft()) {
			if err := t.dealTo(t.dealer, DealerSeat, false); err != nil {
				return err
			}
		}
	}

	t.dealerDone = true
	return nil
}

// anyHandContesting reports whether any seat hand is not busted
func (t *Table) anyHandContesting() bool {
	for _, playerID := range t.order {
		for _, hand := range t.seats[playerID].Hands {
			if !hand.Hand.IsBusted() {
				return true
			}
		}
	}
	return false
}

// SettleRound settles every bet against the dealer hand, credits returns to
// player balances, and closes the round.
func (t *Table) SettleRound() ([]HandResult, error) {
	if t.Status != StatusPlaying {
		return nil, ErrNoActiveRound
	}
	if !t.dealerDone {
		return nil, ErrDealerNotDone
	}

	var results []HandResult
	for _, playerID := range t.order {
		seat := t.seats[playerID]
		for i, hand := range seat.Hands {
			outcome, err := t.engine.DetermineOutcome(hand.Hand, t.dealer)
			if err != nil {
				return nil, err
			}

			totalReturn, err := hand.Bet.Settle(outcome, t.multiplier)
			if err != nil {
				return nil, err
			}
			if totalReturn.IsPositive() {
				if err := seat.Player.Credit(totalReturn); err != nil {
					return nil, err
				}
			}

			payout, err := hand.Bet.Payout()
			if err != nil {
				return nil, err
			}

			t.emitEvent(events.BetSettled{
				TableID:     t.ID,
				RoundID:     t.roundID,
				PlayerID:    playerID,
				BetID:       hand.Bet.ID,
				Outcome:     outcome.String(),
				Payout:      payout,
				TotalReturn: totalReturn,
				At:          time.Now(),
			})

			results = append(results, HandResult{
				PlayerID:    playerID,
				PlayerName:  seat.Player.Name,
				BetID:       hand.Bet.ID,
				HandIndex:   i,
				Hand:        hand.Hand,
				Outcome:     outcome,
				Stake:       hand.Bet.Stake,
				Payout:      payout,
				TotalReturn: totalReturn,
			})
		}
	}

	t.Status = StatusCompleted
	t.emitEvent(events.RoundEnded{
		TableID: t.ID,
		RoundID: t.roundID,
		At:      time.Now(),
	})

	return results, nil
}

func (t *Table) emitAction(playerID string, action blackjack.Action, handIndex int) {
	t.emitEvent(events.PlayerActed{
		TableID:   t.ID,
		RoundID:   t.roundID,
		PlayerID:  playerID,
		Action:    string(action),
		HandIndex: handIndex,
		At:        time.Now(),
	})
}
