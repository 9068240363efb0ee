package blackjack

import (
	"errors"
	"fmt"

	"github.com/lazharichir/blackjack/cards"
)

// Action represents a player decision during their turn.
type Action string

const (
	ActionHit        Action = "hit"
	ActionStand      Action = "stand"
	ActionDoubleDown Action = "double_down"
	ActionSplit      Action = "split"
)

// Outcome represents the result of a finished player hand against the
// dealer hand.
type Outcome string

const (
	OutcomeWin       Outcome = "WIN"
	OutcomeLose      Outcome = "LOSE"
	OutcomePush      Outcome = "PUSH"
	OutcomeBlackjack Outcome = "BLACKJACK"
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// IsWin returns true if this outcome pays the player
func (o Outcome) IsWin() bool {
	return o == OutcomeWin || o == OutcomeBlackjack
}

// ViolationReason explains why the rules rejected an action.
type ViolationReason string

const (
	ReasonHandBusted        ViolationReason = "hand_busted"
	ReasonNeedTwoCards      ViolationReason = "need_exactly_two_cards"
	ReasonNotAPair          ViolationReason = "cards_are_not_a_pair"
	ReasonActionDisabled    ViolationReason = "action_disabled_by_table_rules"
	ReasonSplitLimitReached ViolationReason = "split_limit_reached"
	ReasonSplitAcesLocked   ViolationReason = "split_aces_receive_one_card_only"
)

// ActionError reports an action rejected at validation time. It is never
// coerced into a different action.
type ActionError struct {
	Action Action
	Reason ViolationReason
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action %s rejected: %s", e.Action, e.Reason)
}

// ErrNilHand is returned when outcome determination receives a missing hand.
var ErrNilHand = errors.New("player and dealer hands are required")

// Rules is the stateless blackjack policy for one table configuration.
type Rules struct {
	DealerHitsOnSoft17 bool
	AllowDoubleDown    bool
	AllowSplit         bool
	DealerStandValue   int
}

// NewRules creates a rules engine with the standard dealer stand value of 17
func NewRules(dealerHitsOnSoft17, allowDoubleDown, allowSplit bool) Rules {
	return Rules{
		DealerHitsOnSoft17: dealerHitsOnSoft17,
		AllowDoubleDown:    allowDoubleDown,
		AllowSplit:         allowSplit,
		DealerStandValue:   17,
	}
}

// CardValue returns a card's contribution given the current hand total: 2-10
// for number and face cards, and 11 for an ace unless that would bust.
func (r Rules) CardValue(card cards.Card, currentHandTotal int) int {
	value := hardCardValue(card)
	if card.Rank == cards.Ace && currentHandTotal+11 > 21 {
		return 1
	}
	return value
}

// ShouldDealerHit decides whether the dealer draws another card
func (r Rules) ShouldDealerHit(dealerValue int, soft bool) bool {
	if dealerValue < r.DealerStandValue {
		return true
	}
	return r.DealerHitsOnSoft17 && soft && dealerValue == r.DealerStandValue
}

// ValidateAction checks an action against the current hand shape and returns
// a typed ActionError when the action is illegal.
func (r Rules) ValidateAction(action Action, hand *Hand) error {
	if hand == nil {
		return ErrNilHand
	}

	if hand.IsBusted() {
		return &ActionError{Action: action, Reason: ReasonHandBusted}
	}

	switch action {
	case ActionHit, ActionStand:
		return nil
	case ActionDoubleDown:
		if !r.AllowDoubleDown {
			return &ActionError{Action: action, Reason: ReasonActionDisabled}
		}
		if hand.Count() != 2 {
			return &ActionError{Action: action, Reason: ReasonNeedTwoCards}
		}
		return nil
	case ActionSplit:
		if !r.AllowSplit {
			return &ActionError{Action: action, Reason: ReasonActionDisabled}
		}
		if hand.Count() != 2 {
			return &ActionError{Action: action, Reason: ReasonNeedTwoCards}
		}
		if !hand.HasPair() {
			return &ActionError{Action: action, Reason: ReasonNotAPair}
		}
		return nil
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}

// IsValidPlayerAction reports whether the action is legal for the hand
func (r Rules) IsValidPlayerAction(action Action, hand *Hand) bool {
	return r.ValidateAction(action, hand) == nil
}

// DetermineOutcome compares a finished player hand to the finished dealer
// hand. A busted player loses regardless of the dealer; a dealer bust is a
// win, upgraded to blackjack when the player holds a natural; naturals beat
// equal-value non-naturals.
func (r Rules) DetermineOutcome(player, dealer *Hand) (Outcome, error) {
	if player == nil || dealer == nil {
		return "", ErrNilHand
	}

	if player.IsBusted() {
		return OutcomeLose, nil
	}

	if dealer.IsBusted() {
		if player.IsBlackjack() {
			return OutcomeBlackjack, nil
		}
		return OutcomeWin, nil
	}

	playerNatural, dealerNatural := player.IsBlackjack(), dealer.IsBlackjack()
	switch {
	case playerNatural && dealerNatural:
		return OutcomePush, nil
	case playerNatural:
		return OutcomeBlackjack, nil
	case dealerNatural:
		return OutcomeLose, nil
	}

	switch {
	case player.Value() > dealer.Value():
		return OutcomeWin, nil
	case player.Value() < dealer.Value():
		return OutcomeLose, nil
	default:
		return OutcomePush, nil
	}
}
