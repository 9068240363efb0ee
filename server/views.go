package server

import (
	"errors"

	"github.com/lazharichir/blackjack/table"
)

var (
	ErrNotJoined         = errors.New("join a table before sending commands")
	ErrAlreadyJoined     = errors.New("already joined a table")
	ErrMissingPlayerName = errors.New("player name is required")
	ErrUnknownCommand    = errors.New("unknown command")
)

// HandView is the wire shape of one player hand.
type HandView struct {
	Cards     string `json:"cards"`
	Value     int    `json:"value"`
	Soft      bool   `json:"soft"`
	Busted    bool   `json:"busted"`
	Blackjack bool   `json:"blackjack"`
	Stake     string `json:"stake"`
	Doubled   bool   `json:"doubled"`
	Stood     bool   `json:"stood"`
}

// StateView is the wire shape of the table as the client sees it.
type StateView struct {
	RoundID string     `json:"roundId"`
	Status  string     `json:"status"`
	Dealer  string     `json:"dealer"`
	Hands   []HandView `json:"hands"`
	Balance string     `json:"balance"`
}

// ResultView is the wire shape of one settled hand.
type ResultView struct {
	Hand        int    `json:"hand"`
	Cards       string `json:"cards"`
	Outcome     string `json:"outcome"`
	Stake       string `json:"stake"`
	Payout      string `json:"payout"`
	TotalReturn string `json:"totalReturn"`
}

func (sess *session) stateView() StateView {
	view := StateView{
		RoundID: sess.table.RoundID(),
		Status:  string(sess.table.Status),
		Dealer:  sess.table.DealerView().String(),
		Balance: sess.player.Balance.String(),
	}

	seat, err := sess.table.Seat(sess.player.ID)
	if err != nil {
		return view
	}

	for _, sh := range seat.Hands {
		view.Hands = append(view.Hands, HandView{
			Cards:     sh.Hand.String(),
			Value:     sh.Hand.Value(),
			Soft:      sh.Hand.IsSoft(),
			Busted:    sh.Hand.IsBusted(),
			Blackjack: sh.Hand.IsBlackjack(),
			Stake:     sh.Bet.Stake.String(),
			Doubled:   sh.Doubled,
			Stood:     sh.Stood,
		})
	}

	return view
}

func resultViews(results []table.HandResult) []ResultView {
	views := make([]ResultView, 0, len(results))
	for _, result := range results {
		views = append(views, ResultView{
			Hand:        result.HandIndex,
			Cards:       result.Hand.String(),
			Outcome:     result.Outcome.String(),
			Stake:       result.Stake.String(),
			Payout:      result.Payout.String(),
			TotalReturn: result.TotalReturn.String(),
		})
	}
	return views
}
