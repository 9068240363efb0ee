package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sanity-io/litter"

	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/money"
	"github.com/lazharichir/blackjack/server"
	"github.com/lazharichir/blackjack/stats"
	"github.com/lazharichir/blackjack/table"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML table rules file")
	statsPath := flag.String("stats", "", "path to a SQLite stats database")
	debug := flag.Bool("debug", false, "dump every domain event")
	serve := flag.Bool("serve", false, "run the WebSocket gateway instead of the console game")
	port := flag.String("port", "7777", "gateway port")
	flag.Parse()

	rules := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Loading config failed: %v", err)
		}
		rules = loaded
	}

	var store stats.Store
	if *statsPath != "" {
		sqliteStore, err := stats.NewSQLiteStore(*statsPath)
		if err != nil {
			log.Fatalf("Opening stats store failed: %v", err)
		}
		store = sqliteStore
	} else {
		store = stats.NewMemoryStore()
	}
	defer store.Close()

	if *serve {
		s := server.NewServer(rules, store)
		if err := s.Start(*port); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	runConsole(rules, store, *debug)
}

func runConsole(rules config.TableRules, store stats.Store, debug bool) {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Render()

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your name").WithDefaultValue("player").Show()
	buyIn, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Buy-in amount").WithDefaultValue("100").Show()

	balance, err := money.FromString(buyIn, rules.Currency)
	if err != nil {
		pterm.Error.Printfln("Invalid buy-in: %v", err)
		return
	}

	tbl, err := table.New(name+"'s table", rules, cards.NewRandShuffler())
	if err != nil {
		pterm.Error.Printfln("Could not open table: %v", err)
		return
	}

	if debug {
		tbl.RegisterEventHandler(func(event events.Event) {
			litter.D(event)
		})
	}

	player := table.NewPlayer(name, name, balance)
	if err := tbl.SeatPlayer(player); err != nil {
		pterm.Error.Printfln("Could not seat player: %v", err)
		return
	}

	for {
		if err := playRound(tbl, player, rules, store); err != nil {
			pterm.Error.Printfln("Round failed: %v", err)
			return
		}

		if player.Balance.IsZero() {
			pterm.Info.Println("You are out of money. Thanks for playing!")
			break
		}

		again, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Play another round?").WithDefaultValue(true).Show()
		if !again {
			break
		}
	}

	printStats(player.ID, store)
}

func playRound(tbl *table.Table, player *table.Player, rules config.TableRules, store stats.Store) error {
	if err := tbl.StartRound(); err != nil {
		return err
	}

	pterm.Println()
	pterm.Info.Printfln("Balance: %s", player.Balance)

	prompt := fmt.Sprintf("Your bet (%s to %s)", formatLimit(rules.MinBet), formatLimit(rules.MaxBet))
	for {
		amount, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).WithDefaultValue(formatLimit(rules.MinBet)).Show()
		stake, err := money.FromString(amount, rules.Currency)
		if err != nil {
			pterm.Error.Printfln("Invalid amount: %v", err)
			continue
		}
		if err := tbl.PlaceBet(player.ID, stake); err != nil {
			pterm.Error.Printfln("Bet rejected: %v", err)
			continue
		}
		break
	}

	if err := tbl.DealInitial(); err != nil {
		return err
	}

	if err := playHands(tbl, player); err != nil {
		return err
	}

	if err := tbl.PlayDealer(); err != nil {
		return err
	}
	pterm.Info.Printfln("Dealer: %s (%d)", tbl.DealerView(), tbl.Dealer().Value())

	results, err := tbl.SettleRound()
	if err != nil {
		return err
	}

	for _, result := range results {
		line := fmt.Sprintf("Hand %s: %s, returned %s", result.Hand, result.Outcome, result.TotalReturn)
		if result.Outcome.IsWin() {
			pterm.Success.Println(line)
		} else {
			pterm.Info.Println(line)
		}

		record := stats.RoundRecord{
			PlayerID:   result.PlayerID,
			PlayerName: result.PlayerName,
			Outcome:    result.Outcome,
			Wagered:    result.Stake,
			Returned:   result.TotalReturn,
			At:         time.Now(),
		}
		if err := store.RecordRound(record); err != nil {
			pterm.Warning.Printfln("Could not record round: %v", err)
		}
	}

	return nil
}

// playHands walks every hand at the player's seat until each is resolved.
// Splits grow the hand list mid-loop, so the index is re-checked each pass.
func playHands(tbl *table.Table, player *table.Player) error {
	seat, err := tbl.Seat(player.ID)
	if err != nil {
		return err
	}

	for i := 0; i < len(seat.Hands); i++ {
		for !seat.Hands[i].Resolved() {
			hand := seat.Hands[i].Hand
			pterm.Println()
			pterm.Info.Printfln("Dealer shows: %s", tbl.DealerView())
			pterm.Info.Printfln("Hand %d: %s (%s)", i+1, hand, describeValue(hand))

			choice, _ := pterm.DefaultInteractiveSelect.
				WithDefaultText("Your action").
				WithOptions(availableActions(tbl, player, i)).
				Show()

			var actErr error
			switch choice {
			case "hit":
				actErr = tbl.Hit(player.ID, i)
			case "stand":
				actErr = tbl.Stand(player.ID, i)
			case "double down":
				actErr = tbl.DoubleDown(player.ID, i)
			case "split":
				actErr = tbl.Split(player.ID, i)
			}
			if actErr != nil {
				pterm.Error.Printfln("Action rejected: %v", actErr)
			}
		}

		hand := seat.Hands[i].Hand
		if hand.IsBusted() {
			pterm.Warning.Printfln("Hand %d busts: %s (%d)", i+1, hand, hand.Value())
		}
	}

	return nil
}

func availableActions(tbl *table.Table, player *table.Player, handIndex int) []string {
	seat, err := tbl.Seat(player.ID)
	if err != nil {
		return []string{"stand"}
	}

	hand := seat.Hands[handIndex].Hand
	engine := tbl.Engine()

	actions := []string{"hit", "stand"}
	if engine.IsValidPlayerAction(blackjack.ActionDoubleDown, hand) {
		actions = append(actions, "double down")
	}
	if engine.IsValidPlayerAction(blackjack.ActionSplit, hand) {
		actions = append(actions, "split")
	}
	return actions
}

func describeValue(hand *blackjack.Hand) string {
	if hand.IsBlackjack() {
		return "blackjack"
	}
	if hand.IsSoft() {
		return fmt.Sprintf("soft %d", hand.Value())
	}
	return fmt.Sprintf("%d", hand.Value())
}

func formatLimit(limit float64) string {
	return fmt.Sprintf("%g", limit)
}

func printStats(playerID string, store stats.Store) {
	playerStats, err := store.PlayerStats(playerID)
	if err != nil {
		return
	}

	pterm.Println()
	pterm.DefaultSection.Println("Session stats")
	pterm.Printfln("Rounds:     %d", playerStats.RoundsPlayed)
	pterm.Printfln("Wins:       %d (%d blackjacks)", playerStats.Wins, playerStats.Blackjacks)
	pterm.Printfln("Losses:     %d", playerStats.Losses)
	pterm.Printfln("Pushes:     %d", playerStats.Pushes)
	pterm.Printfln("Wagered:    %s %s", playerStats.TotalWagered, playerStats.Currency)
	pterm.Printfln("Net result: %s %s", playerStats.NetResult, playerStats.Currency)
}
