package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/money"
	"github.com/lazharichir/blackjack/stats"
	"github.com/lazharichir/blackjack/table"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// Server exposes a single-table gateway over WebSocket. Each connection
// gets its own table and plays against the house alone.
type Server struct {
	rules config.TableRules
	store stats.Store
}

// NewServer creates a gateway serving tables configured with the given rules.
// The stats store may be nil, in which case results are not recorded.
func NewServer(rules config.TableRules, store stats.Store) *Server {
	return &Server{rules: rules, store: store}
}

// Start begins the server on the specified port
func (s *Server) Start(port string) error {
	log.Printf("Starting server on port %s", port)
	return http.ListenAndServe("0.0.0.0:"+port, s.routes())
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// handleWebSocket handles incoming WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		return
	}

	log.Printf("New client connected: %s", r.RemoteAddr)

	sess := &session{
		conn:    conn,
		rules:   s.rules,
		store:   s.store,
		history: events.NewInMemoryEventStore(),
		send:    make(chan []byte, 256),
	}

	go sess.writePump()
	sess.readPump()
}

// session holds the state of one connected client: its table, its player,
// and the outbound message queue.
type session struct {
	conn    *websocket.Conn
	rules   config.TableRules
	store   stats.Store
	history events.EventStore
	table   *table.Table
	player  *table.Player
	send    chan []byte
}

// command is the envelope for every inbound message.
type command struct {
	Name    string `json:"name"`
	Player  string `json:"player,omitempty"`
	Balance string `json:"balance,omitempty"`
	Amount  string `json:"amount,omitempty"`
	Hand    int    `json:"hand,omitempty"`
}

// envelope is the outbound message wrapper.
type envelope struct {
	Type  string `json:"type"`
	Name  string `json:"name,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func (sess *session) readPump() {
	defer func() {
		close(sess.send)
		sess.conn.Close()
	}()

	for {
		_, message, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Error reading message: %v", err)
			}
			return
		}

		if err := sess.handleCommand(message); err != nil {
			sess.sendEnvelope(envelope{Type: "error", Error: err.Error()})
		}
	}
}

func (sess *session) writePump() {
	for message := range sess.send {
		if err := sess.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Error writing message: %v", err)
			return
		}
	}
}

func (sess *session) sendEnvelope(env envelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		log.Printf("Error marshaling envelope: %v", err)
		return
	}
	select {
	case sess.send <- payload:
	default:
		log.Printf("Send buffer full, dropping message %q", env.Name)
	}
}

// handleCommand routes an inbound command to the table.
func (sess *session) handleCommand(message []byte) error {
	var cmd command
	if err := json.Unmarshal(message, &cmd); err != nil {
		return err
	}

	if cmd.Name == "join" {
		return sess.handleJoin(cmd)
	}

	if sess.table == nil {
		return ErrNotJoined
	}

	switch cmd.Name {
	case "bet":
		return sess.handleBet(cmd)
	case "deal":
		if err := sess.table.DealInitial(); err != nil {
			return err
		}
	case "hit":
		if err := sess.table.Hit(sess.player.ID, cmd.Hand); err != nil {
			return err
		}
	case "stand":
		if err := sess.table.Stand(sess.player.ID, cmd.Hand); err != nil {
			return err
		}
	case "double":
		if err := sess.table.DoubleDown(sess.player.ID, cmd.Hand); err != nil {
			return err
		}
	case "split":
		if err := sess.table.Split(sess.player.ID, cmd.Hand); err != nil {
			return err
		}
	case "dealer":
		if err := sess.table.PlayDealer(); err != nil {
			return err
		}
	case "settle":
		return sess.handleSettle()
	case "history":
		return sess.handleHistory()
	default:
		return ErrUnknownCommand
	}

	sess.sendState()
	return nil
}

func (sess *session) handleJoin(cmd command) error {
	if sess.table != nil {
		return ErrAlreadyJoined
	}
	if cmd.Player == "" {
		return ErrMissingPlayerName
	}

	balance, err := money.FromString(cmd.Balance, sess.rules.Currency)
	if err != nil {
		return err
	}

	tbl, err := table.New(cmd.Player+"'s table", sess.rules, cards.NewRandShuffler())
	if err != nil {
		return err
	}
	tbl.RegisterEventHandler(sess.handleEvent)

	player := table.NewPlayer(cmd.Player, cmd.Player, balance)
	if err := tbl.SeatPlayer(player); err != nil {
		return err
	}

	sess.table = tbl
	sess.player = player

	if err := tbl.StartRound(); err != nil {
		return err
	}

	sess.sendState()
	return nil
}

func (sess *session) handleBet(cmd command) error {
	stake, err := money.FromString(cmd.Amount, sess.rules.Currency)
	if err != nil {
		return err
	}
	if err := sess.table.PlaceBet(sess.player.ID, stake); err != nil {
		return err
	}
	sess.sendState()
	return nil
}

func (sess *session) handleSettle() error {
	results, err := sess.table.SettleRound()
	if err != nil {
		return err
	}

	if sess.store != nil {
		for _, result := range results {
			record := stats.RoundRecord{
				PlayerID:   result.PlayerID,
				PlayerName: result.PlayerName,
				Outcome:    result.Outcome,
				Wagered:    result.Stake,
				Returned:   result.TotalReturn,
				At:         time.Now(),
			}
			if err := sess.store.RecordRound(record); err != nil {
				log.Printf("Error recording round for %s: %v", result.PlayerID, err)
			}
		}
	}

	sess.sendEnvelope(envelope{Type: "results", Data: resultViews(results)})

	// Ready the table for the next round.
	if err := sess.table.StartRound(); err != nil {
		return err
	}
	sess.sendState()
	return nil
}

// handleHistory replays every event recorded for the session's table.
func (sess *session) handleHistory() error {
	recorded, err := sess.history.LoadEvents(sess.table.ID)
	if err != nil {
		return err
	}

	views := make([]envelope, 0, len(recorded))
	for _, event := range recorded {
		views = append(views, envelope{Type: "event", Name: event.Name(), Data: event})
	}
	sess.sendEnvelope(envelope{Type: "history", Data: views})
	return nil
}

// handleEvent records a domain event and forwards it to the client as a JSON
// envelope.
func (sess *session) handleEvent(event events.Event) {
	if err := sess.history.Append(event); err != nil {
		log.Printf("Error recording event %s: %v", event.Name(), err)
	}
	sess.sendEnvelope(envelope{Type: "event", Name: event.Name(), Data: event})
}

func (sess *session) sendState() {
	sess.sendEnvelope(envelope{Type: "state", Data: sess.stateView()})
}
