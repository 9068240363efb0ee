package stats

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS player_stats (
	player_id     TEXT PRIMARY KEY,
	player_name   TEXT NOT NULL,
	rounds_played INTEGER NOT NULL DEFAULT 0,
	wins          INTEGER NOT NULL DEFAULT 0,
	losses        INTEGER NOT NULL DEFAULT 0,
	pushes        INTEGER NOT NULL DEFAULT 0,
	blackjacks    INTEGER NOT NULL DEFAULT 0,
	total_wagered TEXT NOT NULL DEFAULT '0',
	net_result    TEXT NOT NULL DEFAULT '0',
	currency      TEXT NOT NULL DEFAULT '',
	last_played   TIMESTAMP
);`

// SQLiteStore persists statistics to a SQLite database file
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a SQLite statistics database
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statistics database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create statistics schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// RecordRound saves the result of one settled hand
func (s *SQLiteStore) RecordRound(record RoundRecord) error {
	current, err := s.PlayerStats(record.PlayerID)
	if err == ErrPlayerUnknown {
		current = &PlayerStats{PlayerID: record.PlayerID}
	} else if err != nil {
		return err
	}
	current.apply(record)

	_, err = s.db.Exec(`
		INSERT INTO player_stats
			(player_id, player_name, rounds_played, wins, losses, pushes, blackjacks, total_wagered, net_result, currency, last_played)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(player_id) DO UPDATE SET
			player_name   = excluded.player_name,
			rounds_played = excluded.rounds_played,
			wins          = excluded.wins,
			losses        = excluded.losses,
			pushes        = excluded.pushes,
			blackjacks    = excluded.blackjacks,
			total_wagered = excluded.total_wagered,
			net_result    = excluded.net_result,
			currency      = excluded.currency,
			last_played   = excluded.last_played`,
		current.PlayerID, current.PlayerName, current.RoundsPlayed,
		current.Wins, current.Losses, current.Pushes, current.Blackjacks,
		current.TotalWagered.String(), current.NetResult.String(),
		current.Currency, current.LastPlayed,
	)
	if err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}
	return nil
}

// PlayerStats retrieves a player's aggregate statistics
func (s *SQLiteStore) PlayerStats(playerID string) (*PlayerStats, error) {
	row := s.db.QueryRow(`
		SELECT player_id, player_name, rounds_played, wins, losses, pushes, blackjacks, total_wagered, net_result, currency, last_played
		FROM player_stats WHERE player_id = ?`, playerID)

	stats, err := scanStats(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrPlayerUnknown
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load player stats: %w", err)
	}
	return stats, nil
}

// AllStats returns statistics for every known player
func (s *SQLiteStore) AllStats() ([]*PlayerStats, error) {
	rows, err := s.db.Query(`
		SELECT player_id, player_name, rounds_played, wins, losses, pushes, blackjacks, total_wagered, net_result, currency, last_played
		FROM player_stats ORDER BY player_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	defer rows.Close()

	var out []*PlayerStats
	for rows.Next() {
		stats, err := scanStats(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		out = append(out, stats)
	}
	return out, rows.Err()
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanStats(scan func(dest ...any) error) (*PlayerStats, error) {
	var stats PlayerStats
	var wagered, net string
	var lastPlayed sql.NullTime

	err := scan(
		&stats.PlayerID, &stats.PlayerName, &stats.RoundsPlayed,
		&stats.Wins, &stats.Losses, &stats.Pushes, &stats.Blackjacks,
		&wagered, &net, &stats.Currency, &lastPlayed,
	)
	if err != nil {
		return nil, err
	}

	if stats.TotalWagered, err = decimal.NewFromString(wagered); err != nil {
		return nil, err
	}
	if stats.NetResult, err = decimal.NewFromString(net); err != nil {
		return nil, err
	}
	if lastPlayed.Valid {
		stats.LastPlayed = lastPlayed.Time
	}
	return &stats, nil
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)
