package stats

import (
	"errors"
	"sort"
	"sync"
)

// ErrPlayerUnknown is returned when no rounds were recorded for a player.
var ErrPlayerUnknown = errors.New("no statistics for player")

// MemoryStore is an in-memory implementation of statistics storage
type MemoryStore struct {
	mu      sync.RWMutex
	players map[string]*PlayerStats
}

// NewMemoryStore creates a new in-memory statistics store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{players: make(map[string]*PlayerStats)}
}

// RecordRound saves the result of one settled hand
func (s *MemoryStore) RecordRound(record RoundRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, ok := s.players[record.PlayerID]
	if !ok {
		stats = &PlayerStats{PlayerID: record.PlayerID}
		s.players[record.PlayerID] = stats
	}
	stats.apply(record)
	return nil
}

// PlayerStats retrieves a player's aggregate statistics
func (s *MemoryStore) PlayerStats(playerID string) (*PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats, ok := s.players[playerID]
	if !ok {
		return nil, ErrPlayerUnknown
	}
	copied := *stats
	return &copied, nil
}

// AllStats returns statistics for every known player
func (s *MemoryStore) AllStats() ([]*PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*PlayerStats, 0, len(s.players))
	for _, stats := range s.players {
		copied := *stats
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

// Close releases the store's resources
func (s *MemoryStore) Close() error {
	return nil
}
