package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TableRules defines the rules for a blackjack table. It is loaded and
// validated here, then consumed as plain values by the rules engine, the
// shoe, and the table.
type TableRules struct {
	NumberOfDecks             int     `yaml:"numberOfDecks"`
	DealerHitsOnSoft17        bool    `yaml:"dealerHitsOnSoft17"`
	AllowDoubleDown           bool    `yaml:"allowDoubleDown"`
	AllowSplit                bool    `yaml:"allowSplit"`
	BlackjackPayoutMultiplier float64 `yaml:"blackjackPayoutMultiplier"`
	PenetrationThreshold      float64 `yaml:"penetrationThreshold"`
	AutoReshuffle             bool    `yaml:"autoReshuffle"`
	MaxSplits                 int     `yaml:"maxSplits"`
	MinBet                    float64 `yaml:"minBet"`
	MaxBet                    float64 `yaml:"maxBet"`
	Currency                  string  `yaml:"currency"`
}

// Default returns the reference table configuration: six decks, S17 dealer,
// 3:2 naturals, reshuffle at 25% penetration, up to 3 splits.
func Default() TableRules {
	return TableRules{
		NumberOfDecks:             6,
		DealerHitsOnSoft17:        false,
		AllowDoubleDown:           true,
		AllowSplit:                true,
		BlackjackPayoutMultiplier: 1.5,
		PenetrationThreshold:      0.25,
		AutoReshuffle:             true,
		MaxSplits:                 3,
		MinBet:                    5,
		MaxBet:                    500,
		Currency:                  "USD",
	}
}

// Load reads table rules from a YAML file, layered over the defaults.
func Load(path string) (TableRules, error) {
	rules := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return TableRules{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &rules); err != nil {
		return TableRules{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := rules.Validate(); err != nil {
		return TableRules{}, err
	}

	return rules, nil
}

// Validate rejects out-of-range configuration before any round starts.
func (r TableRules) Validate() error {
	if r.NumberOfDecks <= 0 {
		return fmt.Errorf("numberOfDecks must be positive, got %d", r.NumberOfDecks)
	}
	if r.PenetrationThreshold < 0 || r.PenetrationThreshold > 1 {
		return fmt.Errorf("penetrationThreshold must be within [0, 1], got %v", r.PenetrationThreshold)
	}
	if r.BlackjackPayoutMultiplier <= 0 {
		return fmt.Errorf("blackjackPayoutMultiplier must be positive, got %v", r.BlackjackPayoutMultiplier)
	}
	if r.MaxSplits < 0 {
		return fmt.Errorf("maxSplits must not be negative, got %d", r.MaxSplits)
	}
	if r.MinBet <= 0 {
		return fmt.Errorf("minBet must be positive, got %v", r.MinBet)
	}
	if r.MinBet >= r.MaxBet {
		return fmt.Errorf("minBet must be below maxBet, got %v >= %v", r.MinBet, r.MaxBet)
	}
	if r.Currency == "" {
		return errors.New("currency is required")
	}
	return nil
}
