package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrCurrencyMismatch is returned when arithmetic mixes currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrScale is returned when an amount cannot be represented with at most
	// two fractional digits.
	ErrScale = errors.New("amount exceeds two decimal places")
	// ErrNoCurrency is returned when an amount is built without a currency tag.
	ErrNoCurrency = errors.New("currency is required")
)

// Money is an exact decimal amount tagged with a currency. Arithmetic between
// differing currencies is rejected, and every operation keeps the amount
// representable with at most two fractional digits.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// FromDecimal creates a Money value from a decimal amount
func FromDecimal(amount decimal.Decimal, currency string) (Money, error) {
	if currency == "" {
		return Money{}, ErrNoCurrency
	}
	if !amount.Equal(amount.Round(2)) {
		return Money{}, fmt.Errorf("%w: %s", ErrScale, amount)
	}
	return Money{amount: amount, currency: currency}, nil
}

// FromString creates a Money value from a decimal string like "12.50"
func FromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return FromDecimal(d, currency)
}

// FromFloat creates a Money value from a float amount
func FromFloat(amount float64, currency string) (Money, error) {
	return FromDecimal(decimal.NewFromFloat(amount), currency)
}

// Zero creates a zero amount in the given currency
func Zero(currency string) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency tag
func (m Money) Currency() string {
	return m.currency
}

// Add returns m + other
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub returns m - other
func (m Money) Sub(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Mul returns m scaled by the given factor. The result is rejected when it
// needs more than two fractional digits.
func (m Money) Mul(factor decimal.Decimal) (Money, error) {
	return FromDecimal(m.amount.Mul(factor), m.currency)
}

// MulFloat returns m scaled by the given float factor
func (m Money) MulFloat(factor float64) (Money, error) {
	return m.Mul(decimal.NewFromFloat(factor))
}

// Div returns m divided by the given divisor. The result is rejected when it
// needs more than two fractional digits.
func (m Money) Div(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, errors.New("division by zero")
	}
	// DivisionPrecision defaults to 16; round-tripping through the scale
	// check catches any quotient that does not fit in two digits.
	return FromDecimal(m.amount.Div(divisor), m.currency)
}

// Cmp compares two amounts: -1 if m < other, 0 if equal, +1 if m > other
func (m Money) Cmp(other Money) (int, error) {
	if err := m.sameCurrency(other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

// Equals checks if two amounts are equal in value and currency
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports whether the amount is above zero
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// String returns the amount with two fractional digits and the currency tag,
// e.g. "12.50 USD"
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// MarshalJSON encodes the amount as its String form, e.g. "12.50 USD".
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes the String form produced by MarshalJSON.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	amount, currency, found := strings.Cut(s, " ")
	if !found {
		return fmt.Errorf("invalid money %q: want \"<amount> <currency>\"", s)
	}
	parsed, err := FromString(amount, currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}
