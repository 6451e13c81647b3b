package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an immutable amount in a single currency. Amounts are decimals,
// never floats, so tariff arithmetic cannot drift. Negative amounts are not
// representable; refunds are modelled as separate transactions at a higher
// layer, not as negative money.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney builds a Money after validating the amount is non-negative and
// the currency code is non-empty. The currency is normalised to upper case
// so "usd" and "USD" compare equal.
// Returns ErrInvalidArgument on violation.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return Money{}, fmt.Errorf("%w: currency is required", ErrInvalidArgument)
	}
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount must not be negative, got %s", ErrInvalidArgument, amount)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// MustMoney is NewMoney for statically-known values (fixtures, rate tables).
// It panics on invalid input.
func MustMoney(amount string, currency string) Money {
	m, err := NewMoney(decimal.RequireFromString(amount), currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns a new Money holding the sum of m and other.
// Returns ErrInvalidOperation when the currencies differ; there is no
// implicit conversion.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: cannot add %s to %s", ErrInvalidOperation, other.Currency, m.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Mul returns a new Money scaled by factor. Used by the tariff to turn a
// day rate into a total. Returns ErrInvalidArgument for negative factors.
func (m Money) Mul(factor int64) (Money, error) {
	if factor < 0 {
		return Money{}, fmt.Errorf("%w: factor must not be negative, got %d", ErrInvalidArgument, factor)
	}
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(factor)), Currency: m.Currency}, nil
}

// Equal reports whether both the amount and the currency match.
// decimal.Decimal values are not comparable with ==, hence this method.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency
}
