package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount = errors.New("money amount cannot be negative")
	ErrInvalidAmount  = errors.New("invalid money amount")
	ErrTooPrecise     = errors.New("money amount has more than two decimal places")
	ErrAmountOverflow = errors.New("money amount exceeds the supported maximum")
)

// MaxCents is the largest amount a booking price column (NUMERIC(12,2)) can hold.
const MaxCents int64 = 999_999_999_999

var (
	hundred    = decimal.NewFromInt(100)
	maxShifted = decimal.NewFromInt(MaxCents)
)

// Money is a non-negative amount in the single supported currency, held as integer cents.
type Money struct {
	cents int64
}

func Zero() Money {
	return Money{}
}

func FromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	if cents > MaxCents {
		return Money{}, ErrAmountOverflow
	}
	return Money{cents: cents}, nil
}

func FromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	shifted := d.Shift(2)
	if !shifted.Equal(shifted.Truncate(0)) {
		return Money{}, ErrTooPrecise
	}
	if shifted.GreaterThan(maxShifted) {
		return Money{}, ErrAmountOverflow
	}
	return Money{cents: shifted.IntPart()}, nil
}

// Parse accepts plain decimal strings such as "100", "99.5" or "1200.00".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return FromDecimal(d)
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

// String renders the amount with exactly two decimal places.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Equal(o Money) bool {
	return m.cents == o.cents
}

func (m Money) LessThan(o Money) bool {
	return m.cents < o.cents
}

// Times multiplies by n. A non-positive n yields zero; a product above MaxCents is ErrAmountOverflow.
func (m Money) Times(n int64) (Money, error) {
	if n <= 0 || m.cents == 0 {
		return Money{}, nil
	}
	if m.cents > MaxCents/n {
		return Money{}, ErrAmountOverflow
	}
	return Money{cents: m.cents * n}, nil
}

// Minus subtracts o and floors the result at zero.
func (m Money) Minus(o Money) Money {
	if o.cents >= m.cents {
		return Money{}
	}
	return Money{cents: m.cents - o.cents}
}

func Min(a, b Money) Money {
	if a.cents <= b.cents {
		return a
	}
	return b
}

// Portion returns pct percent of m rounded to the nearest cent, halves away from zero.
// pct is clamped to [0, 100].
func (m Money) Portion(pct int) Money {
	if pct <= 0 {
		return Money{}
	}
	if pct >= 100 {
		return m
	}
	d := decimal.NewFromInt(m.cents).Mul(decimal.NewFromInt(int64(pct))).Div(hundred).Round(0)
	return Money{cents: d.IntPart()}
}
