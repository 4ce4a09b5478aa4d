package decimal

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// TenthCentPlaces is the precision used for every prorated amount (nearest tenth of a cent).
const TenthCentPlaces = 3

// ErrEmptyAmount is returned by ParseAmount for blank input.
var ErrEmptyAmount = errors.New("amount is empty")

// ErrAmountOutOfRange is returned by ParseAmount for text that is too long or
// whose magnitude lies outside the finite float64 range.
var ErrAmountOutOfRange = errors.New("amount out of range")

const (
	maxAmountLength = 64
	// decimal exponents of the largest finite and smallest subnormal float64
	maxAmountMagnitude = 308
	minAmountMagnitude = -324
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64.
// NaN and infinities have no decimal representation and become zero.
func NewMoney(value float64) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero()
	}
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// ParseAmount parses user-entered currency text such as "50", " 50.00 ", "$16.5" or "16,5".
// A single comma is accepted as the decimal separator when no dot is present.
// Amounts a float64 could not hold, such as "1e400" or "1e-400", are rejected.
func ParseAmount(value string) (Money, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	if s == "" {
		return Money{}, ErrEmptyAmount
	}
	if len(s) > maxAmountLength {
		return Money{}, fmt.Errorf("parse amount %q: %w", value, ErrAmountOutOfRange)
	}
	if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}
	m, err := NewMoneyFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", value, err)
	}
	if !m.IsZero() {
		// order of magnitude of the leading digit
		magnitude := int64(m.Exponent()) + int64(m.NumDigits()) - 1
		if magnitude > maxAmountMagnitude || magnitude < minAmountMagnitude {
			return Money{}, fmt.Errorf("parse amount %q: %w", value, ErrAmountOutOfRange)
		}
	}
	return m, nil
}

// RoundTenthCent rounds half away from zero to three decimal places.
func (m Money) RoundTenthCent() Money {
	return Money{m.Decimal.Round(TenthCentPlaces)}
}

// RoundTenthCentFloat is the float64 form of RoundTenthCent; non-finite values round to 0.
func RoundTenthCentFloat(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return math.Round(value*1000) / 1000
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsPositive checks if the amount is positive
func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with exactly three decimals.
func (m Money) String() string {
	return m.Decimal.StringFixed(TenthCentPlaces)
}

// Format formats the amount as dollars to the tenth of a cent, e.g. "$16.667".
func (m Money) Format() string {
	if m.Decimal.IsNegative() {
		return "-$" + m.Decimal.Neg().StringFixed(TenthCentPlaces)
	}
	return "$" + m.String()
}

// FormatTenthCent formats a raw decimal the same way Money.Format does.
func FormatTenthCent(d decimal.Decimal) string {
	return NewMoneyFromDecimal(d).Format()
}
