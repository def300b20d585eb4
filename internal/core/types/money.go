// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value (Vietnamese dong) with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// Quantity represents a stock quantity with full precision.
// Loose tea and syrups are tracked in fractional units (kg, l), so this is
// decimal-valued, not integral.
type Quantity = decimal.Decimal

// Percent represents a percentage weight in the 0..100 range.
type Percent = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// Hundred is the percentage divisor.
var Hundred = decimal.NewFromInt(100)

// ShareOf returns amount * percent / 100 without intermediate rounding.
func ShareOf(amount Money, percent Percent) Money {
	return amount.Mul(percent).Div(Hundred)
}

// RoundVND rounds a monetary value half-up to a whole dong.
// The dong has no minor unit in circulation; all amounts shown to the
// operator are whole numbers. Apply only at the output boundary so that
// aggregation properties (sum of months == year total) stay exact.
func RoundVND(m Money) Money {
	return m.Round(0)
}

// ClampNonNegative floors a value at zero. Loss-making months allocate
// nothing rather than a negative share.
func ClampNonNegative(m Money) Money {
	if m.IsNegative() {
		return decimal.Zero
	}
	return m
}
