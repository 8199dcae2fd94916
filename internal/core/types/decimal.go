// Package types provides shared value types for money and quantities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money is a monetary amount in rupees with full decimal precision.
// decimal.Decimal avoids the drift of float64 addition over many records.
type Money = decimal.Decimal

// Kilograms is a weight quantity. Same representation as Money: exact
// decimal arithmetic, two display decimals.
type Kilograms = decimal.Decimal

// Zero returns the zero decimal value.
func Zero() decimal.Decimal {
	return decimal.Zero
}

// Dec creates a decimal from a string, panicking on error. Constants and
// tests only.
func Dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DecFromFloat converts a float64. Prefer string construction where the
// value originates from user input.
func DecFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
