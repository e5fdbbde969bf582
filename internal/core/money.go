// Package core provides money parsing and handling utilities.
//
// Amounts are kept as float64 to match the REAL columns of the ledger table.
// Parsing, summing and formatting go through shopspring/decimal so that user
// input like "0.1" and totals of many entries do not pick up binary noise.
package core

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the fixed number of decimals used when amounts are printed.
const AmountPlaces = 2

// ParseAmount converts user input to a finite float64.
//
// Leading and trailing whitespace is ignored. Exponent notation ("1e3") is
// accepted; NaN, Inf, hexadecimal forms and thousands separators are not.
// Any sign is allowed.
//
// Examples:
//
//	ParseAmount("430.5") -> 430.5, nil
//	ParseAmount("-12")   -> -12, nil
//	ParseAmount("abc")   -> 0, ErrInvalidNumber
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidNumber
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	f := d.InexactFloat64()
	if !isFinite(f) {
		return 0, ErrInvalidNumber
	}
	return f, nil
}

// Difference returns budgeted - actual without float subtraction noise.
func Difference(budgeted, actual float64) float64 {
	return decimal.NewFromFloat(budgeted).Sub(decimal.NewFromFloat(actual)).InexactFloat64()
}

// SumAmounts adds amounts in decimal space.
func SumAmounts(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.InexactFloat64()
}

// FormatAmount renders an amount with AmountPlaces decimals, e.g. "69.50".
func FormatAmount(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(AmountPlaces)
}

// RoundAmount rounds to AmountPlaces decimals, half away from zero.
func RoundAmount(f float64) float64 {
	return decimal.NewFromFloat(f).Round(AmountPlaces).InexactFloat64()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
