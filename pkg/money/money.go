// Package money holds the currency helpers shared by the settlement engine.
// Amounts travel as decimal.Decimal and are persisted as integer cents.
package money

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds half away from zero to cents. For the non-negative amounts the
// engine produces this is round-half-up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FloorCents drops everything below one cent, rounding towards negative infinity.
func FloorCents(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Floor().Shift(-2)
}

// ToCents converts an amount to integer cents, rounding half-up first.
func ToCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// ToHundredths stores a percentage with two decimal places as an integer,
// e.g. 6.5 -> 650.
func ToHundredths(pct decimal.Decimal) int64 {
	return pct.Shift(2).Round(0).IntPart()
}

func FromHundredths(v int64) decimal.Decimal {
	return decimal.New(v, -2)
}

// Percent returns pct% of amount without rounding.
func Percent(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

// Parse reads a decimal string such as "100.00".
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustParse panics on malformed input; meant for constants and tests.
func MustParse(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
