package models

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ConvertAmountRaw turns a fixed-point raw amount into major currency units,
// clamped to SignificantDigits.
func ConvertAmountRaw(raw int64) decimal.Decimal {
	return Round4(decimal.New(raw, -4))
}

// AmountOf returns the record's converted amount, or false when AmountRaw is absent.
func AmountOf(r TransactionRecord) (decimal.Decimal, bool) {
	if r.AmountRaw == nil {
		return decimal.Zero, false
	}
	return ConvertAmountRaw(*r.AmountRaw), true
}

// Round4 rounds to 4 significant digits, half away from zero. Ties are exact
// decimal ties: 1.0005 rounds to 1.001, while rounding the float64 nearest to
// 1.0005 would give 1.000 because that double lies just below the tie.
func Round4(d decimal.Decimal) decimal.Decimal {
	return RoundSignificant(d, SignificantDigits)
}

// RoundSignificant rounds d to the given number of significant digits
// (not decimal places): 1234.5 -> 1235, 0.012345 -> 0.01235, 98765 -> 98770.
func RoundSignificant(d decimal.Decimal, digits int32) decimal.Decimal {
	if d.IsZero() || digits <= 0 {
		return d
	}
	return d.Round(digits - 1 - magnitude(d))
}

// magnitude is the power of ten of d's leading digit.
func magnitude(d decimal.Decimal) int32 {
	coefficient := new(big.Int).Abs(d.Coefficient())
	return int32(len(coefficient.String())) + d.Exponent() - 1
}
