// Package currencyutils renders monetary amounts for display.
package currencyutils

import (
	"fmt"
	"strconv"
	"strings"

	"fjacquet/spend-summary/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency sign placed in front of cash amounts.
const DefaultSymbol = "$"

// SummaryLineSeparator sits between the cash amount and the key in a summary line.
const SummaryLineSeparator = "..."

var half = decimal.NewFromFloat(0.5)

// FormatCash renders a whole amount with a leading "$" and a comma before
// every group of three digits: 1234567 -> "$1,234,567", 999 -> "$999".
func FormatCash(amount int64) string {
	return FormatCashWithSymbol(DefaultSymbol, amount)
}

// FormatCashWithSymbol is FormatCash with a custom currency sign. The sign of a
// negative amount follows the currency sign: "$-1,234".
func FormatCashWithSymbol(symbol string, amount int64) string {
	return symbol + GroupThousands(strconv.FormatInt(amount, 10))
}

// GroupThousands inserts a comma before every run of three digits that is
// followed by at least one more digit, scanning from the right.
func GroupThousands(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.Grow(len(sign) + len(digits) + len(digits)/3)
	b.WriteString(sign)

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// RoundToWhole rounds half toward positive infinity: 2.5 -> 3, -2.5 -> -2.
func RoundToWhole(amount decimal.Decimal) int64 {
	return amount.Add(half).Floor().IntPart()
}

// FormatSummaryLine renders one ranked entry as "$35...Coffee".
func FormatSummaryLine(symbol string, entry models.RankedEntry) string {
	return fmt.Sprintf("%s%s%s",
		FormatCashWithSymbol(symbol, RoundToWhole(entry.Total)),
		SummaryLineSeparator,
		entry.Key)
}
