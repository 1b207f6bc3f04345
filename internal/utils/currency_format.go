package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// FormatPesos renders an amount the way it is written in Argentina:
// "." groups thousands and "," separates cents, which are omitted when zero.
// Example: 1500 returns "$1.500", 1234.5 returns "$1.234,50"
func FormatPesos(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if fracPart == "00" {
		return sign + "$" + b.String()
	}
	return sign + "$" + b.String() + "," + fracPart
}
