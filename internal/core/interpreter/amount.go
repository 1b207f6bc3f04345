package interpreter

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	oneThousand = decimal.NewFromInt(1_000)
	oneMillion  = decimal.NewFromInt(1_000_000)
)

// amountRule extracts an amount from an utterance. ok is false when the rule
// does not apply.
type amountRule struct {
	name    string
	pattern *regexp.Regexp
	extract func(match []string) (decimal.Decimal, bool)
}

// amountRules are evaluated in order; the first rule that yields an amount wins.
var amountRules = []amountRule{
	{
		name:    "palos",
		pattern: regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*palos?\b`),
		extract: func(m []string) (decimal.Decimal, bool) {
			n, ok := parseNumber(m[1])
			if !ok {
				return decimal.Zero, false
			}
			return n.Mul(oneMillion), true
		},
	},
	{
		name:    "lucas",
		pattern: regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(lucas?\b|mil\b|k\b|pesos\b|pe\b|ars\b|\$)`),
		extract: func(m []string) (decimal.Decimal, bool) {
			n, ok := parseNumber(m[1])
			if !ok {
				return decimal.Zero, false
			}
			switch strings.ToLower(m[2]) {
			case "luca", "lucas", "k":
				return n.Mul(oneThousand), true
			}
			return n, true
		},
	},
	{
		name:    "bare_number",
		pattern: regexp.MustCompile(`(\d+(?:[.,]\d+)?)`),
		extract: func(m []string) (decimal.Decimal, bool) {
			return parseNumber(m[1])
		},
	},
}

// extractAmount returns the amount named in text, or zero when none is found.
func extractAmount(text string) decimal.Decimal {
	for _, rule := range amountRules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if amount, ok := rule.extract(m); ok {
			return amount
		}
	}
	return decimal.Zero
}

// parseNumber accepts either "." or "," as the decimal separator.
func parseNumber(s string) (decimal.Decimal, bool) {
	n, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, false
	}
	return n, true
}
