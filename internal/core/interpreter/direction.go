package interpreter

import (
	"strings"

	"github.com/SscSPs/money_chat/internal/core/domain"
)

// direction is the outcome of the transfer/income classification of an utterance.
type direction struct {
	txType     domain.TransactionType
	isTransfer bool
	rule       string
	person     string
}

// detectDirection applies transferRules, then the income keyword set,
// and otherwise treats the utterance as an expense.
func detectDirection(text, lower string) direction {
	for _, rule := range transferRules {
		if rule.pattern.MatchString(text) {
			return direction{
				txType:     rule.txType,
				isTransfer: true,
				rule:       rule.name,
				person:     extractCounterparty(text),
			}
		}
	}

	if containsAny(lower, incomeKeywords) {
		return direction{txType: domain.Income}
	}
	return direction{txType: domain.Expense}
}

// extractCounterparty returns the first name captured by counterpartyRules, or "".
func extractCounterparty(text string) string {
	for _, rule := range counterpartyRules {
		m := rule.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if name := strings.TrimSpace(m[1]); name != "" {
			return name
		}
	}
	return ""
}

func isSalary(lower string) bool {
	return containsAny(lower, salaryKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
