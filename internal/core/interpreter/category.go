package interpreter

import (
	"strings"

	"github.com/SscSPs/money_chat/internal/core/domain"
)

// resolveCategory picks the category for an utterance. It may return ""
// when the lexicon has no categories of the required kind.
func resolveCategory(lower string, dir direction, salary bool, lexicon domain.Lexicon) string {
	if dir.isTransfer {
		return transferCategory
	}
	if dir.txType == domain.Income {
		return resolveIncomeCategory(lower, salary, lexicon.IncomeCategories)
	}
	return resolveExpenseCategory(lower, lexicon.ExpenseCategories)
}

func resolveIncomeCategory(lower string, salary bool, categories []string) string {
	if salary {
		return salaryCategory
	}
	for _, c := range categories {
		if c != "" && strings.Contains(lower, strings.ToLower(c)) {
			return c
		}
	}
	if len(categories) > 0 {
		return categories[0]
	}
	return ""
}

func resolveExpenseCategory(lower string, categories []string) string {
	for _, rule := range expenseCategoryRules {
		if containsAny(lower, rule.keywords) {
			return rule.category
		}
	}
	for _, c := range categories {
		if c == fallbackExpense {
			return c
		}
	}
	if len(categories) > 0 {
		return categories[len(categories)-1]
	}
	return ""
}
