package interpreter

import (
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/money_chat/internal/core/domain"
)

// buildDescription keeps the first three meaningful words of the utterance,
// falling back to a label derived from the category.
func buildDescription(text string, txType domain.TransactionType, category string) string {
	words := make([]string, 0, 3)
	for _, tok := range strings.Fields(text) {
		if pureNumberPattern.MatchString(tok) || amountUnitPattern.MatchString(tok) {
			continue
		}
		if utf8.RuneCountInString(tok) <= 3 {
			continue
		}
		if descriptionStopwords[strings.ToLower(tok)] {
			continue
		}
		words = append(words, tok)
		if len(words) == 3 {
			break
		}
	}

	if len(words) >= 2 {
		return strings.Join(words, " ")
	}
	if txType == domain.Income {
		return "Ingreso - " + category
	}
	return "Gasto en " + category
}

func transferDescription(txType domain.TransactionType, person string) string {
	switch {
	case txType == domain.Income && person != "":
		return "Transferencia de " + person
	case txType == domain.Income:
		return "Transferencia recibida"
	case person != "":
		return "Transferencia a " + person
	default:
		return "Transferencia enviada"
	}
}
