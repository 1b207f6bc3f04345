package interpreter

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/SscSPs/money_chat/internal/apperrors"
	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultLearnedPatterns returns the seed pattern table for a new user.
func DefaultLearnedPatterns() []domain.LearnedPattern {
	million := decimal.NewFromInt(1_000_000)
	thousand := decimal.NewFromInt(1_000)
	return []domain.LearnedPattern{
		{Phrase: "palo", Type: domain.Expense, Multiplier: &million},
		{Phrase: "palos", Type: domain.Expense, Multiplier: &million},
		{Phrase: "luca", Type: domain.Expense, Multiplier: &thousand},
		{Phrase: "lucas", Type: domain.Expense, Multiplier: &thousand},
		{Phrase: "sueldo", Type: domain.Income, Category: salaryCategory, Context: "salario"},
		{Phrase: "transferencia", Type: domain.Expense, Category: transferCategory, PaymentMethod: transferPaymentMethod},
	}
}

// FindPattern returns the index of phrase in table (case-insensitive), or -1.
func FindPattern(table []domain.LearnedPattern, phrase string) int {
	phrase = strings.TrimSpace(phrase)
	for i := range table {
		if strings.EqualFold(table[i].Phrase, phrase) {
			return i
		}
	}
	return -1
}

// Teach records phrase in a copy of table. An existing entry has attrs merged
// into it and its count incremented; otherwise a new entry with count 1 is
// appended, defaulting to an expense. The input table is not modified.
//
// The attributes are stored for the caller; they do not change how later
// utterances are parsed. Only the phrase itself is matched, for reinforcement.
func Teach(table []domain.LearnedPattern, phrase string, attrs domain.PatternAttributes) ([]domain.LearnedPattern, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return nil, fmt.Errorf("%w: phrase is required", apperrors.ErrValidation)
	}
	if attrs.Type != nil && !attrs.Type.IsValid() {
		return nil, fmt.Errorf("%w: transaction type '%s' is not valid", apperrors.ErrValidation, *attrs.Type)
	}

	out := make([]domain.LearnedPattern, len(table), len(table)+1)
	copy(out, table)

	if i := FindPattern(out, phrase); i >= 0 {
		mergeAttributes(&out[i], attrs)
		out[i].Count++
		return out, nil
	}

	p := domain.LearnedPattern{Phrase: phrase, Type: domain.Expense, Count: 1}
	mergeAttributes(&p, attrs)
	return append(out, p), nil
}

func mergeAttributes(p *domain.LearnedPattern, attrs domain.PatternAttributes) {
	if attrs.Type != nil {
		p.Type = *attrs.Type
	}
	if attrs.Category != nil {
		p.Category = *attrs.Category
	}
	if attrs.PaymentMethod != nil {
		p.PaymentMethod = *attrs.PaymentMethod
	}
	if attrs.Multiplier != nil {
		m := *attrs.Multiplier
		p.Multiplier = &m
	}
	if attrs.Context != nil {
		p.Context = *attrs.Context
	}
}

// MatchPhrases returns, in table order, the phrases that occur in the
// utterance as whole words (case-insensitive).
func MatchPhrases(table []domain.LearnedPattern, utterance string) []string {
	words := splitWords(utterance)
	var matched []string
	for _, p := range table {
		if containsSequence(words, splitWords(p.Phrase)) {
			matched = append(matched, p.Phrase)
		}
	}
	return matched
}

func splitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsSequence(words, seq []string) bool {
	if len(seq) == 0 || len(seq) > len(words) {
		return false
	}
	for i := 0; i+len(seq) <= len(words); i++ {
		match := true
		for j := range seq {
			if words[i+j] != seq[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
