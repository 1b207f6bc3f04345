package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/SscSPs/money_chat/internal/models"
)

// ToModelLexicon encodes every list of a lexicon as JSON.
func ToModelLexicon(userID string, d domain.Lexicon) (models.Lexicon, error) {
	m := models.Lexicon{UserID: userID}
	var err error
	if m.ExpenseCategories, err = encodeList(d.ExpenseCategories); err != nil {
		return models.Lexicon{}, err
	}
	if m.IncomeCategories, err = encodeList(d.IncomeCategories); err != nil {
		return models.Lexicon{}, err
	}
	if m.PaymentMethods, err = encodeList(d.PaymentMethods); err != nil {
		return models.Lexicon{}, err
	}
	if m.LearnedPatterns, err = EncodeLearnedPatterns(d.LearnedPatterns); err != nil {
		return models.Lexicon{}, err
	}
	return m, nil
}

// ToDomainLexicon decodes a stored lexicon.
func ToDomainLexicon(m models.Lexicon) (domain.Lexicon, error) {
	var d domain.Lexicon
	for _, field := range []struct {
		raw    []byte
		target any
	}{
		{m.ExpenseCategories, &d.ExpenseCategories},
		{m.IncomeCategories, &d.IncomeCategories},
		{m.PaymentMethods, &d.PaymentMethods},
		{m.LearnedPatterns, &d.LearnedPatterns},
	} {
		if len(field.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(field.raw, field.target); err != nil {
			return domain.Lexicon{}, fmt.Errorf("failed to decode lexicon for user %s: %w", m.UserID, err)
		}
	}
	return d, nil
}

// EncodeLearnedPatterns encodes a pattern table; nil is stored as an empty array.
func EncodeLearnedPatterns(patterns []domain.LearnedPattern) ([]byte, error) {
	if patterns == nil {
		patterns = []domain.LearnedPattern{}
	}
	raw, err := json.Marshal(patterns)
	if err != nil {
		return nil, fmt.Errorf("failed to encode learned patterns: %w", err)
	}
	return raw, nil
}

func encodeList(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lexicon list: %w", err)
	}
	return raw, nil
}
