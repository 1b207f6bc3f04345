package interpreter_test

import (
	"testing"

	"github.com/SscSPs/money_chat/internal/apperrors"
	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/SscSPs/money_chat/internal/core/interpreter"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countPhrase(table []domain.LearnedPattern, phrase string) int {
	n := 0
	for _, p := range table {
		if p.Phrase == phrase {
			n++
		}
	}
	return n
}

func TestTeach_MergesExistingPhrase(t *testing.T) {
	income := domain.Income
	multiplier := decimal.NewFromInt(1000)
	attrs := domain.PatternAttributes{Type: &income, Multiplier: &multiplier}

	table := interpreter.DefaultLearnedPatterns()
	idx := interpreter.FindPattern(table, "lucas")
	require.GreaterOrEqual(t, idx, 0)
	startCount := table[idx].Count

	once, err := interpreter.Teach(table, "lucas", attrs)
	require.NoError(t, err)
	twice, err := interpreter.Teach(once, "LUCAS", attrs)
	require.NoError(t, err)

	assert.Len(t, twice, len(table))
	assert.Equal(t, 1, countPhrase(twice, "lucas"))
	assert.Equal(t, startCount+1, once[idx].Count)
	assert.Equal(t, startCount+2, twice[idx].Count)
	assert.Equal(t, domain.Income, twice[idx].Type)
	assert.True(t, multiplier.Equal(*twice[idx].Multiplier))
	assert.Equal(t, startCount, table[idx].Count, "input table must not be modified")
	assert.Equal(t, domain.Expense, table[idx].Type, "input table must not be modified")
}

func TestTeach_InsertsNewPhrase(t *testing.T) {
	category := "Comida"

	table, err := interpreter.Teach(nil, "  birra ", domain.PatternAttributes{Category: &category})
	require.NoError(t, err)
	require.Len(t, table, 1)

	assert.Equal(t, "birra", table[0].Phrase)
	assert.Equal(t, domain.Expense, table[0].Type)
	assert.Equal(t, "Comida", table[0].Category)
	assert.Equal(t, 1, table[0].Count)
	assert.Nil(t, table[0].Multiplier)
}

func TestTeach_ShallowMergeKeepsUnsetFields(t *testing.T) {
	category := "Salud"
	table, err := interpreter.Teach(nil, "farmacity", domain.PatternAttributes{Category: &category})
	require.NoError(t, err)

	method := "Tarjeta de Débito"
	table, err = interpreter.Teach(table, "Farmacity", domain.PatternAttributes{PaymentMethod: &method})
	require.NoError(t, err)

	require.Len(t, table, 1)
	assert.Equal(t, "Salud", table[0].Category)
	assert.Equal(t, "Tarjeta de Débito", table[0].PaymentMethod)
	assert.Equal(t, 2, table[0].Count)
}

func TestTeach_RejectsInvalidInput(t *testing.T) {
	_, err := interpreter.Teach(nil, "   ", domain.PatternAttributes{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	bogus := domain.TransactionType("refund")
	_, err = interpreter.Teach(nil, "devolución", domain.PatternAttributes{Type: &bogus})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDefaultLearnedPatterns_UniquePhrases(t *testing.T) {
	table := interpreter.DefaultLearnedPatterns()
	seen := map[string]bool{}
	for _, p := range table {
		assert.False(t, seen[p.Phrase], "duplicate phrase %s", p.Phrase)
		seen[p.Phrase] = true
	}
	assert.True(t, seen["palo"])
	assert.True(t, seen["luca"])
}

func TestMatchPhrases(t *testing.T) {
	table := interpreter.DefaultLearnedPatterns()

	assert.Equal(t, []string{"lucas"}, interpreter.MatchPhrases(table, "gasté 2 Lucas en el super"))
	assert.Equal(t, []string{"palo", "sueldo"}, interpreter.MatchPhrases(table, "cobré el sueldo, 1 palo"))
	assert.Empty(t, interpreter.MatchPhrases(table, "hola como estas"))

	multi, err := interpreter.Teach(nil, "mercado pago", domain.PatternAttributes{})
	require.NoError(t, err)
	assert.Equal(t, []string{"mercado pago"}, interpreter.MatchPhrases(multi, "pagué con Mercado Pago"))
	assert.Empty(t, interpreter.MatchPhrases(multi, "fui al mercado"))
}
