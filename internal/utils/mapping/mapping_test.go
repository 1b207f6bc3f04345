package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/SscSPs/money_chat/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionMapping_PersonIsNullable(t *testing.T) {
	txn := domain.Transaction{
		TransactionID: "t1",
		Amount:        decimal.NewFromInt(500),
		Date:          time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		Type:          domain.Expense,
		PaymentMethod: "Efectivo",
	}

	row := ToModelTransaction("u1", txn)
	assert.Nil(t, row.Person)
	assert.Equal(t, "u1", row.UserID)
	assert.Equal(t, "expense", row.Type)

	txn.Person = "Juan"
	row = ToModelTransaction("u1", txn)
	require.NotNil(t, row.Person)
	assert.Equal(t, txn, ToDomainTransaction(row))
}

func TestConversationMapping(t *testing.T) {
	idle, err := ToModelConversationState("u1", domain.ConversationState{})
	require.NoError(t, err)
	assert.Equal(t, "idle", idle.Stage)
	assert.Nil(t, idle.Pending)

	pending := domain.PendingTransaction{Description: "Gasto en Comida", Amount: decimal.NewFromInt(2000), Category: "Comida", Type: domain.Expense}
	row, err := ToModelConversationState("u1", domain.AwaitingPaymentMethod(pending))
	require.NoError(t, err)

	back, err := ToDomainConversationState(row)
	require.NoError(t, err)
	require.True(t, back.IsAwaiting())
	assert.True(t, back.Pending.Amount.Equal(pending.Amount))
	assert.Equal(t, pending.Category, back.Pending.Category)
}

func TestConversationMapping_CorruptPending(t *testing.T) {
	_, err := ToDomainConversationState(models.ConversationState{UserID: "u1", Stage: "awaiting_payment_method", Pending: []byte("{")})
	assert.Error(t, err)
}

func TestLexiconMapping_EmptyListsEncodeAsArrays(t *testing.T) {
	row, err := ToModelLexicon("u1", domain.Lexicon{})
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(row.LearnedPatterns))
	assert.JSONEq(t, "[]", string(row.PaymentMethods))
}

func TestLexiconMapping_MultiplierSurvives(t *testing.T) {
	m := decimal.NewFromInt(1_000_000)
	lexicon := domain.DefaultLexicon()
	lexicon.LearnedPatterns = []domain.LearnedPattern{{Phrase: "palo", Type: domain.Expense, Multiplier: &m, Count: 3}}

	row, err := ToModelLexicon("u1", lexicon)
	require.NoError(t, err)
	back, err := ToDomainLexicon(row)
	require.NoError(t, err)

	assert.Equal(t, lexicon.PaymentMethods, back.PaymentMethods)
	require.Len(t, back.LearnedPatterns, 1)
	require.NotNil(t, back.LearnedPatterns[0].Multiplier)
	assert.True(t, back.LearnedPatterns[0].Multiplier.Equal(m))
	assert.Equal(t, 3, back.LearnedPatterns[0].Count)
}
