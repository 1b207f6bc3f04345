package memory

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/money_chat/internal/apperrors"
	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func txn(id string, txType domain.TransactionType, amount int64, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Amount:        decimal.NewFromInt(amount),
		Date:          date,
		Type:          txType,
		PaymentMethod: "Efectivo",
	}
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider()
	repo := repos.TransactionRepo

	require.NoError(t, repo.SaveTransaction(ctx, "u1", txn("a", domain.Income, 10000, day(1))))
	require.NoError(t, repo.SaveTransaction(ctx, "u1", txn("b", domain.Expense, 2500, day(3))))
	require.NoError(t, repo.SaveTransaction(ctx, "u1", txn("c", domain.Expense, 500, day(3))))
	require.NoError(t, repo.SaveTransaction(ctx, "u2", txn("d", domain.Expense, 1, day(2))))

	t.Run("duplicate ID", func(t *testing.T) {
		err := repo.SaveTransaction(ctx, "u1", txn("a", domain.Income, 1, day(1)))
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	})

	t.Run("balance", func(t *testing.T) {
		balance, err := repo.GetBalance(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(7000)), balance.String())

		empty, err := repo.GetBalance(ctx, "nobody")
		require.NoError(t, err)
		assert.True(t, empty.IsZero())
	})

	t.Run("newest first with paging", func(t *testing.T) {
		all, err := repo.ListTransactions(ctx, "u1", 10, 0)
		require.NoError(t, err)
		ids := make([]string, len(all))
		for i, tx := range all {
			ids[i] = tx.TransactionID
		}
		assert.Equal(t, []string{"c", "b", "a"}, ids)

		page, err := repo.ListTransactions(ctx, "u1", 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "b", page[0].TransactionID)

		past, err := repo.ListTransactions(ctx, "u1", 10, 10)
		require.NoError(t, err)
		assert.Empty(t, past)
	})
}

func TestConversationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRepositoryProvider().ConversationRepo

	state, err := repo.GetConversationState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.Idle(), state)

	pending := domain.PendingTransaction{Amount: decimal.NewFromInt(100), Category: "Comida", Type: domain.Expense}
	require.NoError(t, repo.SaveConversationState(ctx, "u1", domain.AwaitingPaymentMethod(pending)))

	stored, err := repo.GetConversationState(ctx, "u1")
	require.NoError(t, err)
	require.True(t, stored.IsAwaiting())

	stored.Pending.Category = "mutated"
	again, err := repo.GetConversationState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Comida", again.Pending.Category)
}

func TestLexiconRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRepositoryProvider().LexiconRepo

	_, found, err := repo.GetLexicon(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SaveLexicon(ctx, "u1", domain.DefaultLexicon()))

	m := decimal.NewFromInt(1000)
	require.NoError(t, repo.SaveLearnedPatterns(ctx, "u1", []domain.LearnedPattern{{Phrase: "luca", Type: domain.Expense, Multiplier: &m, Count: 2}}))

	lexicon, found, err := repo.GetLexicon(ctx, "u1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.DefaultLexicon().PaymentMethods, lexicon.PaymentMethods)
	require.Len(t, lexicon.LearnedPatterns, 1)
	assert.Equal(t, 2, lexicon.LearnedPatterns[0].Count)

	lexicon.PaymentMethods[0] = "mutated"
	*lexicon.LearnedPatterns[0].Multiplier = decimal.NewFromInt(1)
	fresh, _, err := repo.GetLexicon(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Efectivo", fresh.PaymentMethods[0])
	assert.True(t, fresh.LearnedPatterns[0].Multiplier.Equal(m))
}
