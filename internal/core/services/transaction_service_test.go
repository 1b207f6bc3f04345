package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/SscSPs/money_chat/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionService_ListTransactions(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		limit         int
		offset        int
		expectedLimit int
		expectedOff   int
	}{
		{name: "defaults", limit: 0, offset: 0, expectedLimit: 20, expectedOff: 0},
		{name: "clamps limit", limit: 500, offset: 10, expectedLimit: 100, expectedOff: 10},
		{name: "negative offset", limit: 5, offset: -3, expectedLimit: 5, expectedOff: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockTransactionRepository)
			repo.On("ListTransactions", ctx, "u1", tc.expectedLimit, tc.expectedOff).Return(nil, nil).Once()
			svc := services.NewTransactionService(repo)

			txns, err := svc.ListTransactions(ctx, "u1", tc.limit, tc.offset)

			require.NoError(t, err)
			assert.NotNil(t, txns)
			assert.Empty(t, txns)
			repo.AssertExpectations(t)
		})
	}
}

func TestTransactionService_ListTransactions_Error(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTransactionRepository)
	repo.On("ListTransactions", ctx, "u1", 20, 0).Return(nil, assert.AnError).Once()

	_, err := services.NewTransactionService(repo).ListTransactions(ctx, "u1", 0, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestTransactionService_GetBalance(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTransactionRepository)
	repo.On("GetBalance", ctx, "u1").Return(decimal.NewFromInt(-1500), nil).Once()
	repo.On("ListTransactions", ctx, "u2", 20, 0).Return([]domain.Transaction{{TransactionID: "t1"}}, nil).Once()
	svc := services.NewTransactionService(repo)

	balance, err := svc.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(-1500)))

	txns, err := svc.ListTransactions(ctx, "u2", 0, 0)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
	repo.AssertExpectations(t)
}
