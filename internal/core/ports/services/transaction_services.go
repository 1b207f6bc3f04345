package services

import (
	"context"

	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionSvcFacade exposes the transactions captured through the chat
type TransactionSvcFacade interface {
	// ListTransactions retrieves a page of the user's transactions, newest first.
	ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error)

	// GetBalance returns the user's running balance.
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
}
