package repositories

import (
	"context"

	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for captured transactions
type TransactionReader interface {
	// ListTransactions retrieves a user's transactions, newest first.
	ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error)

	// GetBalance returns the user's running balance (incomes minus expenses).
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
}

// TransactionWriter defines write operations for captured transactions
type TransactionWriter interface {
	// SaveTransaction appends a transaction and updates the running balance atomically.
	SaveTransaction(ctx context.Context, userID string, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
