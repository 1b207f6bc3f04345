package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_chat/internal/apperrors"
	"github.com/SscSPs/money_chat/internal/core/domain"
	portsrepo "github.com/SscSPs/money_chat/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type transactionRepository struct {
	store *store
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

func (r *transactionRepository) SaveTransaction(_ context.Context, userID string, txn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.transactionID[txn.TransactionID]; exists {
		return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
	}
	r.store.transactionID[txn.TransactionID] = struct{}{}
	r.store.transactions[userID] = append(r.store.transactions[userID], txn)
	r.store.balances[userID] = r.store.balances[userID].Add(txn.SignedAmount())
	return nil
}

// ListTransactions returns newest first, matching the SQL ordering of date then insertion.
func (r *transactionRepository) ListTransactions(_ context.Context, userID string, limit int, offset int) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := r.store.transactions[userID]
	ordered := make([]domain.Transaction, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		ordered = append(ordered, all[i])
	}
	// Stable insertion sort by date, newest first; insertion order already breaks ties.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j].Date.After(ordered[j-1].Date); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	if offset >= len(ordered) {
		return []domain.Transaction{}, nil
	}
	end := len(ordered)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return ordered[offset:end], nil
}

func (r *transactionRepository) GetBalance(_ context.Context, userID string) (decimal.Decimal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.balances[userID], nil
}
