package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_chat/internal/core/domain"
	portsrepo "github.com/SscSPs/money_chat/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_chat/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const (
	defaultTransactionLimit = 20
	maxTransactionLimit     = 100
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionReader) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: transactionRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}
	if offset < 0 {
		offset = 0
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, userID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	// Return empty slice if no transactions found, not nil
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *transactionService) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	balance, err := s.transactionRepo.GetBalance(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get balance", slog.String("user_id", userID))
		return decimal.Zero, fmt.Errorf("failed to get balance in service: %w", err)
	}
	return balance, nil
}
