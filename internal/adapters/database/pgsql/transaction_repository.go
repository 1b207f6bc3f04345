package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/money_chat/internal/apperrors"
	"github.com/SscSPs/money_chat/internal/core/domain"
	portsrepo "github.com/SscSPs/money_chat/internal/core/ports/repositories"
	"github.com/SscSPs/money_chat/internal/models"
	"github.com/SscSPs/money_chat/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	insertTransactionQuery = `
		INSERT INTO transactions (transaction_id, user_id, description, amount, date, category, type, payment_method, person,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	upsertBalanceQuery = `
		INSERT INTO balances (user_id, balance, last_updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			balance = balances.balance + EXCLUDED.balance,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	listTransactionsQuery = `
		SELECT transaction_id, user_id, description, amount, date, category, type, payment_method, person,
			created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	getBalanceQuery = `SELECT balance FROM balances WHERE user_id = $1;`
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts the transaction and moves the user's balance in one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	row := mapping.ToModelTransaction(userID, txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	_, err = tx.Exec(ctx, insertTransactionQuery,
		row.TransactionID,
		row.UserID,
		row.Description,
		row.Amount,
		row.Date,
		row.Category,
		row.Type,
		row.PaymentMethod,
		row.Person,
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, row.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", row.TransactionID, err)
	}

	if _, err := tx.Exec(ctx, upsertBalanceQuery, userID, txn.SignedAmount(), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update balance for user %s: %w", userID, err)
	}

	return r.Commit(ctx, tx)
}

// ListTransactions retrieves a page of the user's transactions, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, listTransactionsQuery, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var t models.Transaction
		err := row.Scan(
			&t.TransactionID,
			&t.UserID,
			&t.Description,
			&t.Amount,
			&t.Date,
			&t.Category,
			&t.Type,
			&t.PaymentMethod,
			&t.Person,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
		)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions for user %s: %w", userID, err)
	}

	return mapping.ToDomainTransactions(modelTxns), nil
}

// GetBalance returns zero for users without transactions.
func (r *PgxTransactionRepository) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.Pool.QueryRow(ctx, getBalanceQuery, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get balance for user %s: %w", userID, err)
	}
	return balance, nil
}
