package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/money_chat/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of money for a transaction.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction represents a single captured money movement.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // Positive value, base currency unit
	Date          time.Time       `json:"date"`   // Local calendar date at midnight
	Category      string          `json:"category"`
	Type          TransactionType `json:"type"`
	PaymentMethod string          `json:"paymentMethod"`
	Person        string          `json:"person,omitempty"` // Counterparty for transfers
	AuditFields
}

// Validate checks the invariants a transaction must hold before it is persisted.
func (t Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: transaction type '%s' is not valid", apperrors.ErrValidation, t.Type)
	}
	if strings.TrimSpace(t.PaymentMethod) == "" {
		return fmt.Errorf("%w: payment method is required", apperrors.ErrValidation)
	}
	return nil
}

// SignedAmount returns the amount with the sign it contributes to a running balance.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// PendingTransaction is a transaction missing only its payment method,
// held in conversation state between turns. TransactionID is fixed when the
// pending transaction is created so that completing it twice yields the same ID.
type PendingTransaction struct {
	TransactionID string          `json:"transactionID,omitempty"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Type          TransactionType `json:"type"`
	Person        string          `json:"person,omitempty"`
}

// Complete merges the resolved payment method into the pending transaction.
func (p PendingTransaction) Complete(transactionID, paymentMethod string, date time.Time) Transaction {
	return Transaction{
		TransactionID: transactionID,
		Description:   p.Description,
		Amount:        p.Amount,
		Date:          date,
		Category:      p.Category,
		Type:          p.Type,
		PaymentMethod: paymentMethod,
		Person:        p.Person,
	}
}
