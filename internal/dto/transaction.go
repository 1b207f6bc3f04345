package dto

import (
	"time"

	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/SscSPs/money_chat/internal/utils"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines data returned for a captured transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string"`
	FormattedAmount string          `json:"formattedAmount"` // e.g. "$2.000"
	Date            string          `json:"date"`            // YYYY-MM-DD
	Category        string          `json:"category"`
	Type            string          `json:"type"`
	PaymentMethod   string          `json:"paymentMethod"`
	Person          string          `json:"person,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts domain.Transaction to DTO.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Description:     t.Description,
		Amount:          t.Amount,
		FormattedAmount: utils.FormatPesos(t.Amount),
		Date:            t.Date.Format(time.DateOnly),
		Category:        t.Category,
		Type:            string(t.Type),
		PaymentMethod:   t.PaymentMethod,
		Person:          t.Person,
		CreatedAt:       t.CreatedAt,
	}
}

// PendingTransactionResponse is a transaction waiting for its payment method.
type PendingTransactionResponse struct {
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string"`
	FormattedAmount string          `json:"formattedAmount"`
	Category        string          `json:"category"`
	Type            string          `json:"type"`
	Person          string          `json:"person,omitempty"`
}

// ToPendingTransactionResponse converts domain.PendingTransaction to DTO.
func ToPendingTransactionResponse(p domain.PendingTransaction) PendingTransactionResponse {
	return PendingTransactionResponse{
		Description:     p.Description,
		Amount:          p.Amount,
		FormattedAmount: utils.FormatPesos(p.Amount),
		Category:        p.Category,
		Type:            string(p.Type),
		Person:          p.Person,
	}
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a slice of domain.Transaction to DTO.
func ToListTransactionsResponse(ts []domain.Transaction) ListTransactionsResponse {
	list := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		list[i] = ToTransactionResponse(t)
	}
	return ListTransactionsResponse{Transactions: list}
}

// BalanceResponse reports the running balance of incomes minus expenses.
type BalanceResponse struct {
	Balance          decimal.Decimal `json:"balance" swaggertype:"string"`
	FormattedBalance string          `json:"formattedBalance"`
}

// ToBalanceResponse converts a balance to DTO.
func ToBalanceResponse(balance decimal.Decimal) BalanceResponse {
	return BalanceResponse{Balance: balance, FormattedBalance: utils.FormatPesos(balance)}
}
