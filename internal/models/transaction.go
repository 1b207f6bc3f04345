package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // Owner (Not Null)
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // Positive value
	Date          time.Time       `json:"date"`   // DATE column
	Category      string          `json:"category"`
	Type          string          `json:"type"` // income or expense
	PaymentMethod string          `json:"paymentMethod"`
	Person        *string         `json:"person"` // Nullable
	AuditFields
}
