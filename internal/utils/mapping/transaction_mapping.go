package mapping

import (
	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/SscSPs/money_chat/internal/models"
)

// ToModelTransaction converts a domain Transaction owned by userID to a row.
func ToModelTransaction(userID string, d domain.Transaction) models.Transaction {
	var person *string
	if d.Person != "" {
		p := d.Person
		person = &p
	}
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        userID,
		Description:   d.Description,
		Amount:        d.Amount,
		Date:          d.Date,
		Category:      d.Category,
		Type:          string(d.Type),
		PaymentMethod: d.PaymentMethod,
		Person:        person,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a row to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	t := domain.Transaction{
		TransactionID: m.TransactionID,
		Description:   m.Description,
		Amount:        m.Amount,
		Date:          m.Date,
		Category:      m.Category,
		Type:          domain.TransactionType(m.Type),
		PaymentMethod: m.PaymentMethod,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.Person != nil {
		t.Person = *m.Person
	}
	return t
}

// ToDomainTransactions converts a slice of rows.
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
