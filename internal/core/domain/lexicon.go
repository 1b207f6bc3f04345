package domain

import "github.com/shopspring/decimal"

// LearnedPattern associates a trigger phrase with the transaction attributes it implies.
type LearnedPattern struct {
	Phrase        string           `json:"phrase"` // Case-insensitive unique key
	Type          TransactionType  `json:"type"`
	Category      string           `json:"category,omitempty"`
	PaymentMethod string           `json:"paymentMethod,omitempty"`
	Multiplier    *decimal.Decimal `json:"multiplier,omitempty"` // Slang magnitude, e.g. palo -> 1000000
	Context       string           `json:"context,omitempty"`
	Count         int              `json:"count"`
}

// PatternAttributes are the optional fields merged into a LearnedPattern when it is taught.
// Nil fields leave the existing value untouched.
type PatternAttributes struct {
	Type          *TransactionType `json:"type,omitempty"`
	Category      *string          `json:"category,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	Multiplier    *decimal.Decimal `json:"multiplier,omitempty"`
	Context       *string          `json:"context,omitempty"`
}

// Lexicon is the per-user vocabulary used to interpret an utterance.
// It is treated as an immutable snapshot for the duration of one call.
type Lexicon struct {
	ExpenseCategories []string         `json:"expenseCategories"`
	IncomeCategories  []string         `json:"incomeCategories"`
	PaymentMethods    []string         `json:"paymentMethods"`
	LearnedPatterns   []LearnedPattern `json:"learnedPatterns"`
}

// DefaultLexicon returns the categories and payment methods a new user starts with.
// Learned patterns are seeded separately.
func DefaultLexicon() Lexicon {
	return Lexicon{
		ExpenseCategories: []string{"Comida", "Transporte", "Servicios", "Entretenimiento", "Salud", "Otros"},
		IncomeCategories:  []string{"Salario", "Freelance", "Inversiones", "Transferencia", "Otros"},
		PaymentMethods:    []string{"Efectivo", "Tarjeta de Crédito", "Tarjeta de Débito", "Transferencia"},
	}
}
