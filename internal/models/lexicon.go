package models

// Lexicon is a row of the lexicons table. Every list is stored as a JSONB document.
type Lexicon struct {
	UserID            string
	ExpenseCategories []byte
	IncomeCategories  []byte
	PaymentMethods    []byte
	LearnedPatterns   []byte
}
