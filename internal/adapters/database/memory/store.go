// Package memory provides process-local repositories used when no database
// is configured. Every read returns a copy so callers cannot mutate stored data.
package memory

import (
	"sync"

	"github.com/SscSPs/money_chat/internal/core/domain"
	portsrepo "github.com/SscSPs/money_chat/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type store struct {
	mu            sync.RWMutex
	transactions  map[string][]domain.Transaction // user ID -> oldest first
	transactionID map[string]struct{}
	balances      map[string]decimal.Decimal
	conversations map[string]domain.ConversationState
	lexicons      map[string]domain.Lexicon
}

func newStore() *store {
	return &store{
		transactions:  make(map[string][]domain.Transaction),
		transactionID: make(map[string]struct{}),
		balances:      make(map[string]decimal.Decimal),
		conversations: make(map[string]domain.ConversationState),
		lexicons:      make(map[string]domain.Lexicon),
	}
}

// NewRepositoryProvider returns repositories backed by one shared in-memory store.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	s := newStore()
	return portsrepo.RepositoryProvider{
		TransactionRepo:  &transactionRepository{store: s},
		ConversationRepo: &conversationRepository{store: s},
		LexiconRepo:      &lexiconRepository{store: s},
	}
}

func copyPending(p *domain.PendingTransaction) *domain.PendingTransaction {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func copyPatterns(patterns []domain.LearnedPattern) []domain.LearnedPattern {
	if patterns == nil {
		return nil
	}
	out := make([]domain.LearnedPattern, len(patterns))
	for i, p := range patterns {
		if p.Multiplier != nil {
			m := *p.Multiplier
			p.Multiplier = &m
		}
		out[i] = p
	}
	return out
}

func copyLexicon(l domain.Lexicon) domain.Lexicon {
	return domain.Lexicon{
		ExpenseCategories: append([]string(nil), l.ExpenseCategories...),
		IncomeCategories:  append([]string(nil), l.IncomeCategories...),
		PaymentMethods:    append([]string(nil), l.PaymentMethods...),
		LearnedPatterns:   copyPatterns(l.LearnedPatterns),
	}
}
