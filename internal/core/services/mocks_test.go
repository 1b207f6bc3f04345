package services_test

import (
	"context"

	"github.com/SscSPs/money_chat/internal/core/domain"
	portsrepo "github.com/SscSPs/money_chat/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ConversationRepository ---
type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) GetConversationState(ctx context.Context, userID string) (domain.ConversationState, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.ConversationState), args.Error(1)
}

func (m *MockConversationRepository) SaveConversationState(ctx context.Context, userID string, state domain.ConversationState) error {
	args := m.Called(ctx, userID, state)
	return args.Error(0)
}

var _ portsrepo.ConversationRepositoryFacade = (*MockConversationRepository)(nil)

// --- Mock LexiconRepository ---
type MockLexiconRepository struct {
	mock.Mock
}

func (m *MockLexiconRepository) GetLexicon(ctx context.Context, userID string) (domain.Lexicon, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Lexicon), args.Bool(1), args.Error(2)
}

func (m *MockLexiconRepository) SaveLexicon(ctx context.Context, userID string, lexicon domain.Lexicon) error {
	args := m.Called(ctx, userID, lexicon)
	return args.Error(0)
}

func (m *MockLexiconRepository) SaveLearnedPatterns(ctx context.Context, userID string, patterns []domain.LearnedPattern) error {
	args := m.Called(ctx, userID, patterns)
	return args.Error(0)
}

var _ portsrepo.LexiconRepositoryFacade = (*MockLexiconRepository)(nil)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	args := m.Called(ctx, userID, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock EventTracker ---
type MockEventTracker struct {
	mock.Mock
}

func (m *MockEventTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

func findPattern(table []domain.LearnedPattern, phrase string) *domain.LearnedPattern {
	for i := range table {
		if table[i].Phrase == phrase {
			return &table[i]
		}
	}
	return nil
}
