package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/money_chat/internal/apperrors"
	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/SscSPs/money_chat/internal/core/interpreter"
	portsrepo "github.com/SscSPs/money_chat/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_chat/internal/core/ports/services"
)

// EventTracker receives product analytics events.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// chatService implements the ChatSvcFacade interface
type chatService struct {
	BaseService
	interpreter      *interpreter.Interpreter
	conversationRepo portsrepo.ConversationRepositoryFacade
	lexiconRepo      portsrepo.LexiconRepositoryFacade
	transactionRepo  portsrepo.TransactionRepositoryFacade
	locks            *UserLocks
	tracker          EventTracker
}

// ChatServiceOption is a functional option for configuring the chat service
type ChatServiceOption func(*chatService)

// WithInterpreter replaces the default interpreter
func WithInterpreter(i *interpreter.Interpreter) ChatServiceOption {
	return func(s *chatService) {
		s.interpreter = i
	}
}

// WithUserLocks shares a per-user lock table with other services
func WithUserLocks(locks *UserLocks) ChatServiceOption {
	return func(s *chatService) {
		s.locks = locks
	}
}

// WithEventTracker adds an analytics sink
func WithEventTracker(tracker EventTracker) ChatServiceOption {
	return func(s *chatService) {
		s.tracker = tracker
	}
}

// NewChatService creates a new chat service with the provided options
func NewChatService(
	conversationRepo portsrepo.ConversationRepositoryFacade,
	lexiconRepo portsrepo.LexiconRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	options ...ChatServiceOption,
) portssvc.ChatSvcFacade {
	svc := &chatService{
		interpreter:      interpreter.New(),
		conversationRepo: conversationRepo,
		lexiconRepo:      lexiconRepo,
		transactionRepo:  transactionRepo,
		locks:            NewUserLocks(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure chatService implements the ChatSvcFacade interface
var _ portssvc.ChatSvcFacade = (*chatService)(nil)

func (s *chatService) ProcessMessage(ctx context.Context, userID string, utterance string) (*domain.Interpretation, error) {
	if strings.TrimSpace(utterance) == "" {
		return nil, fmt.Errorf("%w: message must not be empty", apperrors.ErrValidation)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	lexicon, err := loadLexicon(ctx, s.lexiconRepo, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load lexicon", slog.String("user_id", userID))
		return nil, err
	}

	state, err := s.conversationRepo.GetConversationState(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load conversation state", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load conversation state: %w", err)
	}

	result, next := s.interpreter.Interpret(utterance, state, lexicon)

	s.LogDebug(ctx, "Utterance interpreted",
		slog.String("user_id", userID),
		slog.String("outcome", string(result.Outcome)),
		slog.String("previous_stage", string(state.Stage)),
		slog.String("next_stage", string(next.Stage)))

	if result.Outcome == domain.OutcomeUnresolved {
		s.track(userID, result)
		return &result, nil
	}

	// The transaction is stored before the state moves on. A completed pending
	// transaction carries the ID it was given when it was first parsed, so if
	// the state save below fails, the retried answer hits ErrDuplicate here
	// and only the state is advanced.
	if result.Transaction != nil {
		txn := *result.Transaction
		txn.AuditFields.Stamp(userID, time.Now().UTC())
		if err := txn.Validate(); err != nil {
			s.LogWarn(ctx, "Interpreted transaction failed validation",
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
			return nil, err
		}
		err := s.transactionRepo.SaveTransaction(ctx, userID, txn)
		switch {
		case err == nil:
			s.LogInfo(ctx, "Transaction captured from chat",
				slog.String("user_id", userID),
				slog.String("transaction_id", txn.TransactionID),
				slog.String("type", string(txn.Type)),
				slog.String("amount", txn.Amount.String()),
				slog.String("category", txn.Category))
		case state.IsAwaiting() && errors.Is(err, apperrors.ErrDuplicate):
			s.LogWarn(ctx, "Pending transaction was already stored, advancing conversation",
				slog.String("user_id", userID),
				slog.String("transaction_id", txn.TransactionID))
		default:
			s.LogError(ctx, err, "Failed to save transaction",
				slog.String("user_id", userID),
				slog.String("transaction_id", txn.TransactionID))
			return nil, fmt.Errorf("failed to save transaction: %w", err)
		}
		result.Transaction = &txn
	}

	if err := s.conversationRepo.SaveConversationState(ctx, userID, next); err != nil {
		s.LogError(ctx, err, "Failed to save conversation state", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save conversation state: %w", err)
	}

	s.reinforcePatterns(ctx, userID, lexicon.LearnedPatterns, result.MatchedPhrases)
	s.track(userID, result)

	return &result, nil
}

// reinforcePatterns bumps the count of every learned phrase the utterance used.
// Failures are logged and do not fail the turn.
func (s *chatService) reinforcePatterns(ctx context.Context, userID string, table []domain.LearnedPattern, phrases []string) {
	if len(phrases) == 0 {
		return
	}

	var err error
	for _, phrase := range phrases {
		table, err = interpreter.Teach(table, phrase, domain.PatternAttributes{})
		if err != nil {
			s.LogWarn(ctx, "Skipping pattern reinforcement", slog.String("phrase", phrase), slog.String("error", err.Error()))
			return
		}
	}

	if err := s.lexiconRepo.SaveLearnedPatterns(ctx, userID, table); err != nil {
		s.LogError(ctx, err, "Failed to save reinforced patterns", slog.String("user_id", userID))
	}
}

func (s *chatService) track(userID string, result domain.Interpretation) {
	if s.tracker == nil {
		return
	}
	props := map[string]any{"outcome": string(result.Outcome)}
	if result.Transaction != nil {
		props["type"] = string(result.Transaction.Type)
		props["category"] = result.Transaction.Category
	}
	s.tracker.Enqueue(userID, "chat_message_interpreted", props)
}

func (s *chatService) GetConversation(ctx context.Context, userID string) (domain.ConversationState, error) {
	state, err := s.conversationRepo.GetConversationState(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load conversation state", slog.String("user_id", userID))
		return domain.ConversationState{}, fmt.Errorf("failed to get conversation in service: %w", err)
	}
	return state, nil
}

func (s *chatService) ResetConversation(ctx context.Context, userID string) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	if err := s.conversationRepo.SaveConversationState(ctx, userID, domain.Idle()); err != nil {
		s.LogError(ctx, err, "Failed to reset conversation", slog.String("user_id", userID))
		return fmt.Errorf("failed to reset conversation in service: %w", err)
	}
	s.LogInfo(ctx, "Conversation reset", slog.String("user_id", userID))
	return nil
}
