package services

import (
	"github.com/SscSPs/money_chat/internal/core/interpreter"
	portsrepo "github.com/SscSPs/money_chat/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_chat/internal/core/ports/services"
	"github.com/SscSPs/money_chat/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, tracker EventTracker) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Chat and pattern services both rewrite the lexicon, so they share one lock table
	locks := NewUserLocks()

	chatOptions := []ChatServiceOption{
		WithInterpreter(interpreter.New(interpreter.WithLocation(cfg.Location))),
		WithUserLocks(locks),
	}
	if tracker != nil {
		chatOptions = append(chatOptions, WithEventTracker(tracker))
	}

	container.Chat = NewChatService(repos.ConversationRepo, repos.LexiconRepo, repos.TransactionRepo, chatOptions...)
	container.Pattern = NewPatternService(repos.LexiconRepo, locks)
	container.Transaction = NewTransactionService(repos.TransactionRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ChatSvcFacade        = (*chatService)(nil)
	_ portssvc.PatternSvcFacade     = (*patternService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
)
