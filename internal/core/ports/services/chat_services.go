package services

import (
	"context"

	"github.com/SscSPs/money_chat/internal/core/domain"
)

// ChatSvcFacade drives the conversational capture of transactions
type ChatSvcFacade interface {
	// ProcessMessage interprets one utterance in the user's conversation,
	// persisting any completed transaction and the next conversation state.
	ProcessMessage(ctx context.Context, userID string, utterance string) (*domain.Interpretation, error)

	// GetConversation returns the user's current conversation state.
	GetConversation(ctx context.Context, userID string) (domain.ConversationState, error)

	// ResetConversation discards any pending transaction.
	ResetConversation(ctx context.Context, userID string) error
}
