package repositories

import (
	"context"

	"github.com/SscSPs/money_chat/internal/core/domain"
)

// ConversationRepositoryFacade stores the dialogue state of each user's conversation.
type ConversationRepositoryFacade interface {
	// GetConversationState returns the stored state, or domain.Idle() when none exists.
	GetConversationState(ctx context.Context, userID string) (domain.ConversationState, error)

	// SaveConversationState replaces the stored state.
	SaveConversationState(ctx context.Context, userID string, state domain.ConversationState) error
}
