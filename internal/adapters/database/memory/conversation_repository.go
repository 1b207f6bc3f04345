package memory

import (
	"context"

	"github.com/SscSPs/money_chat/internal/core/domain"
	portsrepo "github.com/SscSPs/money_chat/internal/core/ports/repositories"
)

type conversationRepository struct {
	store *store
}

var _ portsrepo.ConversationRepositoryFacade = (*conversationRepository)(nil)

func (r *conversationRepository) GetConversationState(_ context.Context, userID string) (domain.ConversationState, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	state, ok := r.store.conversations[userID]
	if !ok {
		return domain.Idle(), nil
	}
	state.Pending = copyPending(state.Pending)
	return state, nil
}

func (r *conversationRepository) SaveConversationState(_ context.Context, userID string, state domain.ConversationState) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	state.Pending = copyPending(state.Pending)
	r.store.conversations[userID] = state
	return nil
}
