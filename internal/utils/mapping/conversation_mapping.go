package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/SscSPs/money_chat/internal/models"
)

// ToModelConversationState encodes a conversation state for storage.
func ToModelConversationState(userID string, d domain.ConversationState) (models.ConversationState, error) {
	m := models.ConversationState{UserID: userID, Stage: string(d.Stage)}
	if m.Stage == "" {
		m.Stage = string(domain.StageIdle)
	}
	if d.Pending != nil {
		raw, err := json.Marshal(d.Pending)
		if err != nil {
			return models.ConversationState{}, fmt.Errorf("failed to encode pending transaction: %w", err)
		}
		m.Pending = raw
	}
	return m, nil
}

// ToDomainConversationState decodes a stored conversation state.
func ToDomainConversationState(m models.ConversationState) (domain.ConversationState, error) {
	d := domain.ConversationState{Stage: domain.ConversationStage(m.Stage)}
	if len(m.Pending) > 0 && string(m.Pending) != "null" {
		var pending domain.PendingTransaction
		if err := json.Unmarshal(m.Pending, &pending); err != nil {
			return domain.ConversationState{}, fmt.Errorf("failed to decode pending transaction: %w", err)
		}
		d.Pending = &pending
	}
	return d, nil
}
