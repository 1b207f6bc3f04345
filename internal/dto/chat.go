package dto

import "github.com/SscSPs/money_chat/internal/core/domain"

// ChatMessageRequest carries one user utterance.
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required,max=500,notblank" example:"gasté 2 lucas en el super"`
}

// ChatMessageResponse is the reply to one utterance.
type ChatMessageResponse struct {
	Outcome        string                      `json:"outcome"` // completed | awaiting_clarification | unresolved
	Message        string                      `json:"message"`
	Transaction    *TransactionResponse        `json:"transaction,omitempty"`
	Pending        *PendingTransactionResponse `json:"pending,omitempty"`
	MatchedPhrases []string                    `json:"matchedPhrases,omitempty"`
}

// ToChatMessageResponse converts an interpretation to its DTO.
func ToChatMessageResponse(i *domain.Interpretation) ChatMessageResponse {
	resp := ChatMessageResponse{
		Outcome:        string(i.Outcome),
		Message:        i.Message,
		MatchedPhrases: i.MatchedPhrases,
	}
	if i.Transaction != nil {
		t := ToTransactionResponse(*i.Transaction)
		resp.Transaction = &t
	}
	if i.Pending != nil {
		p := ToPendingTransactionResponse(*i.Pending)
		resp.Pending = &p
	}
	return resp
}

// ConversationResponse describes where the user's conversation stands.
type ConversationResponse struct {
	Stage   string                      `json:"stage"`
	Pending *PendingTransactionResponse `json:"pending,omitempty"`
}

// ToConversationResponse converts a conversation state to its DTO.
func ToConversationResponse(s domain.ConversationState) ConversationResponse {
	resp := ConversationResponse{Stage: string(s.Stage)}
	if resp.Stage == "" {
		resp.Stage = string(domain.StageIdle)
	}
	if s.Pending != nil {
		p := ToPendingTransactionResponse(*s.Pending)
		resp.Pending = &p
	}
	return resp
}
