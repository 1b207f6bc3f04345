package domain

// ConversationStage is the dialogue position of a user's conversation.
type ConversationStage string

const (
	StageIdle                  ConversationStage = "idle"
	StageAwaitingPaymentMethod ConversationStage = "awaiting_payment_method"
)

// ConversationState is the state carried from one utterance to the next.
// Pending is only meaningful in StageAwaitingPaymentMethod.
type ConversationState struct {
	Stage   ConversationStage   `json:"stage"`
	Pending *PendingTransaction `json:"pendingTransaction,omitempty"`
}

// Idle returns the resting conversation state.
func Idle() ConversationState {
	return ConversationState{Stage: StageIdle}
}

// AwaitingPaymentMethod returns a state holding p until its payment method is supplied.
func AwaitingPaymentMethod(p PendingTransaction) ConversationState {
	return ConversationState{Stage: StageAwaitingPaymentMethod, Pending: &p}
}

// IsAwaiting reports whether the next utterance should be read as a payment method.
func (s ConversationState) IsAwaiting() bool {
	return s.Stage == StageAwaitingPaymentMethod && s.Pending != nil
}
