package domain

// Outcome tags the kind of result an utterance produced.
type Outcome string

const (
	OutcomeCompleted             Outcome = "completed"
	OutcomeAwaitingClarification Outcome = "awaiting_clarification"
	OutcomeUnresolved            Outcome = "unresolved"
)

// Interpretation is the result of reading one utterance.
// Transaction is set only for OutcomeCompleted and Pending only for
// OutcomeAwaitingClarification.
type Interpretation struct {
	Outcome        Outcome             `json:"outcome"`
	Message        string              `json:"message"`
	Transaction    *Transaction        `json:"transaction,omitempty"`
	Pending        *PendingTransaction `json:"pendingTransaction,omitempty"`
	MatchedPhrases []string            `json:"matchedPhrases,omitempty"`
}
