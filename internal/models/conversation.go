package models

import "time"

// ConversationState is a row of the conversation_states table.
// Pending holds the JSON encoded pending transaction, or nil.
type ConversationState struct {
	UserID        string
	Stage         string
	Pending       []byte
	LastUpdatedAt time.Time
}
