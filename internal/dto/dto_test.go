package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMessageRequest_Validation(t *testing.T) {
	require.NoError(t, RegisterValidators())
	require.NoError(t, RegisterValidators())

	assert.NoError(t, binding.Validator.ValidateStruct(ChatMessageRequest{Message: "gasté 2 lucas"}))
	assert.Error(t, binding.Validator.ValidateStruct(ChatMessageRequest{Message: ""}))
	assert.Error(t, binding.Validator.ValidateStruct(ChatMessageRequest{Message: "   "}))
}

func TestTeachPatternRequest_Validation(t *testing.T) {
	require.NoError(t, RegisterValidators())

	bad := "gift"
	assert.Error(t, binding.Validator.ValidateStruct(TeachPatternRequest{Phrase: "birra", Type: &bad}))

	good := "income"
	req := TeachPatternRequest{Phrase: "birra", Type: &good}
	require.NoError(t, binding.Validator.ValidateStruct(req))

	attrs := req.ToAttributes()
	require.NotNil(t, attrs.Type)
	assert.Equal(t, domain.Income, *attrs.Type)
	assert.Nil(t, attrs.Category)
}

func TestToChatMessageResponse(t *testing.T) {
	txn := domain.Transaction{
		TransactionID: "t1",
		Amount:        decimal.NewFromInt(2000),
		Date:          time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		Type:          domain.Expense,
		Category:      "Comida",
		PaymentMethod: "Efectivo",
	}

	resp := ToChatMessageResponse(&domain.Interpretation{Outcome: domain.OutcomeCompleted, Message: "ok", Transaction: &txn})

	assert.Equal(t, "completed", resp.Outcome)
	require.NotNil(t, resp.Transaction)
	assert.Equal(t, "2024-03-09", resp.Transaction.Date)
	assert.Equal(t, "$2.000", resp.Transaction.FormattedAmount)
	assert.Nil(t, resp.Pending)
}

func TestToConversationResponse_DefaultsToIdle(t *testing.T) {
	assert.Equal(t, "idle", ToConversationResponse(domain.ConversationState{}).Stage)
}
