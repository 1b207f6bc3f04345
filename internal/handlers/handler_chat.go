package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_chat/internal/core/ports/services"
	"github.com/SscSPs/money_chat/internal/dto"
	"github.com/SscSPs/money_chat/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chatHandler handles HTTP requests for the conversational capture flow.
type chatHandler struct {
	chatService portssvc.ChatSvcFacade
}

func newChatHandler(cs portssvc.ChatSvcFacade) *chatHandler {
	return &chatHandler{chatService: cs}
}

// registerChatRoutes registers the chat endpoints.
func registerChatRoutes(rg *gin.RouterGroup, chatService portssvc.ChatSvcFacade, extra ...gin.HandlerFunc) {
	h := newChatHandler(chatService)

	chat := rg.Group("/chat")
	{
		chain := append(append([]gin.HandlerFunc{}, extra...), h.postMessage)
		chat.POST("/messages", chain...)
		chat.GET("/conversation", h.getConversation)
		chat.DELETE("/conversation", h.resetConversation)
	}
}

// postMessage godoc
// @Summary Send a chat message
// @Description Interprets one sentence about money. Depending on the conversation it completes a transaction, asks how an expense was paid, or asks for more details.
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   message body dto.ChatMessageRequest true "Utterance"
// @Success 200 {object} dto.ChatMessageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to process message"
// @Security BearerAuth
// @Router /chat/messages [post]
func (h *chatHandler) postMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for chat message", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.chatService.ProcessMessage(c.Request.Context(), userID, req.Message)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to process message")
		return
	}

	logger.Info("Chat message processed", slog.String("outcome", string(result.Outcome)))
	c.JSON(http.StatusOK, dto.ToChatMessageResponse(result))
}

// getConversation godoc
// @Summary Get conversation state
// @Description Returns whether the assistant is waiting for a payment method, and the pending transaction if so.
// @Tags chat
// @Produce  json
// @Success 200 {object} dto.ConversationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to get conversation"
// @Security BearerAuth
// @Router /chat/conversation [get]
func (h *chatHandler) getConversation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	state, err := h.chatService.GetConversation(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get conversation")
		return
	}

	c.JSON(http.StatusOK, dto.ToConversationResponse(state))
}

// resetConversation godoc
// @Summary Reset conversation
// @Description Discards any pending transaction and returns the conversation to idle.
// @Tags chat
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to reset conversation"
// @Security BearerAuth
// @Router /chat/conversation [delete]
func (h *chatHandler) resetConversation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.chatService.ResetConversation(c.Request.Context(), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to reset conversation")
		return
	}

	c.Status(http.StatusNoContent)
}
