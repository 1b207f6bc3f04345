package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_chat/internal/core/ports/services"
	"github.com/SscSPs/money_chat/internal/dto"
	"github.com/SscSPs/money_chat/internal/middleware"
	"github.com/gin-gonic/gin"
)

type patternHandler struct {
	patternService portssvc.PatternSvcFacade
}

func newPatternHandler(ps portssvc.PatternSvcFacade) *patternHandler {
	return &patternHandler{patternService: ps}
}

func registerPatternRoutes(rg *gin.RouterGroup, patternService portssvc.PatternSvcFacade) {
	h := newPatternHandler(patternService)

	patterns := rg.Group("/patterns")
	{
		patterns.GET("", h.listPatterns)
		patterns.POST("", h.teachPattern)
	}
}

// listPatterns godoc
// @Summary List learned patterns
// @Description Returns the phrases the assistant has learned for the current user.
// @Tags patterns
// @Produce  json
// @Success 200 {object} dto.ListPatternsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list patterns"
// @Security BearerAuth
// @Router /patterns [get]
func (h *patternHandler) listPatterns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	patterns, err := h.patternService.ListPatterns(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list patterns")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPatternsResponse(patterns))
}

// teachPattern godoc
// @Summary Teach a phrase
// @Description Records a phrase with the attributes it implies, or reinforces an existing one.
// @Tags patterns
// @Accept  json
// @Produce  json
// @Param   pattern body dto.TeachPatternRequest true "Phrase and attributes"
// @Success 200 {object} dto.PatternResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to teach pattern"
// @Security BearerAuth
// @Router /patterns [post]
func (h *patternHandler) teachPattern(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TeachPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TeachPattern", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	learned, err := h.patternService.TeachPattern(c.Request.Context(), userID, req.Phrase, req.ToAttributes())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to teach pattern")
		return
	}

	logger.Info("Pattern taught", slog.String("phrase", learned.Phrase), slog.Int("count", learned.Count))
	c.JSON(http.StatusOK, dto.ToPatternResponse(*learned))
}
