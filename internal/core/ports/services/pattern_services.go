package services

import (
	"context"

	"github.com/SscSPs/money_chat/internal/core/domain"
)

// PatternReaderSvc defines read operations for learned patterns
type PatternReaderSvc interface {
	// ListPatterns returns the user's learned pattern table, seeding defaults on first use.
	ListPatterns(ctx context.Context, userID string) ([]domain.LearnedPattern, error)
}

// PatternWriterSvc defines write operations for learned patterns
type PatternWriterSvc interface {
	// TeachPattern records or reinforces a phrase and returns the updated entry.
	TeachPattern(ctx context.Context, userID string, phrase string, attrs domain.PatternAttributes) (*domain.LearnedPattern, error)
}

// PatternSvcFacade combines all pattern-related service interfaces
type PatternSvcFacade interface {
	PatternReaderSvc
	PatternWriterSvc
}
