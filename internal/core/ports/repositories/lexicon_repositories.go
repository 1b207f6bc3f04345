package repositories

import (
	"context"

	"github.com/SscSPs/money_chat/internal/core/domain"
)

// LexiconReader defines read operations for a user's vocabulary
type LexiconReader interface {
	// GetLexicon returns the user's lexicon. found is false when nothing has been stored yet.
	GetLexicon(ctx context.Context, userID string) (lexicon domain.Lexicon, found bool, err error)
}

// LexiconWriter defines write operations for a user's vocabulary
type LexiconWriter interface {
	// SaveLexicon replaces the user's whole lexicon, learned patterns included.
	SaveLexicon(ctx context.Context, userID string, lexicon domain.Lexicon) error

	// SaveLearnedPatterns replaces only the learned pattern table.
	SaveLearnedPatterns(ctx context.Context, userID string, patterns []domain.LearnedPattern) error
}

// LexiconRepositoryFacade combines all lexicon-related repository interfaces
type LexiconRepositoryFacade interface {
	LexiconReader
	LexiconWriter
}
