package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/SscSPs/money_chat/internal/core/interpreter"
	portsrepo "github.com/SscSPs/money_chat/internal/core/ports/repositories"
)

// loadLexicon returns the user's lexicon, seeding and storing the defaults on first use.
// Callers must hold the user's lock.
func loadLexicon(ctx context.Context, repo portsrepo.LexiconRepositoryFacade, userID string) (domain.Lexicon, error) {
	lexicon, found, err := repo.GetLexicon(ctx, userID)
	if err != nil {
		return domain.Lexicon{}, fmt.Errorf("failed to load lexicon for user %s: %w", userID, err)
	}
	if found {
		return lexicon, nil
	}

	lexicon = domain.DefaultLexicon()
	lexicon.LearnedPatterns = interpreter.DefaultLearnedPatterns()
	if err := repo.SaveLexicon(ctx, userID, lexicon); err != nil {
		return domain.Lexicon{}, fmt.Errorf("failed to seed lexicon for user %s: %w", userID, err)
	}
	return lexicon, nil
}
