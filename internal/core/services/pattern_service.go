package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/SscSPs/money_chat/internal/core/interpreter"
	portsrepo "github.com/SscSPs/money_chat/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_chat/internal/core/ports/services"
)

// patternService manages the learned pattern table of each user.
type patternService struct {
	BaseService
	lexiconRepo portsrepo.LexiconRepositoryFacade
	locks       *UserLocks
}

// NewPatternService creates a new PatternService. locks may be shared with the
// chat service; nil creates a private table.
func NewPatternService(lexiconRepo portsrepo.LexiconRepositoryFacade, locks *UserLocks) portssvc.PatternSvcFacade {
	if locks == nil {
		locks = NewUserLocks()
	}
	return &patternService{lexiconRepo: lexiconRepo, locks: locks}
}

var _ portssvc.PatternSvcFacade = (*patternService)(nil)

func (s *patternService) ListPatterns(ctx context.Context, userID string) ([]domain.LearnedPattern, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	lexicon, err := loadLexicon(ctx, s.lexiconRepo, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list patterns", slog.String("user_id", userID))
		return nil, err
	}
	if lexicon.LearnedPatterns == nil {
		return []domain.LearnedPattern{}, nil
	}
	return lexicon.LearnedPatterns, nil
}

func (s *patternService) TeachPattern(ctx context.Context, userID string, phrase string, attrs domain.PatternAttributes) (*domain.LearnedPattern, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	lexicon, err := loadLexicon(ctx, s.lexiconRepo, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load lexicon for teaching", slog.String("user_id", userID))
		return nil, err
	}

	table, err := interpreter.Teach(lexicon.LearnedPatterns, phrase, attrs)
	if err != nil {
		s.LogWarn(ctx, "Rejected pattern", slog.String("phrase", phrase), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.lexiconRepo.SaveLearnedPatterns(ctx, userID, table); err != nil {
		s.LogError(ctx, err, "Failed to save learned patterns", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save learned patterns in service: %w", err)
	}

	learned := table[interpreter.FindPattern(table, phrase)]
	s.LogInfo(ctx, "Pattern taught",
		slog.String("user_id", userID),
		slog.String("phrase", learned.Phrase),
		slog.Int("count", learned.Count))
	return &learned, nil
}
