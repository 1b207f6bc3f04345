package memory

import (
	"context"

	"github.com/SscSPs/money_chat/internal/core/domain"
	portsrepo "github.com/SscSPs/money_chat/internal/core/ports/repositories"
)

type lexiconRepository struct {
	store *store
}

var _ portsrepo.LexiconRepositoryFacade = (*lexiconRepository)(nil)

func (r *lexiconRepository) GetLexicon(_ context.Context, userID string) (domain.Lexicon, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	lexicon, ok := r.store.lexicons[userID]
	if !ok {
		return domain.Lexicon{}, false, nil
	}
	return copyLexicon(lexicon), true, nil
}

func (r *lexiconRepository) SaveLexicon(_ context.Context, userID string, lexicon domain.Lexicon) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.lexicons[userID] = copyLexicon(lexicon)
	return nil
}

func (r *lexiconRepository) SaveLearnedPatterns(_ context.Context, userID string, patterns []domain.LearnedPattern) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	lexicon := r.store.lexicons[userID]
	lexicon.LearnedPatterns = copyPatterns(patterns)
	r.store.lexicons[userID] = lexicon
	return nil
}
