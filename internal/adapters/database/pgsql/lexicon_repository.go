package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/money_chat/internal/core/domain"
	portsrepo "github.com/SscSPs/money_chat/internal/core/ports/repositories"
	"github.com/SscSPs/money_chat/internal/models"
	"github.com/SscSPs/money_chat/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	getLexiconQuery = `
		SELECT user_id, expense_categories, income_categories, payment_methods, learned_patterns
		FROM lexicons
		WHERE user_id = $1;
	`
	saveLexiconQuery = `
		INSERT INTO lexicons (user_id, expense_categories, income_categories, payment_methods, learned_patterns, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			expense_categories = EXCLUDED.expense_categories,
			income_categories = EXCLUDED.income_categories,
			payment_methods = EXCLUDED.payment_methods,
			learned_patterns = EXCLUDED.learned_patterns,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	saveLearnedPatternsQuery = `
		INSERT INTO lexicons (user_id, learned_patterns, created_at, last_updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			learned_patterns = EXCLUDED.learned_patterns,
			last_updated_at = EXCLUDED.last_updated_at;
	`
)

type PgxLexiconRepository struct {
	BaseRepository
}

func newPgxLexiconRepository(pool *pgxpool.Pool) portsrepo.LexiconRepositoryFacade {
	return &PgxLexiconRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LexiconRepositoryFacade = (*PgxLexiconRepository)(nil)

func (r *PgxLexiconRepository) GetLexicon(ctx context.Context, userID string) (domain.Lexicon, bool, error) {
	var row models.Lexicon
	err := r.Pool.QueryRow(ctx, getLexiconQuery, userID).Scan(
		&row.UserID,
		&row.ExpenseCategories,
		&row.IncomeCategories,
		&row.PaymentMethods,
		&row.LearnedPatterns,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Lexicon{}, false, nil
		}
		return domain.Lexicon{}, false, fmt.Errorf("failed to get lexicon for user %s: %w", userID, err)
	}

	lexicon, err := mapping.ToDomainLexicon(row)
	if err != nil {
		return domain.Lexicon{}, false, err
	}
	return lexicon, true, nil
}

func (r *PgxLexiconRepository) SaveLexicon(ctx context.Context, userID string, lexicon domain.Lexicon) error {
	row, err := mapping.ToModelLexicon(userID, lexicon)
	if err != nil {
		return err
	}

	_, err = r.Pool.Exec(ctx, saveLexiconQuery,
		row.UserID,
		row.ExpenseCategories,
		row.IncomeCategories,
		row.PaymentMethods,
		row.LearnedPatterns,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save lexicon for user %s: %w", userID, err)
	}
	return nil
}

func (r *PgxLexiconRepository) SaveLearnedPatterns(ctx context.Context, userID string, patterns []domain.LearnedPattern) error {
	raw, err := mapping.EncodeLearnedPatterns(patterns)
	if err != nil {
		return err
	}

	if _, err := r.Pool.Exec(ctx, saveLearnedPatternsQuery, userID, raw, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save learned patterns for user %s: %w", userID, err)
	}
	return nil
}
