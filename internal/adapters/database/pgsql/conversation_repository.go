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
	getConversationStateQuery = `
		SELECT user_id, stage, pending, last_updated_at
		FROM conversation_states
		WHERE user_id = $1;
	`
	saveConversationStateQuery = `
		INSERT INTO conversation_states (user_id, stage, pending, last_updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			stage = EXCLUDED.stage,
			pending = EXCLUDED.pending,
			last_updated_at = EXCLUDED.last_updated_at;
	`
)

type PgxConversationRepository struct {
	BaseRepository
}

func newPgxConversationRepository(pool *pgxpool.Pool) portsrepo.ConversationRepositoryFacade {
	return &PgxConversationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ConversationRepositoryFacade = (*PgxConversationRepository)(nil)

func (r *PgxConversationRepository) GetConversationState(ctx context.Context, userID string) (domain.ConversationState, error) {
	var row models.ConversationState
	err := r.Pool.QueryRow(ctx, getConversationStateQuery, userID).Scan(
		&row.UserID,
		&row.Stage,
		&row.Pending,
		&row.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Idle(), nil
		}
		return domain.ConversationState{}, fmt.Errorf("failed to get conversation state for user %s: %w", userID, err)
	}
	return mapping.ToDomainConversationState(row)
}

func (r *PgxConversationRepository) SaveConversationState(ctx context.Context, userID string, state domain.ConversationState) error {
	row, err := mapping.ToModelConversationState(userID, state)
	if err != nil {
		return err
	}

	// A nil []byte is sent as SQL NULL
	if _, err := r.Pool.Exec(ctx, saveConversationStateQuery, row.UserID, row.Stage, row.Pending, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save conversation state for user %s: %w", userID, err)
	}
	return nil
}
