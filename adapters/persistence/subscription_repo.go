package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucasmonteiro/vitrine/internal/domain/plan"
	"github.com/lucasmonteiro/vitrine/internal/domain/subscription"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type postgresSubscriptionRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSubscriptionRepo(db *pgxpool.Pool, logger logger.Logger) subscription.Repository {
	return &postgresSubscriptionRepo{db: db, logger: logger}
}

func (r *postgresSubscriptionRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*subscription.Subscription, error) {
	query := `
		SELECT owner_id, tier, status, trial_ends_at, updated_at
		FROM subscriptions
		WHERE owner_id = $1
	`
	s := &subscription.Subscription{}
	var tier, status string

	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&s.OwnerID,
		&tier,
		&status,
		&s.TrialEndsAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No row means the owner never subscribed: basic, active.
			return &subscription.Subscription{
				OwnerID:   ownerID,
				Tier:      plan.TierBasic,
				Status:    subscription.StatusActive,
				UpdatedAt: time.Now().UTC(),
			}, nil
		}
		return nil, apperror.NewInternal("failed to query subscription", err)
	}

	s.Tier = plan.Tier(tier)
	s.Status = subscription.Status(status)
	return s, nil
}

func (r *postgresSubscriptionRepo) Upsert(ctx context.Context, s *subscription.Subscription) error {
	query := `
		INSERT INTO subscriptions (owner_id, tier, status, trial_ends_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (owner_id) DO UPDATE SET
			tier = EXCLUDED.tier,
			status = EXCLUDED.status,
			trial_ends_at = EXCLUDED.trial_ends_at,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		s.OwnerID, string(s.Tier), string(s.Status), s.TrialEndsAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert subscription", err)
	}
	return nil
}
