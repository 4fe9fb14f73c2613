package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucasmonteiro/vitrine/internal/domain/video"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
)

type postgresVideoRepo struct {
	db *pgxpool.Pool
}

func NewPostgresVideoRepo(db *pgxpool.Pool) video.Repository {
	return &postgresVideoRepo{db: db}
}

func (r *postgresVideoRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*video.FeaturedVideo, error) {
	query := `
		SELECT owner_id, title, url, provider, updated_at
		FROM featured_videos
		WHERE owner_id = $1
	`
	v := &video.FeaturedVideo{}
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&v.OwnerID,
		&v.Title,
		&v.URL,
		&v.Provider,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("featured video", ownerID.String())
		}
		return nil, apperror.NewInternal("failed to query featured video", err)
	}
	return v, nil
}

func (r *postgresVideoRepo) Upsert(ctx context.Context, v *video.FeaturedVideo) error {
	query := `
		INSERT INTO featured_videos (owner_id, title, url, provider, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (owner_id) DO UPDATE SET
			title = EXCLUDED.title,
			url = EXCLUDED.url,
			provider = EXCLUDED.provider,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, v.OwnerID, v.Title, v.URL, v.Provider)
	if err != nil {
		return apperror.NewInternal("failed to upsert featured video", err)
	}
	return nil
}

func (r *postgresVideoRepo) Delete(ctx context.Context, ownerID uuid.UUID) error {
	query := `DELETE FROM featured_videos WHERE owner_id = $1`
	cmdTag, err := r.db.Exec(ctx, query, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete featured video", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("featured video", ownerID.String())
	}
	return nil
}
