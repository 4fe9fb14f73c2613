package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/internal/domain/theme"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type postgresThemeRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresThemeRepo(db *pgxpool.Pool, logger logger.Logger) theme.Repository {
	return &postgresThemeRepo{db: db, logger: logger}
}

func (r *postgresThemeRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*theme.UserTheme, error) {
	query := `
		SELECT owner_id, palette, font, layout, mode, updated_at
		FROM user_themes
		WHERE owner_id = $1
	`
	t := &theme.UserTheme{}
	var paletteBytes []byte
	var layout, mode string

	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&t.OwnerID,
		&paletteBytes,
		&t.Font,
		&layout,
		&mode,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("theme", ownerID.String())
		}
		return nil, apperror.NewInternal("failed to query theme", err)
	}

	t.Layout = theme.LayoutID(layout)
	t.Mode = theme.Mode(mode)
	if err := json.Unmarshal(paletteBytes, &t.Palette); err != nil {
		r.logger.Warn("Failed to unmarshal theme palette", zap.String("owner_id", ownerID.String()), zap.Error(err))
		t.Palette = theme.DefaultPalette(t.Mode)
	}

	return t, nil
}

func (r *postgresThemeRepo) Upsert(ctx context.Context, t *theme.UserTheme) error {
	paletteBytes, err := json.Marshal(t.Palette)
	if err != nil {
		return apperror.NewInternal("failed to marshal theme palette", err)
	}

	query := `
		INSERT INTO user_themes (owner_id, palette, font, layout, mode, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (owner_id) DO UPDATE SET
			palette = EXCLUDED.palette,
			font = EXCLUDED.font,
			layout = EXCLUDED.layout,
			mode = EXCLUDED.mode,
			updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query,
		t.OwnerID, paletteBytes, t.Font, string(t.Layout), string(t.Mode),
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert theme", err)
	}
	return nil
}
