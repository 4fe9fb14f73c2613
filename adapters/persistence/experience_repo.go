package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/internal/domain/experience"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

const experienceColumns = "id, owner_id, company, title, period, current, description, certificate_url, translations, created_at, updated_at"

func scanExperience(row pgx.Row, l logger.Logger) (*experience.Experience, error) {
	e := &experience.Experience{}
	var translationsBytes []byte

	err := row.Scan(
		&e.ID,
		&e.OwnerID,
		&e.Company,
		&e.Title,
		&e.Period,
		&e.Current,
		&e.Description,
		&e.CertificateURL,
		&translationsBytes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("experience", "")
		}
		return nil, apperror.NewInternal("failed to scan experience row", err)
	}

	if len(translationsBytes) > 0 {
		if err := json.Unmarshal(translationsBytes, &e.Translations); err != nil {
			l.Warn("Failed to unmarshal experience translations", zap.String("experience_id", e.ID.String()), zap.Error(err))
			e.Translations = nil
		}
	}

	return e, nil
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	translationsBytes, err := marshalTranslations(e.Translations)
	if err != nil {
		return apperror.NewInternal("failed to marshal experience translations", err)
	}

	query := `
		INSERT INTO experiences (id, owner_id, company, title, period, current, description, certificate_url, translations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.db.Exec(ctx, query,
		e.ID, e.OwnerID, e.Company, e.Title, e.Period, e.Current,
		e.Description, e.CertificateURL, translationsBytes, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, e *experience.Experience) error {
	translationsBytes, err := marshalTranslations(e.Translations)
	if err != nil {
		return apperror.NewInternal("failed to marshal experience translations for update", err)
	}

	query := `
		UPDATE experiences SET
			company = $2, title = $3, period = $4, current = $5, description = $6,
			certificate_url = $7, translations = $8, updated_at = NOW()
		WHERE id = $1 AND owner_id = $9
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, e.Company, e.Title, e.Period, e.Current, e.Description,
		e.CertificateURL, translationsBytes, e.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", e.ID.String())
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM experiences WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", id.String())
	}
	return nil
}

func (r *postgresExperienceRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*experience.Experience, error) {
	query := `
		SELECT ` + experienceColumns + `
		FROM experiences
		WHERE id = $1 AND owner_id = $2
	`
	row := r.db.QueryRow(ctx, query, id, ownerID)
	return scanExperience(row, r.logger)
}

func (r *postgresExperienceRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	query := `
		SELECT ` + experienceColumns + `
		FROM experiences
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experiences by owner", err)
	}
	defer rows.Close()

	experiences := make([]*experience.Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows, r.logger)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return experiences, nil
}
