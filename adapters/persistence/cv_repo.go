package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucasmonteiro/vitrine/internal/domain/cv"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type postgresCVRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCVRepo(db *pgxpool.Pool, logger logger.Logger) cv.Repository {
	return &postgresCVRepo{db: db, logger: logger}
}

const cvColumns = "id, owner_id, name, language, template, include_photo, project_ids, experience_ids, article_ids, created_at, updated_at"

func scanCV(row pgx.Row) (*cv.CV, error) {
	c := &cv.CV{}
	var language string

	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&language,
		&c.Template,
		&c.IncludePhoto,
		&c.ProjectIDs,
		&c.ExperienceIDs,
		&c.ArticleIDs,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("cv", "")
		}
		return nil, apperror.NewInternal("failed to scan cv row", err)
	}

	c.Language = i18n.ParseOrBase(language)
	return c, nil
}

func (r *postgresCVRepo) Save(ctx context.Context, c *cv.CV) error {
	query := `
		INSERT INTO cvs (id, owner_id, name, language, template, include_photo, project_ids, experience_ids, article_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.OwnerID, c.Name, string(c.Language), c.Template, c.IncludePhoto,
		c.ProjectIDs, c.ExperienceIDs, c.ArticleIDs, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save cv", err)
	}
	return nil
}

func (r *postgresCVRepo) Update(ctx context.Context, c *cv.CV) error {
	query := `
		UPDATE cvs SET
			name = $2, language = $3, template = $4, include_photo = $5,
			project_ids = $6, experience_ids = $7, article_ids = $8, updated_at = NOW()
		WHERE id = $1 AND owner_id = $9
	`
	cmdTag, err := r.db.Exec(ctx, query,
		c.ID, c.Name, string(c.Language), c.Template, c.IncludePhoto,
		c.ProjectIDs, c.ExperienceIDs, c.ArticleIDs, c.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update cv", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("cv", c.ID.String())
	}
	return nil
}

func (r *postgresCVRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM cvs WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete cv", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("cv", id.String())
	}
	return nil
}

func (r *postgresCVRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*cv.CV, error) {
	query := `
		SELECT ` + cvColumns + `
		FROM cvs
		WHERE id = $1 AND owner_id = $2
	`
	row := r.db.QueryRow(ctx, query, id, ownerID)
	return scanCV(row)
}

func (r *postgresCVRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*cv.CV, error) {
	query := `
		SELECT ` + cvColumns + `
		FROM cvs
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query cvs by owner", err)
	}
	defer rows.Close()

	cvs := make([]*cv.CV, 0)
	for rows.Next() {
		c, err := scanCV(rows)
		if err != nil {
			return nil, err
		}
		cvs = append(cvs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating cv rows", err)
	}
	return cvs, nil
}

func (r *postgresCVRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cvs WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, apperror.NewInternal("failed to count cvs", err)
	}
	return count, nil
}
