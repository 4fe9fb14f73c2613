package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/internal/domain/project"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = "id, owner_id, title, description, category, type, repository_url, video_url, image_url, client_name, translations, is_public, created_at, updated_at"

func scanProject(row pgx.Row, l logger.Logger) (*project.Project, error) {
	p := &project.Project{}
	var translationsBytes []byte
	var projectType string

	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.Category,
		&projectType,
		&p.RepositoryURL,
		&p.VideoURL,
		&p.ImageURL,
		&p.ClientName,
		&translationsBytes,
		&p.IsPublic,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}

	p.Type = project.Type(projectType)
	if len(translationsBytes) > 0 {
		if err := json.Unmarshal(translationsBytes, &p.Translations); err != nil {
			l.Warn("Failed to unmarshal project translations", zap.String("project_id", p.ID.String()), zap.Error(err))
			p.Translations = nil
		}
	}

	return p, nil
}

func scanProjects(rows pgx.Rows, l logger.Logger) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows, l)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	translationsBytes, err := marshalTranslations(p.Translations)
	if err != nil {
		return apperror.NewInternal("failed to marshal project translations", err)
	}

	query := `
		INSERT INTO projects (id, owner_id, title, description, category, type, repository_url, video_url, image_url, client_name, translations, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.OwnerID, p.Title, p.Description, p.Category, string(p.Type),
		p.RepositoryURL, p.VideoURL, p.ImageURL, p.ClientName,
		translationsBytes, p.IsPublic, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	translationsBytes, err := marshalTranslations(p.Translations)
	if err != nil {
		return apperror.NewInternal("failed to marshal project translations for update", err)
	}

	query := `
		UPDATE projects SET
			title = $2, description = $3, category = $4, type = $5, repository_url = $6,
			video_url = $7, image_url = $8, client_name = $9, translations = $10,
			is_public = $11, updated_at = NOW()
		WHERE id = $1 AND owner_id = $12
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Category, string(p.Type),
		p.RepositoryURL, p.VideoURL, p.ImageURL, p.ClientName,
		translationsBytes, p.IsPublic, p.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", p.ID.String())
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", id.String())
	}
	return nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*project.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1 AND owner_id = $2
	`
	row := r.db.QueryRow(ctx, query, id, ownerID)
	return scanProject(row, r.logger)
}

func (r *postgresProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*project.Project, error) {
	builder := psql.Select(projectColumns).
		From("projects").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list by owner query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects by owner", err)
	}

	return scanProjects(rows, r.logger)
}

func (r *postgresProjectRepo) ListPublicByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	builder := psql.Select(projectColumns).
		From("projects").
		Where(sq.Eq{"owner_id": ownerID, "is_public": true}).
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list public projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query public projects", err)
	}

	return scanProjects(rows, r.logger)
}

func (r *postgresProjectRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, apperror.NewInternal("failed to count projects", err)
	}
	return count, nil
}
