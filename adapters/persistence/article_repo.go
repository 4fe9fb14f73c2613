package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/internal/domain/article"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type postgresArticleRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresArticleRepo(db *pgxpool.Pool, logger logger.Logger) article.Repository {
	return &postgresArticleRepo{db: db, logger: logger}
}

const articleColumns = "id, owner_id, title, journal, year, doi, url, abstract, translations, show_in_portfolio, show_in_cv, created_at, updated_at"

func scanArticle(row pgx.Row, l logger.Logger) (*article.ScientificArticle, error) {
	a := &article.ScientificArticle{}
	var translationsBytes []byte

	err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.Title,
		&a.Journal,
		&a.Year,
		&a.DOI,
		&a.URL,
		&a.Abstract,
		&translationsBytes,
		&a.ShowInPortfolio,
		&a.ShowInCV,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("article", "")
		}
		return nil, apperror.NewInternal("failed to scan article row", err)
	}

	if len(translationsBytes) > 0 {
		if err := json.Unmarshal(translationsBytes, &a.Translations); err != nil {
			l.Warn("Failed to unmarshal article translations", zap.String("article_id", a.ID.String()), zap.Error(err))
			a.Translations = nil
		}
	}

	return a, nil
}

func (r *postgresArticleRepo) Save(ctx context.Context, a *article.ScientificArticle) error {
	translationsBytes, err := marshalTranslations(a.Translations)
	if err != nil {
		return apperror.NewInternal("failed to marshal article translations", err)
	}

	query := `
		INSERT INTO articles (id, owner_id, title, journal, year, doi, url, abstract, translations, show_in_portfolio, show_in_cv, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = r.db.Exec(ctx, query,
		a.ID, a.OwnerID, a.Title, a.Journal, a.Year, a.DOI, a.URL, a.Abstract,
		translationsBytes, a.ShowInPortfolio, a.ShowInCV, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save article", err)
	}
	return nil
}

func (r *postgresArticleRepo) Update(ctx context.Context, a *article.ScientificArticle) error {
	translationsBytes, err := marshalTranslations(a.Translations)
	if err != nil {
		return apperror.NewInternal("failed to marshal article translations for update", err)
	}

	query := `
		UPDATE articles SET
			title = $2, journal = $3, year = $4, doi = $5, url = $6, abstract = $7,
			translations = $8, show_in_portfolio = $9, show_in_cv = $10, updated_at = NOW()
		WHERE id = $1 AND owner_id = $11
	`
	cmdTag, err := r.db.Exec(ctx, query,
		a.ID, a.Title, a.Journal, a.Year, a.DOI, a.URL, a.Abstract,
		translationsBytes, a.ShowInPortfolio, a.ShowInCV, a.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update article", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("article", a.ID.String())
	}
	return nil
}

func (r *postgresArticleRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM articles WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete article", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("article", id.String())
	}
	return nil
}

func (r *postgresArticleRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*article.ScientificArticle, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE id = $1 AND owner_id = $2
	`
	row := r.db.QueryRow(ctx, query, id, ownerID)
	return scanArticle(row, r.logger)
}

func (r *postgresArticleRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*article.ScientificArticle, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE owner_id = $1
		ORDER BY year DESC, created_at DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query articles by owner", err)
	}
	defer rows.Close()

	articles := make([]*article.ScientificArticle, 0)
	for rows.Next() {
		a, err := scanArticle(rows, r.logger)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating article rows", err)
	}
	return articles, nil
}

func (r *postgresArticleRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM articles WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, apperror.NewInternal("failed to count articles", err)
	}
	return count, nil
}
