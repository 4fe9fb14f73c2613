package cv

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
)

// CV is a named, language-specific view over existing projects,
// experiences and articles. Selection is by ID; content is never copied.
type CV struct {
	ID            uuid.UUID     `json:"id"`
	OwnerID       uuid.UUID     `json:"owner_id"`
	Name          string        `json:"name"`
	Language      i18n.Language `json:"language"`
	Template      string        `json:"template"`
	IncludePhoto  bool          `json:"include_photo"`
	ProjectIDs    []uuid.UUID   `json:"project_ids"`
	ExperienceIDs []uuid.UUID   `json:"experience_ids"`
	ArticleIDs    []uuid.UUID   `json:"article_ids"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

var (
	ErrMissingName     = errors.New("cv name is required")
	ErrUnknownLanguage = errors.New("cv language must be one of pt, en, es")
	ErrCVNotFound      = errors.New("cv not found")
)

func (c *CV) Validate() error {
	if c.Name == "" {
		return ErrMissingName
	}
	if _, ok := i18n.Parse(string(c.Language)); !ok {
		return ErrUnknownLanguage
	}
	return nil
}

// Selects reports whether the CV includes the given project.
func (c *CV) SelectsProject(id uuid.UUID) bool { return containsID(c.ProjectIDs, id) }

func (c *CV) SelectsExperience(id uuid.UUID) bool { return containsID(c.ExperienceIDs, id) }

func (c *CV) SelectsArticle(id uuid.UUID) bool { return containsID(c.ArticleIDs, id) }

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

type Repository interface {
	Save(ctx context.Context, cv *CV) error
	Update(ctx context.Context, cv *CV) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*CV, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*CV, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}
