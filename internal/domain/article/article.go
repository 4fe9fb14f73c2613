package article

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
)

// ScientificArticle is optional publication metadata with independent
// visibility flags for the portfolio page and CV documents.
type ScientificArticle struct {
	ID              uuid.UUID         `json:"id"`
	OwnerID         uuid.UUID         `json:"owner_id"`
	Title           string            `json:"title"`
	Journal         string            `json:"journal"`
	Year            int               `json:"year"`
	DOI             *string           `json:"doi"`
	URL             *string           `json:"url"`
	Abstract        string            `json:"abstract"`
	Translations    i18n.Translations `json:"translations"`
	ShowInPortfolio bool              `json:"show_in_portfolio"`
	ShowInCV        bool              `json:"show_in_cv"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

const (
	FieldTitle    = "title"
	FieldAbstract = "abstract"
)

func (a *ScientificArticle) BaseValue(field string) string {
	switch field {
	case FieldTitle:
		return a.Title
	case FieldAbstract:
		return a.Abstract
	}
	return ""
}

func (a *ScientificArticle) TranslationBlock() i18n.Translations {
	return a.Translations
}

func (a *ScientificArticle) CacheKey(field string) string {
	return i18n.Key("article", a.ID.String(), field)
}

type Repository interface {
	Save(ctx context.Context, art *ScientificArticle) error
	Update(ctx context.Context, art *ScientificArticle) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*ScientificArticle, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ScientificArticle, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}
