package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
)

// Type selects which extra fields apply to a project.
type Type string

const (
	TypeStandard     Type = "standard"
	TypeGithub       Type = "github"
	TypeMedia        Type = "media"
	TypeProfessional Type = "professional"
)

type Project struct {
	ID            uuid.UUID         `json:"id"`
	OwnerID       uuid.UUID         `json:"owner_id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Category      string            `json:"category"`
	Type          Type              `json:"type"`
	RepositoryURL *string           `json:"repository_url"`
	VideoURL      *string           `json:"video_url"`
	ImageURL      *string           `json:"image_url"`
	ClientName    *string           `json:"client_name"`
	Translations  i18n.Translations `json:"translations"`
	IsPublic      bool              `json:"is_public"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

var (
	ErrInvalidType     = errors.New("project type must be one of standard, github, media, professional")
	ErrMissingRepoURL  = errors.New("github projects require a repository URL")
	ErrMissingVideoURL = errors.New("media projects require a video URL")
	ErrProjectNotFound = errors.New("project not found")
)

func (p *Project) Validate() error {
	switch p.Type {
	case TypeStandard, TypeProfessional:
	case TypeGithub:
		if p.RepositoryURL == nil || *p.RepositoryURL == "" {
			return ErrMissingRepoURL
		}
	case TypeMedia:
		if p.VideoURL == nil || *p.VideoURL == "" {
			return ErrMissingVideoURL
		}
	default:
		return ErrInvalidType
	}
	return nil
}

const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

func (p *Project) BaseValue(field string) string {
	switch field {
	case FieldTitle:
		return p.Title
	case FieldDescription:
		return p.Description
	}
	return ""
}

func (p *Project) TranslationBlock() i18n.Translations {
	return p.Translations
}

func (p *Project) CacheKey(field string) string {
	return i18n.Key("project", p.ID.String(), field)
}

type Repository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Project, error)
	ListPublicByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Project, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}
