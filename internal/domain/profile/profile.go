package profile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
)

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Profile is the owner's identity block. One per user, upserted wholesale,
// never deleted.
type Profile struct {
	OwnerID           uuid.UUID         `json:"owner_id"`
	FullName          string            `json:"full_name"`
	Title             string            `json:"title"`
	Bio               string            `json:"bio"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Location          string            `json:"location"`
	PhotoURL          *string           `json:"photo_url"`
	Skills            []string          `json:"skills"`
	Education         []Education       `json:"education"`
	SocialLinks       []SocialLink      `json:"social_links"`
	PreferredLanguage i18n.Language     `json:"preferred_language"`
	Translations      i18n.Translations `json:"translations"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

const (
	FieldTitle = "title"
	FieldBio   = "bio"
)

func (p *Profile) BaseValue(field string) string {
	switch field {
	case FieldTitle:
		return p.Title
	case FieldBio:
		return p.Bio
	}
	return ""
}

func (p *Profile) TranslationBlock() i18n.Translations {
	return p.Translations
}

func (p *Profile) CacheKey(field string) string {
	return i18n.Key("profile", p.OwnerID.String(), field)
}

type Repository interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}
