package experience

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
)

type Experience struct {
	ID             uuid.UUID         `json:"id"`
	OwnerID        uuid.UUID         `json:"owner_id"`
	Company        string            `json:"company"`
	Title          string            `json:"title"`
	Period         string            `json:"period"`
	Current        bool              `json:"current"`
	Description    string            `json:"description"`
	CertificateURL *string           `json:"certificate_url"`
	Translations   i18n.Translations `json:"translations"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

var openEndedPeriod = regexp.MustCompile(`(?i)\b(atual|presente|present|current|hoje)\b|-\s*$`)

// IsCurrentPeriod derives the current flag from a free-form period string
// such as "2021 - Atual" or "Mar 2020 - Present". Derived at edit time,
// then persisted.
func IsCurrentPeriod(period string) bool {
	return openEndedPeriod.MatchString(strings.TrimSpace(period))
}

const (
	FieldCompany     = "company"
	FieldTitle       = "title"
	FieldDescription = "description"
)

func (e *Experience) BaseValue(field string) string {
	switch field {
	case FieldCompany:
		return e.Company
	case FieldTitle:
		return e.Title
	case FieldDescription:
		return e.Description
	}
	return ""
}

func (e *Experience) TranslationBlock() i18n.Translations {
	return e.Translations
}

func (e *Experience) CacheKey(field string) string {
	return i18n.Key("experience", e.ID.String(), field)
}

type Repository interface {
	Save(ctx context.Context, exp *Experience) error
	Update(ctx context.Context, exp *Experience) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Experience, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Experience, error)
}
