package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/internal/domain/profile"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT owner_id, full_name, title, bio, email, phone, location, photo_url,
		       skills, education, social_links, preferred_language, translations, updated_at
		FROM profiles
		WHERE owner_id = $1
	`
	p := &profile.Profile{}
	var educationBytes, socialLinksBytes, translationsBytes []byte
	var preferredLanguage string

	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&p.OwnerID,
		&p.FullName,
		&p.Title,
		&p.Bio,
		&p.Email,
		&p.Phone,
		&p.Location,
		&p.PhotoURL,
		&p.Skills,
		&educationBytes,
		&socialLinksBytes,
		&preferredLanguage,
		&translationsBytes,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// First login: an empty profile in the base language.
			return &profile.Profile{
				OwnerID:           ownerID,
				Skills:            []string{},
				Education:         []profile.Education{},
				SocialLinks:       []profile.SocialLink{},
				PreferredLanguage: i18n.Base,
			}, nil
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}

	p.PreferredLanguage = i18n.ParseOrBase(preferredLanguage)
	if err := json.Unmarshal(educationBytes, &p.Education); err != nil {
		r.logger.Warn("Failed to unmarshal education", zap.String("owner_id", ownerID.String()), zap.Error(err))
		p.Education = []profile.Education{}
	}
	if err := json.Unmarshal(socialLinksBytes, &p.SocialLinks); err != nil {
		r.logger.Warn("Failed to unmarshal social_links", zap.String("owner_id", ownerID.String()), zap.Error(err))
		p.SocialLinks = []profile.SocialLink{}
	}
	if len(translationsBytes) > 0 {
		if err := json.Unmarshal(translationsBytes, &p.Translations); err != nil {
			r.logger.Warn("Failed to unmarshal profile translations", zap.String("owner_id", ownerID.String()), zap.Error(err))
			p.Translations = nil
		}
	}

	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	educationBytes, err := json.Marshal(p.Education)
	if err != nil {
		return apperror.NewInternal("failed to marshal education", err)
	}
	socialLinksBytes, err := json.Marshal(p.SocialLinks)
	if err != nil {
		return apperror.NewInternal("failed to marshal social_links", err)
	}
	translationsBytes, err := marshalTranslations(p.Translations)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile translations", err)
	}

	query := `
		INSERT INTO profiles (owner_id, full_name, title, bio, email, phone, location, photo_url,
		                      skills, education, social_links, preferred_language, translations, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		ON CONFLICT (owner_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			photo_url = EXCLUDED.photo_url,
			skills = EXCLUDED.skills,
			education = EXCLUDED.education,
			social_links = EXCLUDED.social_links,
			preferred_language = EXCLUDED.preferred_language,
			translations = EXCLUDED.translations,
			updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query,
		p.OwnerID, p.FullName, p.Title, p.Bio, p.Email, p.Phone, p.Location, p.PhotoURL,
		p.Skills, educationBytes, socialLinksBytes, string(p.PreferredLanguage), translationsBytes,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}

// marshalTranslations keeps NULL in the column when there is no override
// block, so empty objects never accumulate.
func marshalTranslations(t i18n.Translations) ([]byte, error) {
	if len(t) == 0 {
		return nil, nil
	}
	return json.Marshal(t)
}
