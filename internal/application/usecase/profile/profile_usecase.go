package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/adapters/event"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/internal/domain/profile"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, kafka *event.KafkaProducerClient, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		kafkaClient: kafka,
		logger:      log,
	}
}

type GetProfileInput struct {
	OwnerID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	OwnerID           uuid.UUID
	FullName          string
	Title             string
	Bio               string
	Email             string
	Phone             string
	Location          string
	PhotoURL          *string
	Skills            []string
	Education         []profile.Education
	SocialLinks       []profile.SocialLink
	PreferredLanguage i18n.Language
	Translations      i18n.Translations
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p := &profile.Profile{
		OwnerID:           input.OwnerID,
		FullName:          input.FullName,
		Title:             input.Title,
		Bio:               input.Bio,
		Email:             input.Email,
		Phone:             input.Phone,
		Location:          input.Location,
		PhotoURL:          input.PhotoURL,
		Skills:            input.Skills,
		Education:         input.Education,
		SocialLinks:       input.SocialLinks,
		PreferredLanguage: input.PreferredLanguage,
		Translations:      input.Translations.Sanitize(),
		UpdatedAt:         time.Now().UTC(),
	}
	if p.PreferredLanguage == "" {
		p.PreferredLanguage = i18n.Base
	}

	err := uc.profileRepo.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:    event.ContentEventTypeUpdated,
			OwnerID:      p.OwnerID,
			ResourceType: "profile",
			ResourceID:   p.OwnerID,
		}
		if err := uc.kafkaClient.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka 'content.updated' event", err, zap.String("owner_id", p.OwnerID.String()))
		}
	}()

	return &UpdateProfileOutput{Profile: p}, nil
}
