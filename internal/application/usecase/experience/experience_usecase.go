package experience

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/adapters/event"
	"github.com/lucasmonteiro/vitrine/internal/domain/experience"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type ExperienceUseCase struct {
	repo        experience.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewExperienceUseCase(r experience.Repository, kafka *event.KafkaProducerClient, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: r, kafkaClient: kafka, logger: log}
}

type CreateExperienceInput struct {
	OwnerID        uuid.UUID
	Company        string
	Title          string
	Period         string
	Description    string
	CertificateURL *string
	Translations   i18n.Translations
}

func (uc *ExperienceUseCase) CreateExperience(ctx context.Context, in CreateExperienceInput) (*experience.Experience, error) {
	if in.Company == "" || in.Title == "" {
		return nil, apperror.NewInvalidInput("company and title are required", nil)
	}

	now := time.Now().UTC()
	exp := &experience.Experience{
		ID:             uuid.New(),
		OwnerID:        in.OwnerID,
		Company:        in.Company,
		Title:          in.Title,
		Period:         in.Period,
		Current:        experience.IsCurrentPeriod(in.Period),
		Description:    in.Description,
		CertificateURL: in.CertificateURL,
		Translations:   in.Translations.Sanitize(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.repo.Save(ctx, exp); err != nil {
		return nil, err
	}
	uc.publish(event.ContentEventTypeUpdated, exp.OwnerID, exp.ID)
	return exp, nil
}

type UpdateExperienceInput struct {
	ExperienceID   uuid.UUID
	OwnerID        uuid.UUID
	Company        string
	Title          string
	Period         string
	Description    string
	CertificateURL *string
	Translations   i18n.Translations
}

func (uc *ExperienceUseCase) UpdateExperience(ctx context.Context, in UpdateExperienceInput) (*experience.Experience, error) {
	exp, err := uc.repo.FindByID(ctx, in.ExperienceID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	exp.Company = in.Company
	exp.Title = in.Title
	exp.Period = in.Period
	exp.Current = experience.IsCurrentPeriod(in.Period)
	exp.Description = in.Description
	exp.CertificateURL = in.CertificateURL
	exp.Translations = in.Translations.Sanitize()

	if exp.Company == "" || exp.Title == "" {
		return nil, apperror.NewInvalidInput("company and title are required", nil)
	}

	if err := uc.repo.Update(ctx, exp); err != nil {
		return nil, err
	}
	uc.publish(event.ContentEventTypeUpdated, exp.OwnerID, exp.ID)
	return exp, nil
}

func (uc *ExperienceUseCase) DeleteExperience(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.publish(event.ContentEventTypeDeleted, ownerID, id)
	return nil
}

func (uc *ExperienceUseCase) GetExperience(ctx context.Context, id, ownerID uuid.UUID) (*experience.Experience, error) {
	return uc.repo.FindByID(ctx, id, ownerID)
}

func (uc *ExperienceUseCase) ListExperiences(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}

func (uc *ExperienceUseCase) publish(eventType string, ownerID, resourceID uuid.UUID) {
	go func() {
		payload := event.ContentEventPayload{
			EventType:    eventType,
			OwnerID:      ownerID,
			ResourceType: "experience",
			ResourceID:   resourceID,
		}
		if err := uc.kafkaClient.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka content event", err, zap.String("experience_id", resourceID.String()))
		}
	}()
}
