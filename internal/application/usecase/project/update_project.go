package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/adapters/event"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/internal/domain/project"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewUpdateProjectUseCase(pRepo project.Repository, kafka *event.KafkaProducerClient, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: pRepo,
		kafkaClient: kafka,
		logger:      log,
	}
}

type UpdateProjectInput struct {
	ProjectID     uuid.UUID
	OwnerID       uuid.UUID
	Title         string
	Description   string
	Category      string
	Type          project.Type
	RepositoryURL *string
	VideoURL      *string
	ImageURL      *string
	ClientName    *string
	Translations  i18n.Translations
	IsPublic      bool
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	p.Title = input.Title
	p.Description = input.Description
	p.Category = input.Category
	p.Type = input.Type
	p.RepositoryURL = input.RepositoryURL
	p.VideoURL = input.VideoURL
	p.ImageURL = input.ImageURL
	p.ClientName = input.ClientName
	p.Translations = input.Translations.Sanitize()
	p.IsPublic = input.IsPublic

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update project failed: %w", err)
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:    event.ContentEventTypeUpdated,
			OwnerID:      p.OwnerID,
			ResourceType: "project",
			ResourceID:   p.ID,
		}
		if err := uc.kafkaClient.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka 'content.updated' event", err, zap.String("project_id", p.ID.String()))
		}
	}()

	return &UpdateProjectOutput{Project: p}, nil
}
