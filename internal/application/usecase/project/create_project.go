package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/adapters/event"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/internal/domain/plan"
	"github.com/lucasmonteiro/vitrine/internal/domain/project"
	"github.com/lucasmonteiro/vitrine/internal/domain/subscription"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
	subsRepo    subscription.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewCreateProjectUseCase(
	pRepo project.Repository,
	sRepo subscription.Repository,
	kafka *event.KafkaProducerClient,
	log logger.Logger,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: pRepo,
		subsRepo:    sRepo,
		kafkaClient: kafka,
		logger:      log,
	}
}

type CreateProjectInput struct {
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

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {

	if input.Type == "" {
		input.Type = project.TypeStandard
	}

	sub, err := uc.subsRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("load subscription failed: %w", err)
	}
	tier := sub.EffectiveTier(time.Now().UTC())

	count, err := uc.projectRepo.CountByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("count projects failed: %w", err)
	}
	if count >= plan.LimitsFor(tier).MaxProjects {
		return nil, apperror.NewPlanLimit("projects", string(tier))
	}

	now := time.Now().UTC()

	newProject := &project.Project{
		ID:            uuid.New(),
		OwnerID:       input.OwnerID,
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Type:          input.Type,
		RepositoryURL: input.RepositoryURL,
		VideoURL:      input.VideoURL,
		ImageURL:      input.ImageURL,
		ClientName:    input.ClientName,
		Translations:  input.Translations.Sanitize(),
		IsPublic:      input.IsPublic,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := newProject.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, fmt.Errorf("save project failed: %w", err)
	}

	uc.publishUpdated(newProject)

	return &CreateProjectOutput{Project: newProject}, nil
}

func (uc *CreateProjectUseCase) publishUpdated(p *project.Project) {
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
}
