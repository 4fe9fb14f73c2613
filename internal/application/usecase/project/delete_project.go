package project

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/adapters/event"
	"github.com/lucasmonteiro/vitrine/internal/domain/project"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewDeleteProjectUseCase(pRepo project.Repository, kafka *event.KafkaProducerClient, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: pRepo,
		kafkaClient: kafka,
		logger:      log,
	}
}

type DeleteProjectInput struct {
	ProjectID uuid.UUID
	OwnerID   uuid.UUID
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if err := uc.projectRepo.Delete(ctx, input.ProjectID, input.OwnerID); err != nil {
		return err
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:    event.ContentEventTypeDeleted,
			OwnerID:      input.OwnerID,
			ResourceType: "project",
			ResourceID:   input.ProjectID,
		}
		if err := uc.kafkaClient.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka 'content.deleted' event", err, zap.String("project_id", input.ProjectID.String()))
		}
	}()

	return nil
}
