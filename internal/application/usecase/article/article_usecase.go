package article

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/adapters/event"
	"github.com/lucasmonteiro/vitrine/internal/domain/article"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/internal/domain/plan"
	"github.com/lucasmonteiro/vitrine/internal/domain/subscription"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type ArticleUseCase struct {
	repo        article.Repository
	subsRepo    subscription.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewArticleUseCase(r article.Repository, sRepo subscription.Repository, kafka *event.KafkaProducerClient, log logger.Logger) *ArticleUseCase {
	return &ArticleUseCase{repo: r, subsRepo: sRepo, kafkaClient: kafka, logger: log}
}

type CreateArticleInput struct {
	OwnerID         uuid.UUID
	Title           string
	Journal         string
	Year            int
	DOI             *string
	URL             *string
	Abstract        string
	Translations    i18n.Translations
	ShowInPortfolio bool
	ShowInCV        bool
}

func (uc *ArticleUseCase) CreateArticle(ctx context.Context, in CreateArticleInput) (*article.ScientificArticle, error) {
	if in.Title == "" {
		return nil, apperror.NewInvalidInput("article title is required", nil)
	}

	sub, err := uc.subsRepo.GetByOwner(ctx, in.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("load subscription failed: %w", err)
	}
	tier := sub.EffectiveTier(time.Now().UTC())

	count, err := uc.repo.CountByOwner(ctx, in.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("count articles failed: %w", err)
	}
	if count >= plan.LimitsFor(tier).MaxArticles {
		return nil, apperror.NewPlanLimit("articles", string(tier))
	}

	now := time.Now().UTC()
	art := &article.ScientificArticle{
		ID:              uuid.New(),
		OwnerID:         in.OwnerID,
		Title:           in.Title,
		Journal:         in.Journal,
		Year:            in.Year,
		DOI:             in.DOI,
		URL:             in.URL,
		Abstract:        in.Abstract,
		Translations:    in.Translations.Sanitize(),
		ShowInPortfolio: in.ShowInPortfolio,
		ShowInCV:        in.ShowInCV,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.repo.Save(ctx, art); err != nil {
		return nil, err
	}
	uc.publish(event.ContentEventTypeUpdated, art.OwnerID, art.ID)
	return art, nil
}

type UpdateArticleInput struct {
	ArticleID       uuid.UUID
	OwnerID         uuid.UUID
	Title           string
	Journal         string
	Year            int
	DOI             *string
	URL             *string
	Abstract        string
	Translations    i18n.Translations
	ShowInPortfolio bool
	ShowInCV        bool
}

func (uc *ArticleUseCase) UpdateArticle(ctx context.Context, in UpdateArticleInput) (*article.ScientificArticle, error) {
	art, err := uc.repo.FindByID(ctx, in.ArticleID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	art.Title = in.Title
	art.Journal = in.Journal
	art.Year = in.Year
	art.DOI = in.DOI
	art.URL = in.URL
	art.Abstract = in.Abstract
	art.Translations = in.Translations.Sanitize()
	art.ShowInPortfolio = in.ShowInPortfolio
	art.ShowInCV = in.ShowInCV

	if art.Title == "" {
		return nil, apperror.NewInvalidInput("article title is required", nil)
	}

	if err := uc.repo.Update(ctx, art); err != nil {
		return nil, err
	}
	uc.publish(event.ContentEventTypeUpdated, art.OwnerID, art.ID)
	return art, nil
}

func (uc *ArticleUseCase) DeleteArticle(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.publish(event.ContentEventTypeDeleted, ownerID, id)
	return nil
}

func (uc *ArticleUseCase) GetArticle(ctx context.Context, id, ownerID uuid.UUID) (*article.ScientificArticle, error) {
	return uc.repo.FindByID(ctx, id, ownerID)
}

func (uc *ArticleUseCase) ListArticles(ctx context.Context, ownerID uuid.UUID) ([]*article.ScientificArticle, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}

func (uc *ArticleUseCase) publish(eventType string, ownerID, resourceID uuid.UUID) {
	go func() {
		payload := event.ContentEventPayload{
			EventType:    eventType,
			OwnerID:      ownerID,
			ResourceType: "article",
			ResourceID:   resourceID,
		}
		if err := uc.kafkaClient.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka content event", err, zap.String("article_id", resourceID.String()))
		}
	}()
}
