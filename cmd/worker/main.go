package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/lucasmonteiro/vitrine/adapters/event"
	"github.com/lucasmonteiro/vitrine/adapters/persistence"
	"github.com/lucasmonteiro/vitrine/adapters/translation"
	translationUC "github.com/lucasmonteiro/vitrine/internal/application/usecase/translation"
	"github.com/lucasmonteiro/vitrine/internal/config"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

// The worker consumes content events and re-warms the machine
// translation cache for the affected owner.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Vitrine worker...")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	translator, err := translation.NewHTTPTranslator(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize translator", err)
	}

	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	articleRepo := persistence.NewPostgresArticleRepo(dbPool, appLogger)
	translationCache := persistence.NewRedisTranslationCache(redisClient, cfg.Translator.CacheTTL, appLogger)

	warmCacheUC := translationUC.NewWarmCacheUseCase(
		profileRepo, projectRepo, experienceRepo, articleRepo,
		translator, translationCache, appLogger,
	)

	contentConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "translation-warmer-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer contentConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicContentEvents)

	ctx := context.Background()
	for {
		msg, err := contentConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.ContentEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(contentConsumer, msg)
			continue
		}

		log.Printf("Processing event: [%s] %s/%s for owner %s",
			payload.EventType, payload.ResourceType, payload.ResourceID, payload.OwnerID)

		// Deletes need a re-warm too: the removed entity's strings must
		// stop shadowing anything, and TTLs handle the leftovers.
		if err := warmCacheUC.Execute(ctx, payload.OwnerID); err != nil {
			log.Printf("ERROR: Failed to warm cache for owner %s: %v", payload.OwnerID, err)
			continue
		}

		commitMessage(contentConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
