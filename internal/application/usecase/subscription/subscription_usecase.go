package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/adapters/event"
	"github.com/lucasmonteiro/vitrine/internal/application/service"
	"github.com/lucasmonteiro/vitrine/internal/domain/plan"
	"github.com/lucasmonteiro/vitrine/internal/domain/subscription"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type SubscriptionUseCase struct {
	subsRepo    subscription.Repository
	gateway     service.PaymentGateway
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewSubscriptionUseCase(r subscription.Repository, gw service.PaymentGateway, kafka *event.KafkaProducerClient, log logger.Logger) *SubscriptionUseCase {
	return &SubscriptionUseCase{subsRepo: r, gateway: gw, kafkaClient: kafka, logger: log}
}

// SubscriptionStatus is what the dashboard shows: current tier, status
// and the limits that tier grants.
type SubscriptionStatus struct {
	Tier   plan.Tier           `json:"tier"`
	Status subscription.Status `json:"status"`
	Active bool                `json:"active"`
	Limits plan.Limits         `json:"limits"`
}

func (uc *SubscriptionUseCase) GetStatus(ctx context.Context, ownerID uuid.UUID) (*SubscriptionStatus, error) {
	sub, err := uc.subsRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load subscription failed: %w", err)
	}
	now := time.Now().UTC()
	tier := sub.EffectiveTier(now)
	status := &SubscriptionStatus{
		Tier:   tier,
		Active: sub != nil && sub.IsActive(now),
		Limits: plan.LimitsFor(tier),
	}
	if sub != nil {
		status.Status = sub.Status
	}
	return status, nil
}

// CreateCheckout asks the payment gateway for a hosted checkout URL for
// the requested plan. The subscription itself is only updated later by
// the gateway webhook; this just starts the flow.
func (uc *SubscriptionUseCase) CreateCheckout(ctx context.Context, ownerID uuid.UUID, planID string) (string, error) {
	tier := plan.Tier(planID)
	if tier != plan.TierPro && tier != plan.TierPremium {
		return "", apperror.NewInvalidInput("plan_id must be pro or premium", nil)
	}

	initPoint, err := uc.gateway.CreatePreference(ctx, planID, ownerID)
	if err != nil {
		return "", fmt.Errorf("create checkout preference failed: %w", err)
	}

	go func() {
		payload := event.BillingEventPayload{
			EventType: event.BillingEventTypeCheckoutStarted,
			OwnerID:   ownerID,
			PlanID:    planID,
		}
		if err := uc.kafkaClient.PublishBillingEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka billing event", err, zap.String("owner_id", ownerID.String()))
		}
	}()

	return initPoint, nil
}
