package event

import "github.com/google/uuid"

const (
	ContentEventTypeUpdated = "content.updated"
	ContentEventTypeDeleted = "content.deleted"

	BillingEventTypeCheckoutStarted = "billing.checkout_started"
)

// ContentEventPayload announces that an owner's translatable content
// changed. The worker reacts by re-warming the translation cache.
type ContentEventPayload struct {
	EventType    string    `json:"event_type"`
	OwnerID      uuid.UUID `json:"owner_id"`
	ResourceType string    `json:"resource_type"`
	ResourceID   uuid.UUID `json:"resource_id"`
}

type BillingEventPayload struct {
	EventType string    `json:"event_type"`
	OwnerID   uuid.UUID `json:"owner_id"`
	PlanID    string    `json:"plan_id"`
}
