package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/vitrine/internal/domain/plan"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusTrialing Status = "trialing"
	StatusCanceled Status = "canceled"
	StatusExpired  Status = "expired"
)

// Subscription is read-mostly and drives plan-limit gating.
type Subscription struct {
	OwnerID     uuid.UUID  `json:"owner_id"`
	Tier        plan.Tier  `json:"tier"`
	Status      Status     `json:"status"`
	TrialEndsAt *time.Time `json:"trial_ends_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsActive honors the trial window: a trialing subscription counts until
// the trial deadline passes.
func (s *Subscription) IsActive(now time.Time) bool {
	switch s.Status {
	case StatusActive:
		return true
	case StatusTrialing:
		return s.TrialEndsAt == nil || now.Before(*s.TrialEndsAt)
	}
	return false
}

// EffectiveTier is the tier used for plan gating. Inactive subscriptions
// fall back to basic.
func (s *Subscription) EffectiveTier(now time.Time) plan.Tier {
	if s == nil || !s.IsActive(now) {
		return plan.TierBasic
	}
	return s.Tier
}

type Repository interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Subscription, error)
	Upsert(ctx context.Context, s *Subscription) error
}
