package service

import (
	"context"

	"github.com/google/uuid"
)

// PaymentGateway creates checkout preferences and returns the redirect
// URL the frontend sends the user to.
type PaymentGateway interface {
	CreatePreference(ctx context.Context, planID string, userID uuid.UUID) (string, error)
}
