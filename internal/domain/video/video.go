package video

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FeaturedVideo is the single highlighted video on a portfolio page.
type FeaturedVideo struct {
	OwnerID   uuid.UUID `json:"owner_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Provider  string    `json:"provider"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*FeaturedVideo, error)
	Upsert(ctx context.Context, v *FeaturedVideo) error
	Delete(ctx context.Context, ownerID uuid.UUID) error
}
