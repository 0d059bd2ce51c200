package usecase

import (
	"context"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// TransitionResult describes an applied status change.
type TransitionResult struct {
	Listing *entity.Listing       `json:"listing"`
	From    entity.ListingStatus  `json:"from"`
	To      entity.ListingStatus  `json:"to"`
	Report  *entity.PublishReport `json:"publish_report,omitempty"` // Set when the listing became public.
}

// ListingUsecase moves listings through their moderation lifecycle.
type ListingUsecase interface {
	// TransitionListing applies event to the listing on behalf of actor.
	TransitionListing(ctx context.Context, actor entity.Actor, listingID uuid.UUID, event entity.ListingEvent) (*TransitionResult, error)

	// ListDeliveries returns the alert audit trail of a listing to its owner or an admin.
	ListDeliveries(ctx context.Context, actor entity.Actor, listingID uuid.UUID) ([]*entity.DeliveryLog, error)
}
