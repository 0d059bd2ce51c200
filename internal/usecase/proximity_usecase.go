// Package usecase declares the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// ProximityUsecase matches listings against subscription zones in both directions.
type ProximityUsecase interface {
	// NotifyListingPublished runs the forward match for a listing that just became public
	// and alerts every matching zone. Mail failures are reported per delivery, never as an error.
	NotifyListingPublished(ctx context.Context, listingID uuid.UUID) (*entity.PublishReport, error)

	// NearbyListings runs the dashboard reverse query for one user.
	NearbyListings(ctx context.Context, userID uuid.UUID) (*entity.NearbyResult, error)
}
