// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when a listing has no location record.
var ErrLocationNotFound = errors.New("listing location not found")

// ListingLocationRepository reads the geo facts attached to listings.
type ListingLocationRepository interface {
	// FindLocationByListing retrieves the location of one listing.
	FindLocationByListing(ctx context.Context, listingID uuid.UUID) (*entity.ListingLocation, error)

	// FindRecentLocations returns at most limit locations, newest CreatedAt first.
	FindRecentLocations(ctx context.Context, limit int) ([]*entity.ListingLocation, error)
}
