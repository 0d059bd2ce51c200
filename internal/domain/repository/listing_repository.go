// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// MaxIDsPerLookup is the largest id list FindListingsByIDs accepts in one call.
const MaxIDsPerLookup = 10

// Domain-specific errors for listing persistence.
var (
	// ErrListingNotFound is returned when no listing has the requested id.
	ErrListingNotFound = errors.New("listing not found")
	// ErrStatusConflict is returned when the stored status no longer equals the expected one.
	ErrStatusConflict = errors.New("listing status changed concurrently")
	// ErrTooManyIDs is returned when a lookup exceeds MaxIDsPerLookup.
	ErrTooManyIDs = errors.New("too many ids in one lookup")
)

// ListingRepository reads listings and moves them between statuses.
type ListingRepository interface {
	// FindListingByID retrieves a single listing.
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindListingsByIDs retrieves the listings whose ids are in ids. Missing ids are simply absent
	// from the result. Callers must chunk ids to at most MaxIDsPerLookup.
	FindListingsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Listing, error)

	// UpdateListingStatus sets status to `to` only if it is still `from`.
	UpdateListingStatus(ctx context.Context, id uuid.UUID, from, to entity.ListingStatus) error
}
