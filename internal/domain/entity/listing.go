// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingKind tells whether the item was lost or found.
type ListingKind string

const (
	ListingKindLost  ListingKind = "lost"
	ListingKindFound ListingKind = "found"
)

// ListingStatus is the moderation state of a listing.
type ListingStatus string

const (
	ListingStatusPending   ListingStatus = "pending"
	ListingStatusPublished ListingStatus = "published"
	ListingStatusRejected  ListingStatus = "rejected"
	ListingStatusResolved  ListingStatus = "resolved"
)

// IsPublic reports whether listings in this status are visible to other users.
func (s ListingStatus) IsPublic() bool {
	return s == ListingStatusPublished
}

// ListingEvent names a requested status change.
type ListingEvent string

const (
	ListingEventApprove ListingEvent = "approve"
	ListingEventReject  ListingEvent = "reject"
	ListingEventResolve ListingEvent = "resolve"
	ListingEventReopen  ListingEvent = "reopen"
)

// Listing is a published lost or found item.
type Listing struct {
	ID           uuid.UUID     `json:"id"`
	OwnerID      uuid.UUID     `json:"owner_id"`
	Kind         ListingKind   `json:"kind"`
	Title        string        `json:"title"`
	CategoryName string        `json:"category_name"`
	Description  string        `json:"description"`
	PhotoKey     string        `json:"photo_key,omitempty"` // Object key of the main photo in the bucket.
	Status       ListingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ListingLocation is the geo fact attached to a listing. Geo is nil when the listing has no location.
type ListingLocation struct {
	ListingID  uuid.UUID `json:"listing_id"`
	Geo        *GeoPoint `json:"geo,omitempty"`
	PlaceLabel string    `json:"place_label,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Roles  Roles
}

// IsAdmin reports whether the actor may moderate listings.
func (a Actor) IsAdmin() bool {
	return a.Roles.Contains(RoleAdmin)
}
