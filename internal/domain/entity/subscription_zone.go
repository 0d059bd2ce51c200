// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// AllowedRadiiKm is the fixed set of radii a zone may use. Any other value makes the zone unmatchable.
var AllowedRadiiKm = []float64{0.5, 1, 2, 3, 4}

// IsAllowedRadius reports whether radiusKm is one of AllowedRadiiKm.
func IsAllowedRadius(radiusKm float64) bool {
	return slices.Contains(AllowedRadiiKm, radiusKm)
}

// SubscriptionZone is a user's standing interest in a circular area.
// The matcher only ever reads zones; they are owned by the user account.
type SubscriptionZone struct {
	ID          uuid.UUID `json:"id"`           // Opaque unique identifier.
	OwnerID     uuid.UUID `json:"owner_id"`     // The user who owns this zone.
	Enabled     bool      `json:"enabled"`      // Disabled zones never match.
	Center      *GeoPoint `json:"center"`       // Required for an enabled zone to match.
	RadiusKm    float64   `json:"radius_km"`    // One of AllowedRadiiKm.
	NotifyEmail string    `json:"notify_email"` // Alert destination; falls back to the owner's account email.
	Label       string    `json:"label"`        // Display name only.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Matchable reports whether the zone can take part in matching at all.
func (z *SubscriptionZone) Matchable() bool {
	if z == nil || !z.Enabled {
		return false
	}
	if !IsAllowedRadius(z.RadiusKm) {
		return false
	}

	return z.Center != nil && z.Center.Valid()
}
