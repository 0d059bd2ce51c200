// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// MatchResult is a transient (zone, listing) pair in range. DistanceKm <= the zone radius.
type MatchResult struct {
	ZoneID     uuid.UUID `json:"zone_id"`
	ListingID  uuid.UUID `json:"listing_id"`
	DistanceKm float64   `json:"distance_km"`
}

// PublishReport is the outcome of the forward match for one listing.
type PublishReport struct {
	ListingID  uuid.UUID        `json:"listing_id"`
	Matches    []MatchResult    `json:"matches"`
	Deliveries []DeliveryResult `json:"deliveries"`
}

// NearbyListing is one row of the dashboard reverse query.
type NearbyListing struct {
	Listing    *Listing         `json:"listing"`
	Location   *ListingLocation `json:"location"`
	DistanceKm float64          `json:"distance_km"` // Distance to the nearest matching zone.
	ZoneID     uuid.UUID        `json:"zone_id"`     // The zone that distance was measured against.
}

// NearbyResult is the reverse query answer. NoActiveZones differs from an empty Listings slice:
// the first means the user has nothing to match against, the second means nothing is nearby.
type NearbyResult struct {
	NoActiveZones bool             `json:"no_active_zones"`
	Listings      []*NearbyListing `json:"listings"`
}
