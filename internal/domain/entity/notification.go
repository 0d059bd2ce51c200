// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the outcome of one notification attempt.
type DeliveryStatus string

const (
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// Reasons recorded on failed deliveries that never reached the transport.
const (
	ReasonNoDestination = "no destination address"
	ReasonZoneMissing   = "zone not loaded"
)

// DeliveryResult records one notification attempt for one matched zone.
type DeliveryResult struct {
	ZoneID    uuid.UUID      `json:"zone_id"`
	ListingID uuid.UUID      `json:"listing_id"`
	To        string         `json:"to,omitempty"`
	Status    DeliveryStatus `json:"status"`
	Reason    string         `json:"reason,omitempty"`
}

// Delivered builds a successful result.
func Delivered(zoneID, listingID uuid.UUID, to string) DeliveryResult {
	return DeliveryResult{ZoneID: zoneID, ListingID: listingID, To: to, Status: DeliveryStatusDelivered}
}

// DeliveryFailed builds a failed result carrying reason.
func DeliveryFailed(zoneID, listingID uuid.UUID, to, reason string) DeliveryResult {
	return DeliveryResult{ZoneID: zoneID, ListingID: listingID, To: to, Status: DeliveryStatusFailed, Reason: reason}
}

// DeliveryLog is the persisted audit record of a DeliveryResult.
type DeliveryLog struct {
	ID         uuid.UUID      `json:"id"`
	ListingID  uuid.UUID      `json:"listing_id"`
	ZoneID     uuid.UUID      `json:"zone_id"`
	Recipient  string         `json:"recipient"`
	DistanceKm float64        `json:"distance_km"`
	Status     DeliveryStatus `json:"status"`
	Reason     string         `json:"reason"`
	SentAt     time.Time      `json:"sent_at"`
}
