// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryLogRepository stores the audit trail of alert deliveries.
type DeliveryLogRepository interface {
	// BatchCreateDeliveryLogs persists multiple log entries in one round trip.
	BatchCreateDeliveryLogs(ctx context.Context, logs []*entity.DeliveryLog) error

	// FindDeliveryLogsByListing returns the newest logs for a listing, at most limit entries.
	FindDeliveryLogsByListing(ctx context.Context, listingID uuid.UUID, limit int) ([]*entity.DeliveryLog, error)
}
