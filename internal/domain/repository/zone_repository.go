// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// ZoneFilter narrows a zone scan. The zero value reads the whole collection.
type ZoneFilter struct {
	OwnerID     *uuid.UUID // Only zones owned by this user.
	EnabledOnly bool       // Only zones with enabled == true, filtered by the store.
}

// ZoneRepository reads subscription zones. Zones are never written by the matcher.
type ZoneRepository interface {
	// FindZones returns every zone that satisfies filter, in store order.
	FindZones(ctx context.Context, filter ZoneFilter) ([]*entity.SubscriptionZone, error)
}
