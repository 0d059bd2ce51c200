package impl

import (
	"io"
	"log/slog"
	"time"

	"lostfound/config"
	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

const testBaseURL = "https://lostfound.test"

// riga is the reference point used by the distance fixtures.
var riga = entity.GeoPoint{Lat: 56.9496, Lng: 24.1052}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{BaseURL: testBaseURL},
		Proximity: &config.ProximityConfig{
			RecentWindow:      200,
			LookupChunkSize:   10,
			NotifyConcurrency: 4,
			SendTimeout:       time.Second,
		},
	}
}

func newZone(center *entity.GeoPoint, radiusKm float64) *entity.SubscriptionZone {
	return &entity.SubscriptionZone{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Enabled:     true,
		Center:      center,
		RadiusKm:    radiusKm,
		NotifyEmail: "zone-owner@example.com",
		Label:       "Home",
	}
}

func newPublishedListing(createdAt time.Time) *entity.Listing {
	return &entity.Listing{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Kind:         entity.ListingKindFound,
		Title:        "Blue umbrella",
		CategoryName: "Accessories",
		Status:       entity.ListingStatusPublished,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

// northOf returns a point distanceKm due north of p on the 6371 km sphere.
func northOf(p entity.GeoPoint, distanceKm float64) entity.GeoPoint {
	const kmPerDegree = 111.19492664455873

	return entity.GeoPoint{Lat: p.Lat + distanceKm/kmPerDegree, Lng: p.Lng}
}

func geoPtr(p entity.GeoPoint) *entity.GeoPoint {
	return &p
}
