package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const recentLocationsKeyPrefix = "lostfound:recent_locations:"

// listingLocationCache keeps the recent-location window in Redis for a short TTL.
// A cache failure is logged and the read falls through to the store.
type listingLocationCache struct {
	inner  repository.ListingLocationRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewListingLocationCache wraps inner with a read-through cache for FindRecentLocations.
func NewListingLocationCache(
	inner repository.ListingLocationRepository,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) repository.ListingLocationRepository {
	return &listingLocationCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// FindLocationByListing always reads the store; single lookups are not worth caching.
func (c *listingLocationCache) FindLocationByListing(ctx context.Context, listingID uuid.UUID) (*entity.ListingLocation, error) {
	return c.inner.FindLocationByListing(ctx, listingID)
}

// FindRecentLocations serves the window from Redis when present.
func (c *listingLocationCache) FindRecentLocations(ctx context.Context, limit int) ([]*entity.ListingLocation, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	key := recentLocationsKeyPrefix + strconv.Itoa(limit)

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var locations []*entity.ListingLocation
		if jsonErr := json.Unmarshal(cached, &locations); jsonErr == nil {
			return locations, nil
		}
		logger.Warn("Discarding unreadable recent-locations cache entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		logger.Warn("Recent-locations cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	locations, err := c.inner.FindRecentLocations(ctx, limit)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(locations)
	if err != nil {
		return locations, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn("Recent-locations cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return locations, nil
}
