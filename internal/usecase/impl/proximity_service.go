package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/geo"
	"lostfound/internal/domain/repository"
	"lostfound/internal/domain/service"
	"lostfound/internal/errors"
	"lostfound/internal/usecase"
	"lostfound/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type distanceFunc func(a, b entity.GeoPoint) float64

type proximityService struct {
	logger       *slog.Logger
	zoneRepo     repository.ZoneRepository
	listingRepo  repository.ListingRepository
	locationRepo repository.ListingLocationRepository
	notifier     usecase.NotificationUsecase
	metrics      service.AlertMetrics
	recentWindow int
	chunkSize    int
}

// ProximityServiceParams holds dependencies for ProximityService, injected by Fx.
type ProximityServiceParams struct {
	fx.In

	Logger       *slog.Logger
	Config       *config.Config
	ZoneRepo     repository.ZoneRepository
	ListingRepo  repository.ListingRepository
	LocationRepo repository.ListingLocationRepository
	Notifier     usecase.NotificationUsecase
	Metrics      service.AlertMetrics
}

// NewProximityService creates a new proximity service instance
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	return &proximityService{
		logger:       params.Logger,
		zoneRepo:     params.ZoneRepo,
		listingRepo:  params.ListingRepo,
		locationRepo: params.LocationRepo,
		notifier:     params.Notifier,
		metrics:      params.Metrics,
		recentWindow: params.Config.Proximity.RecentWindow,
		chunkSize:    min(params.Config.Proximity.LookupChunkSize, repository.MaxIDsPerLookup),
	}
}

// MatchZones returns one MatchResult per zone whose circle contains the listing location,
// in zone order. Unmatchable zones and a missing or invalid location produce no matches.
func MatchZones(location entity.ListingLocation, zones []*entity.SubscriptionZone) []entity.MatchResult {
	return matchZones(location, zones, geo.DistanceKm)
}

func matchZones(location entity.ListingLocation, zones []*entity.SubscriptionZone, distance distanceFunc) []entity.MatchResult {
	matches := make([]entity.MatchResult, 0)
	if location.Geo == nil || !location.Geo.Valid() {
		return matches
	}

	for _, zone := range zones {
		if !zone.Matchable() {
			continue
		}

		// Inclusive boundary: a listing exactly on the circle matches.
		d := distance(*zone.Center, *location.Geo)
		if d <= zone.RadiusKm {
			matches = append(matches, entity.MatchResult{
				ZoneID:     zone.ID,
				ListingID:  location.ListingID,
				DistanceKm: d,
			})
		}
	}

	return matches
}

// nearestZone returns the closest zone containing point. zones must all be matchable.
func nearestZone(point entity.GeoPoint, zones []*entity.SubscriptionZone, distance distanceFunc) (uuid.UUID, float64, bool) {
	var (
		bestID   uuid.UUID
		bestDist float64
		found    bool
	)

	for _, zone := range zones {
		d := distance(*zone.Center, point)
		if d > zone.RadiusKm {
			continue
		}
		if !found || d < bestDist {
			bestID, bestDist, found = zone.ID, d, true
		}
	}

	return bestID, bestDist, found
}

// NotifyListingPublished implements usecase.ProximityUsecase.
func (s *proximityService) NotifyListingPublished(ctx context.Context, listingID uuid.UUID) (*entity.PublishReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("listing_id", listingID.String()))
	report := &entity.PublishReport{
		ListingID:  listingID,
		Matches:    []entity.MatchResult{},
		Deliveries: []entity.DeliveryResult{},
	}

	listing, err := s.listingRepo.FindListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, loadFailed(err, "listing")
	}
	if !listing.Status.IsPublic() {
		logger.WarnContext(ctx, "Skipping alerts for a listing that is not public", slog.String("status", string(listing.Status)))

		return report, nil
	}

	location, err := s.locationRepo.FindLocationByListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			logger.InfoContext(ctx, "Listing has no location, no alerts sent")

			return report, nil
		}

		return nil, loadFailed(err, "listing location")
	}
	if location.Geo == nil || !location.Geo.Valid() {
		logger.InfoContext(ctx, "Listing location has no usable coordinates, no alerts sent")

		return report, nil
	}

	zones, err := s.loadEnabledZones(ctx, logger, repository.ZoneFilter{EnabledOnly: true})
	if err != nil {
		return nil, err
	}

	matches := MatchZones(*location, zones)
	s.metrics.ObserveZonesSkipped(countUnmatchable(zones))
	s.metrics.ObserveForwardMatch(len(matches))
	report.Matches = matches

	if len(matches) == 0 {
		logger.DebugContext(ctx, "No zones matched", slog.Int("zones", len(zones)))

		return report, nil
	}

	zonesByID := make(map[uuid.UUID]*entity.SubscriptionZone, len(matches))
	for _, zone := range zones {
		zonesByID[zone.ID] = zone
	}

	report.Deliveries = s.notifier.NotifyMatches(ctx, listing, matches, zonesByID)

	logger.InfoContext(ctx, "Proximity alerts dispatched",
		slog.Int("zones", len(zones)),
		slog.Int("matches", len(matches)),
		slog.Int("delivered", countDelivered(report.Deliveries)),
	)

	return report, nil
}

// NearbyListings implements usecase.ProximityUsecase.
func (s *proximityService) NearbyListings(ctx context.Context, userID uuid.UUID) (*entity.NearbyResult, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveNearbyQuery(time.Since(start))
	}()

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("user_id", userID.String()))

	zones, err := s.loadEnabledZones(ctx, logger, repository.ZoneFilter{OwnerID: &userID, EnabledOnly: true})
	if err != nil {
		return nil, err
	}

	active := make([]*entity.SubscriptionZone, 0, len(zones))
	for _, zone := range zones {
		if zone.Matchable() {
			active = append(active, zone)
		}
	}
	if len(active) == 0 {
		return &entity.NearbyResult{NoActiveZones: true, Listings: []*entity.NearbyListing{}}, nil
	}

	locations, err := s.locationRepo.FindRecentLocations(ctx, s.recentWindow)
	if err != nil {
		return nil, loadFailed(err, "recent listing locations")
	}

	hits := make(map[uuid.UUID]*entity.NearbyListing)
	ids := make([]uuid.UUID, 0)
	for _, location := range locations {
		if location == nil || location.Geo == nil || !location.Geo.Valid() {
			continue
		}
		if _, seen := hits[location.ListingID]; seen {
			continue
		}

		zoneID, dist, ok := nearestZone(*location.Geo, active, geo.DistanceKm)
		if !ok {
			continue
		}

		hits[location.ListingID] = &entity.NearbyListing{Location: location, DistanceKm: dist, ZoneID: zoneID}
		ids = append(ids, location.ListingID)
	}

	result := &entity.NearbyResult{Listings: make([]*entity.NearbyListing, 0, len(ids))}
	for _, chunk := range util.Chunk(ids, s.chunkSize) {
		listings, err := s.listingRepo.FindListingsByIDs(ctx, chunk)
		if err != nil {
			return nil, loadFailed(err, "listings")
		}

		for _, listing := range listings {
			hit, ok := hits[listing.ID]
			if !ok || hit.Listing != nil || !listing.Status.IsPublic() {
				continue
			}
			hit.Listing = listing
			result.Listings = append(result.Listings, hit)
		}
	}

	slices.SortStableFunc(result.Listings, func(a, b *entity.NearbyListing) int {
		return b.Listing.CreatedAt.Compare(a.Listing.CreatedAt)
	})

	logger.DebugContext(ctx, "Nearby query finished",
		slog.Int("zones", len(active)),
		slog.Int("scanned", len(locations)),
		slog.Int("listings", len(result.Listings)),
	)

	return result, nil
}

// loadEnabledZones reads zones with the store-side enabled filter. When the filtered query fails
// it scans the unfiltered collection once and filters in memory.
func (s *proximityService) loadEnabledZones(ctx context.Context, logger *slog.Logger, filter repository.ZoneFilter) ([]*entity.SubscriptionZone, error) {
	zones, err := s.zoneRepo.FindZones(ctx, filter)
	if err == nil {
		return zones, nil
	}

	logger.WarnContext(ctx, "Filtered zone query failed, falling back to a full scan", slog.Any("error", err))

	filter.EnabledOnly = false
	all, err := s.zoneRepo.FindZones(ctx, filter)
	if err != nil {
		return nil, loadFailed(err, "subscription zones")
	}

	enabled := make([]*entity.SubscriptionZone, 0, len(all))
	for _, zone := range all {
		if zone != nil && zone.Enabled {
			enabled = append(enabled, zone)
		}
	}

	return enabled, nil
}

func loadFailed(err error, what string) error {
	return errors.Join(domainerrors.ErrLoadFailed.WithDetails(what), errors.WithStack(err))
}

func countUnmatchable(zones []*entity.SubscriptionZone) int {
	count := 0
	for _, zone := range zones {
		if !zone.Matchable() {
			count++
		}
	}

	return count
}

func countDelivered(results []entity.DeliveryResult) int {
	count := 0
	for _, result := range results {
		if result.Status == entity.DeliveryStatusDelivered {
			count++
		}
	}

	return count
}
