package handler

import (
	"log/slog"
	"net/http"

	"lostfound/internal/delivery/http/middleware"
	"lostfound/internal/delivery/http/response"
	"lostfound/internal/domain/entity"
	"lostfound/internal/usecase"
	"lostfound/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// MIMEApplicationGeoJSON is the media type of the map export.
const MIMEApplicationGeoJSON = "application/geo+json"

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the "near my zones" dashboard.
type DashboardHandler struct {
	proximityUC usecase.ProximityUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		proximityUC: params.ProximityUC,
		logger:      params.Logger,
	}
}

// GetNearbyListings returns recent public listings inside the caller's enabled zones.
func (h *DashboardHandler) GetNearbyListings(c echo.Context) error {
	result, ok, err := h.nearby(c)
	if !ok {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// GetNearbyListingsGeoJSON returns the same answer as a FeatureCollection for map clients.
func (h *DashboardHandler) GetNearbyListingsGeoJSON(c echo.Context) error {
	result, ok, err := h.nearby(c)
	if !ok {
		return err
	}

	body, err := nearbyFeatureCollection(result).MarshalJSON()
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, MIMEApplicationGeoJSON, body)
}

// nearby runs the reverse query. When ok is false the response is already written or err must be returned.
func (h *DashboardHandler) nearby(c echo.Context) (*entity.NearbyResult, bool, error) {
	userID, found := middleware.GetUserID(c)
	if !found {
		return nil, false, response.Unauthorized(c, "UNAUTHORIZED", "User ID not found in context")
	}

	result, err := h.proximityUC.NearbyListings(c.Request().Context(), userID)
	if err != nil {
		return nil, false, response.HandleAppError(c, err)
	}

	return result, true, nil
}

func nearbyFeatureCollection(result *entity.NearbyResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{"no_active_zones": result.NoActiveZones}

	for _, nearby := range result.Listings {
		if nearby.Location == nil || nearby.Location.Geo == nil {
			continue
		}

		feature := geojson.NewFeature(nearby.Location.Geo.Point())
		feature.ID = nearby.Listing.ID.String()
		feature.Properties = geojson.Properties{
			"kind":        nearby.Listing.Kind,
			"title":       nearby.Listing.Title,
			"category":    nearby.Listing.CategoryName,
			"place_label": nearby.Location.PlaceLabel,
			"zone_id":     nearby.ZoneID.String(),
			"distance_km": nearby.DistanceKm,
			"distance":    util.FormatDistanceKm(nearby.DistanceKm),
			"created_at":  nearby.Listing.CreatedAt,
		}
		fc.Append(feature)
	}

	return fc
}
