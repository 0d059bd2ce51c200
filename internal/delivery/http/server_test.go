package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lostfound/config"
	"lostfound/internal/delivery/http/middleware"
	"lostfound/internal/delivery/http/router"
	"lostfound/internal/delivery/http/router/handler"
	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/service"
	"lostfound/internal/infra/metrics"
	mockService "lostfound/internal/mocks/service"
	mockUsecase "lostfound/internal/mocks/usecase"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "test-access-token"

type serverFixture struct {
	echo      *echo.Echo
	userID    uuid.UUID
	proximity *mockUsecase.MockProximityUsecase
	listings  *mockUsecase.MockListingUsecase
}

func newServerFixture(t *testing.T, roles ...string) *serverFixture {
	t.Helper()

	f := &serverFixture{
		userID:    uuid.New(),
		proximity: mockUsecase.NewMockProximityUsecase(t),
		listings:  mockUsecase.NewMockListingUsecase(t),
	}

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(testToken).Return(&service.Claims{
		UserID: f.userID,
		Roles:  append([]string{"user"}, roles...),
		Type:   service.TokenTypeAccess,
	}, nil).Maybe()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f.echo = NewEcho(cfg, logger, router.RouterParams{
		DashboardHandler: handler.NewDashboardHandler(handler.DashboardHandlerParams{ProximityUC: f.proximity, Logger: logger}),
		ListingHandler:   handler.NewListingHandler(handler.ListingHandlerParams{ListingUC: f.listings, Logger: logger}),
		AuthMiddleware:   middleware.NewAuthMiddleware(tokenSvc),
		Metrics:          metrics.NewRegistry(),
	})

	return f
}

func (f *serverFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *domainerrors.ErrorInfo {
	t.Helper()

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func nearbyFixture() *entity.NearbyResult {
	listing := &entity.Listing{
		ID:           uuid.New(),
		Kind:         entity.ListingKindFound,
		Title:        "Blue umbrella",
		CategoryName: "Accessories",
		Status:       entity.ListingStatusPublished,
		CreatedAt:    time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}

	return &entity.NearbyResult{
		Listings: []*entity.NearbyListing{{
			Listing:    listing,
			Location:   &entity.ListingLocation{ListingID: listing.ID, Geo: &entity.GeoPoint{Lat: 56.9496, Lng: 24.1052}, PlaceLabel: "Old Town"},
			DistanceKm: 0.84,
			ZoneID:     uuid.New(),
		}},
	}
}

func TestServer_HealthAndMetricsArePublic(t *testing.T) {
	f := newServerFixture(t)

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	f.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lostfound_forward_scans_total")
}

func TestServer_APIRequiresToken(t *testing.T) {
	f := newServerFixture(t)

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/nearby", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, rec).Code)
}

func TestServer_NearbyListings(t *testing.T) {
	f := newServerFixture(t)
	result := nearbyFixture()
	f.proximity.EXPECT().NearbyListings(mock.Anything, f.userID).Return(result, nil)

	rec := f.do(http.MethodGet, "/api/v1/dashboard/nearby", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data entity.NearbyResult `json:"data"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Data.NoActiveZones)
	require.Len(t, body.Data.Listings, 1)
	assert.Equal(t, "Blue umbrella", body.Data.Listings[0].Listing.Title)
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), body.Meta.RequestID)
}

func TestServer_NearbyListingsGeoJSON(t *testing.T) {
	f := newServerFixture(t)
	result := nearbyFixture()
	f.proximity.EXPECT().NearbyListings(mock.Anything, f.userID).Return(result, nil)

	rec := f.do(http.MethodGet, "/api/v1/dashboard/nearby.geojson", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, handler.MIMEApplicationGeoJSON, rec.Header().Get(echo.HeaderContentType))

	var fc struct {
		Type          string `json:"type"`
		NoActiveZones bool   `json:"no_active_zones"`
		Features      []struct {
			ID       string `json:"id"`
			Geometry struct {
				Type        string     `json:"type"`
				Coordinates [2]float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	feature := fc.Features[0]
	assert.Equal(t, result.Listings[0].Listing.ID.String(), feature.ID)
	assert.Equal(t, "Point", feature.Geometry.Type)
	assert.Equal(t, [2]float64{24.1052, 56.9496}, feature.Geometry.Coordinates)
	assert.Equal(t, "0.8 km", feature.Properties["distance"])
}

func TestServer_NearbyListingsNoActiveZones(t *testing.T) {
	f := newServerFixture(t)
	f.proximity.EXPECT().NearbyListings(mock.Anything, f.userID).
		Return(&entity.NearbyResult{NoActiveZones: true, Listings: []*entity.NearbyListing{}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/dashboard/nearby.geojson", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"no_active_zones":true`)
	assert.Contains(t, rec.Body.String(), `"features":[]`)
}

func TestServer_NearbyListingsLoadFailure(t *testing.T) {
	f := newServerFixture(t)
	f.proximity.EXPECT().NearbyListings(mock.Anything, f.userID).
		Return(nil, domainerrors.ErrLoadFailed.WithDetails("zones"))

	rec := f.do(http.MethodGet, "/api/v1/dashboard/nearby", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "LOAD_FAILED", info.Code)
	assert.Nil(t, info.Details)
}

func TestServer_TransitionListing(t *testing.T) {
	f := newServerFixture(t, "admin")
	listing := &entity.Listing{ID: uuid.New(), Status: entity.ListingStatusPublished}
	report := &entity.PublishReport{ListingID: listing.ID}

	f.listings.EXPECT().
		TransitionListing(mock.Anything, mock.MatchedBy(func(actor entity.Actor) bool {
			return actor.UserID == f.userID && actor.IsAdmin()
		}), listing.ID, entity.ListingEventApprove).
		Return(&usecase.TransitionResult{
			Listing: listing,
			From:    entity.ListingStatusPending,
			To:      entity.ListingStatusPublished,
			Report:  report,
		}, nil)

	rec := f.do(http.MethodPost, "/api/v1/listings/"+listing.ID.String()+"/transitions", `{"event":"approve"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"from":"pending"`)
	assert.Contains(t, rec.Body.String(), `"to":"published"`)
	assert.Contains(t, rec.Body.String(), `"report":{`)
}

func TestServer_TransitionListingRejectsBadInput(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/listings/not-a-uuid/transitions", `{"event":"approve"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)

	rec = f.do(http.MethodPost, "/api/v1/listings/"+uuid.NewString()+"/transitions", `{"event":"delete"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", info.Code)
	assert.Equal(t, "event must be one of: approve reject resolve reopen", info.Details)

	rec = f.do(http.MethodPost, "/api/v1/listings/"+uuid.NewString()+"/transitions", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "event is required", decodeError(t, rec).Details)
}

func TestServer_TransitionListingConflict(t *testing.T) {
	f := newServerFixture(t)
	listingID := uuid.New()
	f.listings.EXPECT().TransitionListing(mock.Anything, mock.Anything, listingID, entity.ListingEventResolve).
		Return(nil, domainerrors.ErrInvalidTransition.WithDetails("cannot resolve a pending listing"))

	rec := f.do(http.MethodPost, "/api/v1/listings/"+listingID.String()+"/transitions", `{"event":"resolve"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "INVALID_TRANSITION", info.Code)
	assert.Equal(t, "cannot resolve a pending listing", info.Details)
}

func TestServer_ListingDeliveries(t *testing.T) {
	f := newServerFixture(t)
	listingID := uuid.New()
	logs := []*entity.DeliveryLog{{
		ID:        uuid.New(),
		ListingID: listingID,
		ZoneID:    uuid.New(),
		Recipient: "zone-owner@example.com",
		Status:    entity.DeliveryStatusDelivered,
	}}
	f.listings.EXPECT().ListDeliveries(mock.Anything, mock.Anything, listingID).Return(logs, nil)

	rec := f.do(http.MethodGet, "/api/v1/listings/"+listingID.String()+"/deliveries", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "zone-owner@example.com")
}

func TestServer_ListingDeliveriesForbidden(t *testing.T) {
	f := newServerFixture(t)
	listingID := uuid.New()
	f.listings.EXPECT().ListDeliveries(mock.Anything, mock.Anything, listingID).Return(nil, domainerrors.ErrForbidden)

	rec := f.do(http.MethodGet, "/api/v1/listings/"+listingID.String()+"/deliveries", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decodeError(t, rec).Code)
}
