package mongo

import (
	"testing"
	"time"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// roundTripZone stores raw as a BSON document and reads it back through zoneDocument.
func roundTripZone(t *testing.T, raw bson.M) *zoneDocument {
	t.Helper()

	data, err := bson.Marshal(raw)
	require.NoError(t, err)

	var doc zoneDocument
	require.NoError(t, bson.Unmarshal(data, &doc))

	return &doc
}

func TestToZoneEntity_CenterShapes(t *testing.T) {
	id := uuid.New()
	owner := uuid.New()
	decimal, err := primitive.ParseDecimal128("24.1052")
	require.NoError(t, err)

	tests := []struct {
		name   string
		center any
		want   *entity.GeoPoint
	}{
		{name: "plain numbers", center: bson.M{"lat": 56.9496, "lng": 24.1052}, want: &entity.GeoPoint{Lat: 56.9496, Lng: 24.1052}},
		{name: "int32 and string", center: bson.M{"lat": int32(56), "lng": "24.5"}, want: &entity.GeoPoint{Lat: 56, Lng: 24.5}},
		{name: "nested geo", center: bson.M{"geo": bson.M{"lat": 56.9496, "lng": 24.1052}}, want: &entity.GeoPoint{Lat: 56.9496, Lng: 24.1052}},
		{name: "ordered document", center: bson.D{{Key: "lat", Value: 56.9496}, {Key: "lng", Value: 24.1052}}, want: &entity.GeoPoint{Lat: 56.9496, Lng: 24.1052}},
		{name: "decimal128", center: bson.M{"lat": 56.9496, "lng": decimal}, want: &entity.GeoPoint{Lat: 56.9496, Lng: 24.1052}},
		{name: "non numeric", center: bson.M{"lat": "north", "lng": 24.1052}, want: nil},
		{name: "string center", center: "Riga", want: nil},
		{name: "out of range", center: bson.M{"lat": 120.0, "lng": 24.1052}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := roundTripZone(t, bson.M{
				"_id":       id.String(),
				"owner_id":  owner.String(),
				"enabled":   true,
				"center":    tt.center,
				"radius_km": int32(2),
			})

			zone, ok := toZoneEntity(doc)
			require.True(t, ok)
			assert.Equal(t, id, zone.ID)
			assert.Equal(t, owner, zone.OwnerID)
			assert.Equal(t, 2.0, zone.RadiusKm)
			if tt.want == nil {
				assert.Nil(t, zone.Center)
				assert.False(t, zone.Matchable())

				return
			}
			require.NotNil(t, zone.Center)
			assert.InDelta(t, tt.want.Lat, zone.Center.Lat, 1e-9)
			assert.InDelta(t, tt.want.Lng, zone.Center.Lng, 1e-9)
		})
	}
}

func TestToZoneEntity_MissingCenter(t *testing.T) {
	doc := roundTripZone(t, bson.M{
		"_id":       uuid.NewString(),
		"owner_id":  uuid.NewString(),
		"enabled":   true,
		"radius_km": 1.0,
	})

	zone, ok := toZoneEntity(doc)
	require.True(t, ok)
	assert.Nil(t, zone.Center)
}

func TestToZoneEntity_RejectsBadIDs(t *testing.T) {
	_, ok := toZoneEntity(&zoneDocument{ID: "not-a-uuid", OwnerID: uuid.NewString()})
	assert.False(t, ok)

	_, ok = toZoneEntity(&zoneDocument{ID: uuid.NewString(), OwnerID: ""})
	assert.False(t, ok)
}

func TestToListingLocationEntity(t *testing.T) {
	listingID := uuid.New()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	data, err := bson.Marshal(bson.M{
		"_id":         listingID.String(),
		"geo":         bson.M{"lat": "56.9577", "lng": "24.1052"},
		"place_label": "Central Station",
		"created_at":  created,
	})
	require.NoError(t, err)

	var doc listingLocationDocument
	require.NoError(t, bson.Unmarshal(data, &doc))

	location, ok := toListingLocationEntity(&doc)
	require.True(t, ok)
	assert.Equal(t, listingID, location.ListingID)
	assert.Equal(t, "Central Station", location.PlaceLabel)
	assert.True(t, created.Equal(location.CreatedAt))
	require.NotNil(t, location.Geo)
	assert.InDelta(t, 56.9577, location.Geo.Lat, 1e-9)
}

func TestToUserEntity_FiltersRoles(t *testing.T) {
	user, ok := toUserEntity(&userDocument{ID: uuid.NewString(), Email: "a@example.com", Roles: []string{"admin", "root"}})

	require.True(t, ok)
	assert.Equal(t, entity.Roles{entity.RoleAdmin}, user.Roles)
}
