package mongo

import (
	"testing"
	"time"

	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestZoneRepository_FindZones(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("skips documents with unusable ids", func(mt *mtest.T) {
		good := uuid.New()
		owner := uuid.New()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "lostfound."+zonesCollection, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: good.String()},
				{Key: "owner_id", Value: owner.String()},
				{Key: "enabled", Value: true},
				{Key: "center", Value: bson.D{{Key: "lat", Value: 56.9496}, {Key: "lng", Value: 24.1052}}},
				{Key: "radius_km", Value: 1.0},
			},
			bson.D{
				{Key: "_id", Value: "legacy-zone"},
				{Key: "owner_id", Value: owner.String()},
				{Key: "enabled", Value: true},
			},
		))

		repo := NewZoneRepository(mt.DB)
		zones, err := repo.FindZones(t.Context(), repository.ZoneFilter{OwnerID: &owner, EnabledOnly: true})

		require.NoError(t, err)
		require.Len(t, zones, 1)
		assert.Equal(t, good, zones[0].ID)
		assert.True(t, zones[0].Matchable())
	})

	mt.Run("skips documents that do not decode", func(mt *mtest.T) {
		good := uuid.New()
		owner := uuid.New()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "lostfound."+zonesCollection, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: uuid.NewString()},
				{Key: "owner_id", Value: owner.String()},
				{Key: "enabled", Value: true},
				{Key: "center", Value: bson.D{{Key: "lat", Value: 56.9496}, {Key: "lng", Value: 24.1052}}},
				{Key: "radius_km", Value: "1"},
			},
			bson.D{
				{Key: "_id", Value: good.String()},
				{Key: "owner_id", Value: owner.String()},
				{Key: "enabled", Value: true},
				{Key: "center", Value: bson.D{{Key: "lat", Value: 56.9496}, {Key: "lng", Value: 24.1052}}},
				{Key: "radius_km", Value: 1.0},
			},
		))

		repo := NewZoneRepository(mt.DB)
		zones, err := repo.FindZones(t.Context(), repository.ZoneFilter{EnabledOnly: true})

		require.NoError(t, err)
		require.Len(t, zones, 1)
		assert.Equal(t, good, zones[0].ID)
	})

	mt.Run("propagates command errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "unsupported filter",
		}))

		repo := NewZoneRepository(mt.DB)
		_, err := repo.FindZones(t.Context(), repository.ZoneFilter{EnabledOnly: true})

		assert.ErrorContains(t, err, "failed to find zones")
	})
}

func TestListingRepository_FindListingsByIDs(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("rejects oversized lookups without a round trip", func(mt *mtest.T) {
		ids := make([]uuid.UUID, repository.MaxIDsPerLookup+1)
		for i := range ids {
			ids[i] = uuid.New()
		}

		repo := NewListingRepository(mt.DB)
		_, err := repo.FindListingsByIDs(t.Context(), ids)

		assert.True(t, errors.Is(err, repository.ErrTooManyIDs))
	})

	mt.Run("empty input", func(mt *mtest.T) {
		repo := NewListingRepository(mt.DB)
		listings, err := repo.FindListingsByIDs(t.Context(), nil)

		require.NoError(t, err)
		assert.Empty(t, listings)
	})

	mt.Run("decodes listings", func(mt *mtest.T) {
		id := uuid.New()
		created := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "lostfound."+listingsCollection, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: id.String()},
				{Key: "owner_id", Value: uuid.NewString()},
				{Key: "kind", Value: "found"},
				{Key: "title", Value: "Blue umbrella"},
				{Key: "category_name", Value: "Accessories"},
				{Key: "status", Value: "published"},
				{Key: "created_at", Value: created},
			},
		))

		repo := NewListingRepository(mt.DB)
		listings, err := repo.FindListingsByIDs(t.Context(), []uuid.UUID{id, uuid.New()})

		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, entity.ListingKindFound, listings[0].Kind)
		assert.Equal(t, entity.ListingStatusPublished, listings[0].Status)
		assert.True(t, created.Equal(listings[0].CreatedAt))
	})
}

func TestListingRepository_FindListingByID_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no documents", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "lostfound."+listingsCollection, mtest.FirstBatch))

		repo := NewListingRepository(mt.DB)
		_, err := repo.FindListingByID(t.Context(), uuid.New())

		assert.True(t, errors.Is(err, repository.ErrListingNotFound))
	})
}

func TestListingRepository_UpdateListingStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		repo := NewListingRepository(mt.DB)
		err := repo.UpdateListingStatus(t.Context(), uuid.New(), entity.ListingStatusPending, entity.ListingStatusPublished)

		assert.NoError(t, err)
	})

	mt.Run("status moved on", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, "lostfound."+listingsCollection, mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
		)

		repo := NewListingRepository(mt.DB)
		err := repo.UpdateListingStatus(t.Context(), uuid.New(), entity.ListingStatusPending, entity.ListingStatusPublished)

		assert.True(t, errors.Is(err, repository.ErrStatusConflict))
	})

	mt.Run("listing gone", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, "lostfound."+listingsCollection, mtest.FirstBatch),
		)

		repo := NewListingRepository(mt.DB)
		err := repo.UpdateListingStatus(t.Context(), uuid.New(), entity.ListingStatusPending, entity.ListingStatusPublished)

		assert.True(t, errors.Is(err, repository.ErrListingNotFound))
	})
}

func TestListingLocationRepository_FindRecentLocations(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("skips documents that do not decode", func(mt *mtest.T) {
		good := uuid.New()
		createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "lostfound."+listingLocationsCollection, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: uuid.NewString()},
				{Key: "geo", Value: bson.D{{Key: "lat", Value: 56.95}, {Key: "lng", Value: 24.11}}},
				{Key: "created_at", Value: "2024-01-01"},
			},
			bson.D{
				{Key: "_id", Value: good.String()},
				{Key: "geo", Value: bson.D{{Key: "lat", Value: 56.95}, {Key: "lng", Value: 24.11}}},
				{Key: "created_at", Value: createdAt},
			},
		))

		repo := NewListingLocationRepository(mt.DB)
		locations, err := repo.FindRecentLocations(t.Context(), 10)

		require.NoError(t, err)
		require.Len(t, locations, 1)
		assert.Equal(t, good, locations[0].ListingID)
		require.NotNil(t, locations[0].Geo)
		assert.True(t, createdAt.Equal(locations[0].CreatedAt))
	})
}
