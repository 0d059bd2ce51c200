package mongo

import (
	"context"

	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listingLocationRepository implements the repository.ListingLocationRepository interface.
type listingLocationRepository struct {
	collection *mongo.Collection
}

// NewListingLocationRepository is the constructor for listingLocationRepository.
func NewListingLocationRepository(db *mongo.Database) repository.ListingLocationRepository {
	return &listingLocationRepository{
		collection: db.Collection(listingLocationsCollection),
	}
}

// FindLocationByListing retrieves the location of one listing.
func (repo *listingLocationRepository) FindLocationByListing(ctx context.Context, listingID uuid.UUID) (*entity.ListingLocation, error) {
	var doc listingLocationDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": listingID.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing location")
	}

	location, ok := toListingLocationEntity(&doc)
	if !ok {
		return nil, repository.ErrLocationNotFound
	}

	return location, nil
}

// FindRecentLocations is an ordered-by-timestamp limited scan, newest first.
func (repo *listingLocationRepository) FindRecentLocations(ctx context.Context, limit int) ([]*entity.ListingLocation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := repo.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent listing locations")
	}

	docs, err := decodeEach[listingLocationDocument](ctx, cursor, "listing locations")
	if err != nil {
		return nil, err
	}

	locations := make([]*entity.ListingLocation, 0, len(docs))
	for _, doc := range docs {
		if location, ok := toListingLocationEntity(doc); ok {
			locations = append(locations, location)
		}
	}

	return locations, nil
}
