package mongo

import (
	"context"
	"time"

	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *mongo.Database) repository.ListingRepository {
	return &listingRepository{
		collection: db.Collection(listingsCollection),
		now:        time.Now,
	}
}

// FindListingByID retrieves a single listing.
func (repo *listingRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var doc listingDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	listing, ok := toListingEntity(&doc)
	if !ok {
		return nil, repository.ErrListingNotFound
	}

	return listing, nil
}

// FindListingsByIDs runs one $in lookup. The store caps the list at repository.MaxIDsPerLookup.
func (repo *listingRepository) FindListingsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Listing, error) {
	if len(ids) == 0 {
		return []*entity.Listing{}, nil
	}
	if len(ids) > repository.MaxIDsPerLookup {
		return nil, errors.Wrapf(repository.ErrTooManyIDs, "got %d ids", len(ids))
	}

	cursor, err := repo.collection.Find(ctx, bson.M{"_id": bson.M{"$in": uuidStrings(ids)}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings by IDs")
	}

	docs, err := decodeEach[listingDocument](ctx, cursor, "listings")
	if err != nil {
		return nil, err
	}

	listings := make([]*entity.Listing, 0, len(docs))
	for _, doc := range docs {
		if listing, ok := toListingEntity(doc); ok {
			listings = append(listings, listing)
		}
	}

	return listings, nil
}

// UpdateListingStatus is a compare-and-set on the status field.
func (repo *listingRepository) UpdateListingStatus(ctx context.Context, id uuid.UUID, from, to entity.ListingStatus) error {
	result, err := repo.collection.UpdateOne(ctx,
		bson.M{"_id": id.String(), "status": string(from)},
		bson.M{"$set": bson.M{"status": string(to), "updated_at": repo.now().UTC()}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to update listing status")
	}
	if result.MatchedCount > 0 {
		return nil
	}

	count, err := repo.collection.CountDocuments(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to check listing existence")
	}
	if count == 0 {
		return repository.ErrListingNotFound
	}

	return repository.ErrStatusConflict
}
