package mongo

import (
	"context"

	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// zoneRepository implements the repository.ZoneRepository interface.
type zoneRepository struct {
	collection *mongo.Collection
}

// NewZoneRepository is the constructor for zoneRepository.
func NewZoneRepository(db *mongo.Database) repository.ZoneRepository {
	return &zoneRepository{
		collection: db.Collection(zonesCollection),
	}
}

// FindZones scans the zone collection with an equality and enabled-flag filter.
// Documents with unusable ids are skipped.
func (repo *zoneRepository) FindZones(ctx context.Context, filter repository.ZoneFilter) ([]*entity.SubscriptionZone, error) {
	query := bson.M{}
	if filter.OwnerID != nil {
		query["owner_id"] = filter.OwnerID.String()
	}
	if filter.EnabledOnly {
		query["enabled"] = true
	}

	cursor, err := repo.collection.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find zones")
	}

	docs, err := decodeEach[zoneDocument](ctx, cursor, "zones")
	if err != nil {
		return nil, err
	}

	zones := make([]*entity.SubscriptionZone, 0, len(docs))
	for _, doc := range docs {
		if zone, ok := toZoneEntity(doc); ok {
			zones = append(zones, zone)
		}
	}

	return zones, nil
}
