// Package mongo implements the read side of zones, listings, listing locations and users
// on top of the MongoDB document store.
package mongo

import (
	"context"
	"log/slog"

	"lostfound/config"
	"lostfound/internal/domain/lifecycle"
	"lostfound/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Collection names.
const (
	zonesCollection            = "subscription_zones"
	listingsCollection         = "listings"
	listingLocationsCollection = "listing_locations"
	usersCollection            = "users"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the configured database.
// The connection is verified and indexes are ensured on start; the client disconnects on stop.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(cfg.Timeout)

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				// Missing indexes slow the scans down but do not change their results.
				params.Logger.Warn("MongoDB index creation failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		zonesCollection: {
			{Keys: bson.D{{Key: "enabled", Value: 1}}},
			{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "enabled", Value: 1}}},
		},
		listingLocationsCollection: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		listingsCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "create indexes on %s", collection)
		}
	}

	return nil
}
