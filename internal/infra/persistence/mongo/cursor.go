package mongo

import (
	"context"
	"log/slog"

	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// decodeEach drains cursor one document at a time. A document that does not decode
// into T is logged and skipped so a single bad record cannot fail the batch.
func decodeEach[T any](ctx context.Context, cursor *mongo.Cursor, what string) ([]*T, error) {
	defer cursor.Close(ctx)

	logger := deliverycontext.GetLoggerOrDefault(ctx, slog.Default())

	docs := make([]*T, 0)
	for cursor.Next(ctx) {
		doc := new(T)
		if err := cursor.Decode(doc); err != nil {
			logger.WarnContext(ctx, "Skipping undecodable document",
				slog.String("collection", what),
				slog.String("id", cursor.Current.Lookup("_id").String()),
				slog.Any("error", err),
			)

			continue
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", what)
	}

	return docs, nil
}
