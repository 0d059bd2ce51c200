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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: db.Collection(usersCollection),
	}
}

// FindUserByID retrieves the contact fields of one account.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	opts := options.FindOne().SetProjection(bson.M{"email": 1, "name": 1, "roles": 1, "created_at": 1, "updated_at": 1})

	var doc userDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": id.String()}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	user, ok := toUserEntity(&doc)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}
