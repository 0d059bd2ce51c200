// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository reads user accounts.
type UserRepository interface {
	// FindUserByID retrieves a single user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
