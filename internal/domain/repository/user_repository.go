// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by their login email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindUsersByIDs retrieves the users for a set of IDs in one query.
	// Missing IDs are silently absent from the result.
	FindUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// UpdateUserLocation stores a newly resolved best-effort location.
	UpdateUserLocation(ctx context.Context, id uuid.UUID, location *entity.Coordinate) error
}
