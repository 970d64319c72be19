// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Type     entity.UserType
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account with an email/password credential.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// GetProfile retrieves the account for a user ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// RefreshLocation resolves a best-effort position for the user and stores
	// it as their home location. Returns the fix together with its source tag.
	RefreshLocation(ctx context.Context, userID uuid.UUID) (*service.LocationFix, error)
}
