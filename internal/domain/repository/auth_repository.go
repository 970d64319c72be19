// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for credential persistence.
var (
	// ErrCredentialNotFound is returned when no credential exists for a user.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// AuthRepository defines the interface for credential database operations.
type AuthRepository interface {
	// CreateCredential persists the password credential for a new account.
	CreateCredential(ctx context.Context, credential *entity.Credential) error

	// FindCredentialByUserID retrieves the credential for a user.
	FindCredentialByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)
}

// RefreshTokenRepository defines the interface for session token operations.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new session's refresh token hash.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token by its SHA-256 hash.
	FindRefreshTokenByHash(ctx context.Context, hash string) (*entity.RefreshToken, error)

	// DeleteRefreshToken revokes a session.
	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error

	// DeleteExpiredRefreshTokens prunes tokens past their expiry.
	DeleteExpiredRefreshTokens(ctx context.Context) error
}
