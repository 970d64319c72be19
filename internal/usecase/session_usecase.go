// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenInput carries the refresh token presented to obtain a new pair.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput returns the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// LogoutInput carries the refresh token of the session being ended.
type LogoutInput struct {
	RefreshToken string
}

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// Login verifies credentials and opens a new session.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken rotates a valid refresh token into a new token pair.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout revokes the session identified by the refresh token.
	Logout(ctx context.Context, input *LogoutInput) error
}
