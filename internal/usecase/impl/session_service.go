package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/BeMaTech82/hortago/config"
	"github.com/BeMaTech82/hortago/internal/domain/entity"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	"github.com/BeMaTech82/hortago/internal/domain/repository"
	"github.com/BeMaTech82/hortago/internal/domain/service"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sessionService struct {
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	refreshRepo  repository.RefreshTokenRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	config       *config.Config
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	AuthRepo     repository.AuthRepository
	RefreshRepo  repository.RefreshTokenRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		authRepo:     params.AuthRepo,
		refreshRepo:  params.RefreshRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// Login verifies credentials and opens a new session.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "email", input.Email)

	// 1. Find the account. A missing account and a wrong password are both
	// reported as invalid credentials.
	user, err := srv.userRepo.FindUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// 2. Check the password.
	credential, err := srv.authRepo.FindCredentialByUserID(ctx, user.ID)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}
	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// 3. Generate tokens carrying the account's roles.
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, user.Type.Roles())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// 4. Store only a hash of the refresh token.
	if err := srv.storeRefreshToken(ctx, user.ID, refreshTokenString); err != nil {
		return nil, err
	}

	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

// RefreshToken rotates a valid refresh token into a new token pair.
func (srv *sessionService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.logger.Info("Attempting to refresh token")

	userID, err := srv.validateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh failed")
	}

	// 1. Verify the refresh token is a live session.
	oldHash := hashToken(input.RefreshToken)
	stored, err := srv.refreshRepo.FindRefreshTokenByHash(ctx, oldHash)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh failed")
	}

	// 2. Fetch the account for its roles.
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	// 3. Generate and store the new pair.
	newAccessToken, newRefreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, user.Type.Roles())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new tokens")
	}
	if err := srv.storeRefreshToken(ctx, user.ID, newRefreshTokenString); err != nil {
		return nil, err
	}

	// 4. Revoke the old session. The user already holds a valid new token,
	// so a failure here is logged rather than returned.
	if err := srv.refreshRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
		srv.logger.Warn("Failed to delete old refresh token", "error", err)
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	}, nil
}

// Logout revokes the session identified by the refresh token.
func (srv *sessionService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.logger.Info("Attempting to log out")

	// Even if the token no longer validates, proceed to delete its session.
	if _, err := srv.validateRefreshToken(input.RefreshToken); err != nil {
		srv.logger.Warn("Logout with invalid token", "error", err)
	}

	stored, err := srv.refreshRepo.FindRefreshTokenByHash(ctx, hashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Already revoked; logout is idempotent.
			return nil
		}

		return errors.Wrap(err, "failed to find refresh token")
	}

	if err := srv.refreshRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.logger.Info("Successfully logged out", "userID", stored.UserID)

	return nil
}

// validateRefreshToken parses the refresh JWT and extracts the subject.
func (srv *sessionService) validateRefreshToken(tokenString string) (uuid.UUID, error) {
	token, err := srv.tokenService.ValidateToken(tokenString, srv.config.SecretKey.Refresh)
	if err != nil || !token.Valid {
		return uuid.Nil, errors.Wrap(err, "invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("unexpected claims type")
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "missing subject claim")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "malformed subject claim")
	}

	return userID, nil
}

// storeRefreshToken persists the SHA-256 hash of a freshly issued refresh token.
func (srv *sessionService) storeRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := srv.refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
