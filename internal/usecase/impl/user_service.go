// Package impl contains the implementations of the application's use cases.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	"github.com/BeMaTech82/hortago/internal/domain/repository"
	"github.com/BeMaTech82/hortago/internal/domain/service"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	geolocator service.Geolocator
	logger     *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	Geolocator service.Geolocator
	Logger     *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		geolocator: params.Geolocator,
		logger:     params.Logger,
	}
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting registration", "email", input.Email, "type", input.Type)

	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown account type")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "registration failed")
	}

	var registeredUser *entity.User

	// The account and its credential are created within a single database
	// transaction to ensure atomicity.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		// 1. Reject the email if it is already registered.
		_, err := userRepo.FindUserByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		// 2. Create the account.
		newUser := &entity.User{
			ID:    uuid.New(),
			Name:  input.Name,
			Email: input.Email,
			Type:  input.Type,
		}
		if err := userRepo.CreateUser(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		// 3. Create the password credential.
		newCredential := &entity.Credential{
			ID:           uuid.New(),
			UserID:       newUser.ID,
			PasswordHash: hashedPassword,
		}
		if err := authRepo.CreateCredential(ctx, newCredential); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute registration transaction", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}
	srv.logger.Debug("Account registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// GetProfile retrieves the account for a user ID.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get profile failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// RefreshLocation resolves a best-effort position and stores it as the user's
// home location.
func (srv *userService) RefreshLocation(ctx context.Context, userID uuid.UUID) (*service.LocationFix, error) {
	fix, err := srv.geolocator.Locate(ctx)
	if err != nil {
		srv.logger.Warn("Location resolution failed", "userID", userID, "error", err)

		return nil, errors.Wrap(err, "failed to resolve location")
	}

	if !fix.Coordinate.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("resolved coordinate out of range")
	}

	if err := srv.userRepo.UpdateUserLocation(ctx, userID, &fix.Coordinate); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("refresh location failed")
		}

		return nil, errors.Wrap(err, "failed to update user location")
	}

	srv.logger.Info("User location refreshed",
		"userID", userID,
		"source", fix.Source,
		"resolvedAt", fix.ResolvedAt.Format(time.RFC3339))

	return fix, nil
}
