package impl

import (
	"context"
	"testing"
	"time"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	"github.com/BeMaTech82/hortago/internal/domain/repository"
	mockRepo "github.com/BeMaTech82/hortago/internal/mocks/repository"
	mockService "github.com/BeMaTech82/hortago/internal/mocks/service"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testRefreshSecret = "refresh-secret"

type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	userRepo     *mockRepo.MockUserRepository
	authRepo     *mockRepo.MockAuthRepository
	refreshRepo  *mockRepo.MockRefreshTokenRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestSessionService(t *testing.T) *sessionServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	cfg := newTestConfig()
	cfg.SecretKey.Refresh = testRefreshSecret

	svc := NewSessionService(SessionServiceParams{
		UserRepo:     userRepo,
		AuthRepo:     authRepo,
		RefreshRepo:  refreshRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return &sessionServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		authRepo:     authRepo,
		refreshRepo:  refreshRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func newRefreshJWT(userID uuid.UUID) *jwt.Token {
	return &jwt.Token{
		Valid:  true,
		Claims: jwt.MapClaims{"sub": userID.String()},
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	user := newLocatedUser(uuid.New(), &parisCoord)
	credential := &entity.Credential{ID: uuid.New(), UserID: user.ID, PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().FindCredentialByUserID(ctx, user.ID).Return(credential, nil)
	fx.hasher.EXPECT().Check("motdepasse", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"buyer"}).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(30 * 24 * time.Hour)
	fx.refreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, token *entity.RefreshToken) {
			assert.Equal(t, user.ID, token.UserID)
			assert.Equal(t, hashToken("refresh"), token.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "motdepasse"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByEmail(ctx, "inconnu@hortago.fr").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "inconnu@hortago.fr", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	user := newLocatedUser(uuid.New(), nil)
	credential := &entity.Credential{ID: uuid.New(), UserID: user.ID, PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().FindCredentialByUserID(ctx, user.ID).Return(credential, nil)
	fx.hasher.EXPECT().Check("mauvais", "hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "mauvais"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestSessionService_RefreshToken_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	user := newLocatedUser(uuid.New(), nil)
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID, TokenHash: hashToken("old-refresh")}

	fx.tokenService.EXPECT().ValidateToken("old-refresh", testRefreshSecret).Return(newRefreshJWT(user.ID), nil)
	fx.refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, hashToken("old-refresh")).Return(stored, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"buyer"}).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(30 * 24 * time.Hour)
	fx.refreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
	fx.refreshRepo.EXPECT().DeleteRefreshToken(ctx, stored.ID).Return(nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestSessionService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("forged", testRefreshSecret).Return(nil, assert.AnError)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "forged"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestSessionService_RefreshToken_RevokedSession(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("old-refresh", testRefreshSecret).Return(newRefreshJWT(userID), nil)
	fx.refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, hashToken("old-refresh")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestSessionService_Logout_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	userID := uuid.New()
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: userID, TokenHash: hashToken("refresh")}

	fx.tokenService.EXPECT().ValidateToken("refresh", testRefreshSecret).Return(newRefreshJWT(userID), nil)
	fx.refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, hashToken("refresh")).Return(stored, nil)
	fx.refreshRepo.EXPECT().DeleteRefreshToken(ctx, stored.ID).Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"})

	require.NoError(t, err)
}

func TestSessionService_Logout_AlreadyRevokedIsIdempotent(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("refresh", testRefreshSecret).Return(newRefreshJWT(uuid.New()), nil)
	fx.refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, hashToken("refresh")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"})

	require.NoError(t, err)
}
