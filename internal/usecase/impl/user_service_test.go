package impl

import (
	"context"
	"testing"
	"time"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	"github.com/BeMaTech82/hortago/internal/domain/repository"
	"github.com/BeMaTech82/hortago/internal/domain/service"
	mockRepo "github.com/BeMaTech82/hortago/internal/mocks/repository"
	mockService "github.com/BeMaTech82/hortago/internal/mocks/service"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service    usecase.UserUsecase
	txManager  *mockRepo.MockTransactionManager
	userRepo   *mockRepo.MockUserRepository
	hasher     *mockService.MockPasswordHasher
	geolocator *mockService.MockGeolocator
}

func createTestUserService(t *testing.T) *userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	geolocator := mockService.NewMockGeolocator(t)

	svc := NewUserService(UserServiceParams{
		TxManager:  txManager,
		UserRepo:   userRepo,
		Hasher:     hasher,
		Geolocator: geolocator,
		Logger:     newDiscardLogger(),
	})

	return &userServiceFixtures{
		service:    svc,
		txManager:  txManager,
		userRepo:   userRepo,
		hasher:     hasher,
		geolocator: geolocator,
	}
}

// onExecute wires the transaction manager to run the transactional closure
// against mocked repositories.
func (f *userServiceFixtures) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func newRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:     "Acheteur",
		Email:    "acheteur@hortago.fr",
		Password: "motdepasse",
		Type:     entity.UserTypeBuyer,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := newRegisterInput()

	fx.hasher.EXPECT().Hash("motdepasse").Return("hashed", nil)
	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewAuthRepository().Return(authRepo)

		userRepo.EXPECT().FindUserByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().CreateUser(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		authRepo.EXPECT().CreateCredential(ctx, mock.AnythingOfType("*entity.Credential")).
			Run(func(_ context.Context, credential *entity.Credential) {
				assert.Equal(t, "hashed", credential.PasswordHash)
			}).
			Return(nil)
	})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.UserTypeBuyer, output.User.Type)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_InvalidType(t *testing.T) {
	fx := createTestUserService(t)

	input := newRegisterInput()
	input.Type = entity.UserType("admin")

	output, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, output)
}

func TestUserService_Register_EmailAlreadyTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := newRegisterInput()

	fx.hasher.EXPECT().Hash("motdepasse").Return("hashed", nil)
	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewAuthRepository().Return(authRepo)

		userRepo.EXPECT().FindUserByEmail(ctx, input.Email).
			Return(newLocatedUser(uuid.New(), nil), nil)
	})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, output)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash("motdepasse").Return("", assert.AnError)

	output, err := fx.service.Register(context.Background(), newRegisterInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.Nil(t, output)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserService_RefreshLocation_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	fix := &service.LocationFix{
		Coordinate: parisCoord,
		Source:     service.LocationSourceIP,
		ResolvedAt: time.Now(),
	}

	fx.geolocator.EXPECT().Locate(ctx).Return(fix, nil)
	fx.userRepo.EXPECT().UpdateUserLocation(ctx, userID, &fix.Coordinate).Return(nil)

	resolved, err := fx.service.RefreshLocation(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, fix, resolved)
}

func TestUserService_RefreshLocation_ResolutionFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.geolocator.EXPECT().Locate(ctx).Return(nil, assert.AnError)

	resolved, err := fx.service.RefreshLocation(ctx, uuid.New())

	require.Error(t, err)
	assert.Nil(t, resolved)
}

func TestUserService_RefreshLocation_OutOfRangeCoordinate(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fix := &service.LocationFix{
		Coordinate: entity.Coordinate{Latitude: 120, Longitude: 300},
		Source:     service.LocationSourceIP,
		ResolvedAt: time.Now(),
	}

	fx.geolocator.EXPECT().Locate(ctx).Return(fix, nil)

	resolved, err := fx.service.RefreshLocation(ctx, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, resolved)
}
