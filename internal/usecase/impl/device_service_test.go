package impl

import (
	"context"
	"testing"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	mockRepo "github.com/BeMaTech82/hortago/internal/mocks/repository"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) *deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	svc := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})

	return &deviceServiceFixtures{service: svc, deviceRepo: deviceRepo}
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.deviceRepo.EXPECT().UpsertDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "token-1",
		DeviceID: "web-abc123",
		Platform: "web",
	})

	require.NoError(t, err)
	require.NotNil(t, device)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "token-1", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		DeviceID: "web-abc123",
		Platform: "web",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, device)
}

func TestDeviceService_RegisterDevice_MissingDeviceID(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		FCMToken: "token-1",
		Platform: "web",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, device)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	userID := uuid.New()
	expected := []*entity.UserDevice{newUserDevice(userID, "token-1")}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(expected, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	userID := uuid.New()
	device := newUserDevice(userID, "token-1")

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{device}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, device.ID).Return(nil)

	err := fx.service.DeactivateDevice(ctx, userID, device.ID)

	require.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_NotOwnedByUser(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	userID := uuid.New()
	foreignDevice := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{newUserDevice(userID, "token-1")}, nil)

	err := fx.service.DeactivateDevice(ctx, userID, foreignDevice)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
