// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice registers a device or refreshes its FCM token if the
	// client device ID is already known for this user.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDevicesByUser retrieves all active devices for a user.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindDevicesForUsers retrieves all active devices for a list of user IDs.
	// Used for batch fetching delivery targets before sending pushes.
	FindDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// DeleteDevice deactivates a device (soft delete). Used when FCM reports
	// its token invalid or unregistered.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
