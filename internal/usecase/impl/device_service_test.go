package impl

import (
	"context"
	"testing"

	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/repository"
	mockRepo "mapic/internal/mocks/repository"
	"mapic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "iOS",
	}

	fx.deviceRepo.EXPECT().
		FindByUserAndDeviceID(ctx, userID, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, entity.PlatformIOS, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.UserDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: entity.PlatformAndroid,
		IsActive: true,
	}
	updatedDevice := *existingDevice
	updatedDevice.FCMToken = "new-fcm-token"

	fx.deviceRepo.EXPECT().
		FindByUserAndDeviceID(ctx, userID, "device-123").
		Return(existingDevice, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, deviceID, device.ID)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name string
		info *usecase.DeviceInfo
	}{
		{"nil", nil},
		{"missing token", &usecase.DeviceInfo{DeviceID: "d", Platform: "ios"}},
		{"missing device id", &usecase.DeviceInfo{FCMToken: "t", Platform: "ios"}},
		{"unknown platform", &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "windows"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), tt.info)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindByUserAndDeviceID(ctx, userID, "device-123").
		Return(nil, errors.New("database error"))

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "device-123", Platform: "ios"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find device")
}

func TestDeviceService_RegisterDevice_UnknownUser(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindByUserAndDeviceID(ctx, userID, "device-123").
		Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(repository.ErrUserNotFound)

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "device-123", Platform: "ios"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestDeviceService_RegisterDevice_UpdateExisting_UpdateError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "device-123"}

	fx.deviceRepo.EXPECT().
		FindByUserAndDeviceID(ctx, userID, "device-123").
		Return(existing, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, existing.ID, "t").
		Return(errors.New("update failed"))

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "device-123", Platform: "ios"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update FCM token")
}

func TestDeviceService_UpdateFCMToken_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-token").
		Return(nil)

	err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-token")
	assert.NoError(t, err)
}

func TestDeviceService_UpdateFCMToken_Errors(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	tests := []struct {
		name    string
		found   *entity.UserDevice
		findErr error
		wantErr error
	}{
		{"not found", nil, repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound},
		{"not owned", &entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil, domainerrors.ErrDeviceNotOwned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(tt.found, tt.findErr)

			err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "token")
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestDeviceService_UpdateFCMToken_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, errors.New("database error"))

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find device by ID")
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
		{ID: uuid.New(), UserID: userID, FCMToken: "token-2", IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(devices, nil)

	result, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestDeviceService_GetUserDevices_Error(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(nil, errors.New("database error"))

	_, err := fx.service.GetUserDevices(ctx, userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find active devices by user")
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	assert.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
}

func TestDeviceService_DeactivateDevice_Unauthorized(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotOwned))
}

func TestDeviceService_DeactivateDevice_DeleteError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(errors.New("delete failed"))

	err := fx.service.DeactivateDevice(ctx, userID, deviceID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete device")
}
