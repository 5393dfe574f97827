package impl

import (
	"context"
	"fmt"
	"testing"

	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/service"
	mockRepo "mapic/internal/mocks/repository"
	mockService "mapic/internal/mocks/service"
	"mapic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchServiceFixtures struct {
	service         usecase.DispatchUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockService.MockNotificationService
	sender          *mockService.MockMessageSender
}

func createTestDispatchService(t *testing.T) dispatchServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockService.NewMockNotificationService(t)
	sender := mockService.NewMockMessageSender(t)

	service := NewDispatchService(DispatchServiceParams{
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Sender:          sender,
		Logger:          newDiscardLogger(),
	})

	return dispatchServiceFixtures{
		service:         service,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		sender:          sender,
	}
}

func devicesWithTokens(userID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := 0; i < n; i++ {
		devices = append(devices, &entity.UserDevice{
			ID:       uuid.New(),
			UserID:   userID,
			FCMToken: fmt.Sprintf("token-%d", i),
			IsActive: true,
		})
	}

	return devices
}

func TestDispatchService_Deliver_Email(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()

	fx.sender.EXPECT().SendEmail(ctx, "a@example.com", "Activate your account", "Your verification code is 123456").Return(nil)

	report, err := fx.service.Deliver(ctx, &service.DispatchEvent{
		Channel:     service.ChannelEmail,
		Destination: "a@example.com",
		Subject:     "Activate your account",
		Body:        "Your verification code is 123456",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
}

func TestDispatchService_Deliver_SMSError(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()

	fx.sender.EXPECT().SendSMS(ctx, "+84900000000", "hi").Return(errors.New("gateway down"))

	_, err := fx.service.Deliver(ctx, &service.DispatchEvent{Channel: service.ChannelSMS, Destination: "+84900000000", Body: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send sms")
}

func TestDispatchService_Deliver_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		event *service.DispatchEvent
	}{
		{"nil event", nil},
		{"no destination", &service.DispatchEvent{Channel: service.ChannelEmail}},
		{"unknown channel", &service.DispatchEvent{Channel: "pigeon", Destination: "roof"}},
		{"push to non-uuid", &service.DispatchEvent{Channel: service.ChannelPush, Destination: "someone"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDispatchService(t)

			_, err := fx.service.Deliver(context.Background(), tt.event)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestDispatchService_Deliver_Push(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	userID := uuid.New()
	data := map[string]string{"type": "friend_request", "friendship_id": uuid.NewString()}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devicesWithTokens(userID, 2), nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-0", "token-1"}, "New friend request", "Alice wants to be your friend", data).
		Return(1, 1, []string{"token-1"}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-1"}).Return(1, nil)

	report, err := fx.service.Deliver(ctx, &service.DispatchEvent{
		Channel:     service.ChannelPush,
		Destination: userID.String(),
		Subject:     "New friend request",
		Body:        "Alice wants to be your friend",
		Data:        data,
	})
	require.NoError(t, err)
	assert.Equal(t, &usecase.DeliveryReport{Sent: 1, Failed: 1, Deactivated: 1}, report)
}

func TestDispatchService_Deliver_PushBatches(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devicesWithTokens(userID, 501), nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 500 }), "t", "b", mock.Anything).
		Return(500, 0, nil, nil).
		Once()
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-500"}, "t", "b", mock.Anything).
		Return(0, 0, nil, errors.New("quota exceeded")).
		Once()

	report, err := fx.service.Deliver(ctx, &service.DispatchEvent{
		Channel:     service.ChannelPush,
		Destination: userID.String(),
		Subject:     "t",
		Body:        "b",
	})
	require.NoError(t, err)
	assert.Equal(t, 500, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Zero(t, report.Deactivated)
}

func TestDispatchService_Deliver_PushNoDevices(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return([]*entity.UserDevice{}, nil)

	report, err := fx.service.Deliver(ctx, &service.DispatchEvent{Channel: service.ChannelPush, Destination: userID.String()})
	require.NoError(t, err)
	assert.Zero(t, report.Sent)
}

func TestDispatchService_Deliver_PushDeviceLookupError(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(nil, errors.New("database error"))

	_, err := fx.service.Deliver(ctx, &service.DispatchEvent{Channel: service.ChannelPush, Destination: userID.String()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch devices")
}
