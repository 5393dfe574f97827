package impl

import (
	"context"
	"log/slog"

	deliverycontext "mapic/internal/delivery/context"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/repository"
	"mapic/internal/domain/service"
	"mapic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type dispatchService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	sender          service.MessageSender
	logger          *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Sender          service.MessageSender
	Logger          *slog.Logger
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		sender:          params.Sender,
		logger:          params.Logger,
	}
}

func (s *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Deliver sends one event on its channel
func (s *dispatchService) Deliver(ctx context.Context, event *service.DispatchEvent) (*usecase.DeliveryReport, error) {
	if event == nil || event.Destination == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("destination is required")
	}

	switch event.Channel {
	case service.ChannelEmail:
		if err := s.sender.SendEmail(ctx, event.Destination, event.Subject, event.Body); err != nil {
			return nil, errors.Wrap(err, "failed to send email")
		}

		return &usecase.DeliveryReport{Sent: 1}, nil
	case service.ChannelSMS:
		if err := s.sender.SendSMS(ctx, event.Destination, event.Body); err != nil {
			return nil, errors.Wrap(err, "failed to send sms")
		}

		return &usecase.DeliveryReport{Sent: 1}, nil
	case service.ChannelPush:
		return s.push(ctx, event)
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown channel " + string(event.Channel))
	}
}

// push fans the event out to every active device of the destination user
func (s *dispatchService) push(ctx context.Context, event *service.DispatchEvent) (*usecase.DeliveryReport, error) {
	userID, err := uuid.Parse(event.Destination)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("push destination must be a user id")
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch devices")
	}

	report := &usecase.DeliveryReport{}
	if len(devices) == 0 {
		return report, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	var invalidTokens []string
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		successCount, failureCount, batchInvalidTokens, err := s.notificationSvc.SendBatchNotification(
			ctx,
			batch,
			event.Subject,
			event.Body,
			event.Data,
		)
		if err != nil {
			s.log(ctx).Warn("Push batch failed", slog.Int("batch_size", len(batch)), slog.Any("error", err))
			report.Failed += len(batch)

			continue
		}

		report.Sent += successCount
		report.Failed += failureCount
		invalidTokens = append(invalidTokens, batchInvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens)
		if err != nil {
			s.log(ctx).Warn("Failed to deactivate invalid devices", slog.Any("error", err))
		}
		report.Deactivated = deactivated
	}

	s.log(ctx).Info("Push delivered",
		slog.String("user_id", userID.String()),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int64("deactivated", report.Deactivated),
	)

	return report, nil
}
