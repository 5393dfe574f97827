package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"time"

	"mapic/config"
	deliverycontext "mapic/internal/delivery/context"
	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/geo"
	"mapic/internal/domain/service"
)

const lastSeenLayout = "2006-01-02 15:04:05"

// compareDistance orders ascending with unknown distances last.
func compareDistance(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}

// originOf returns the caller position when both coordinates are set.
func originOf(lat, lon *float64) (float64, float64, bool, error) {
	if lat == nil || lon == nil {
		return 0, 0, false, nil
	}
	if !geo.Valid(*lat, *lon) {
		return 0, 0, false, domainerrors.ErrInvalidCoordinates
	}

	return *lat, *lon, true, nil
}

// zoneOf resolves the zone used for calendar days and display timestamps.
func zoneOf(cfg *config.Config) (*time.Location, error) {
	if cfg == nil {
		return time.Local, nil
	}

	return cfg.CheckIn.Location()
}

var otpSubjects = map[entity.OtpPurpose]string{
	entity.OtpActivation:    "Activate your account",
	entity.OtpResetPassword: "Reset your password",
	entity.OtpChangeEmail:   "Confirm your new email",
	entity.OtpChangePhone:   "Confirm your new phone number",
}

// sendOtp hands a code to the dispatcher. Delivery failures are logged only.
func sendOtp(ctx context.Context, dispatcher service.Dispatcher, logger *slog.Logger, channel service.DispatchChannel, destination, code string, purpose entity.OtpPurpose) {
	event := &service.DispatchEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Channel:     channel,
		Destination: destination,
		Subject:     otpSubjects[purpose],
		Body:        fmt.Sprintf("Your verification code is %s", code),
	}

	if err := dispatcher.Send(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to dispatch OTP",
			slog.String("channel", string(channel)),
			slog.Any("purpose", purpose),
			slog.Any("error", err),
		)
	}
}
