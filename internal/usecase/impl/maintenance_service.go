package impl

import (
	"context"
	"log/slog"

	deliverycontext "mapic/internal/delivery/context"
	"mapic/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type maintenanceService struct {
	otp      usecase.OtpUsecase
	location usecase.LocationUsecase
	logger   *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	Otp      usecase.OtpUsecase
	Location usecase.LocationUsecase
	Logger   *slog.Logger
}

// NewMaintenanceService creates a new maintenance service instance
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		otp:      params.Otp,
		location: params.Location,
		logger:   params.Logger,
	}
}

// Sweep removes expired codes, then samples past retention. A failed step stops the sweep.
func (s *maintenanceService) Sweep(ctx context.Context) (*usecase.SweepReport, error) {
	report := &usecase.SweepReport{}

	expired, err := s.otp.SweepExpired(ctx)
	if err != nil {
		return report, errors.Wrap(err, "failed to sweep expired otps")
	}
	report.ExpiredOtps = expired

	old, err := s.location.CleanupOld(ctx)
	if err != nil {
		return report, errors.Wrap(err, "failed to clean up old locations")
	}
	report.OldLocations = old

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Maintenance sweep finished",
		slog.Int64("expired_otps", report.ExpiredOtps),
		slog.Int64("old_locations", report.OldLocations),
	)

	return report, nil
}
