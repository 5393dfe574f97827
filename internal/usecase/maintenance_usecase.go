package usecase

import "context"

// SweepReport counts what a maintenance sweep removed.
type SweepReport struct {
	ExpiredOtps  int64 `json:"expired_otps"`
	OldLocations int64 `json:"old_locations"`
}

// MaintenanceUsecase runs periodic cleanup. It is triggered externally, e.g. by cron.
type MaintenanceUsecase interface {
	Sweep(ctx context.Context) (*SweepReport, error)
}
