package usecase

import (
	"context"

	"mapic/internal/domain/service"
)

// DeliveryReport summarises a push fan-out.
type DeliveryReport struct {
	Sent        int
	Failed      int
	Deactivated int64
}

// DispatchUsecase delivers dispatch events received by the worker.
type DispatchUsecase interface {
	// Deliver routes the event by channel. Push destinations are user ids.
	Deliver(ctx context.Context, event *service.DispatchEvent) (*DeliveryReport, error)
}
