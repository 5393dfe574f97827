package pubsub

import (
	"context"
	"log/slog"

	"mapic/internal/domain/service"

	"github.com/pkg/errors"
)

// dispatcher hands messages to the dispatcher worker through the event bus.
type dispatcher struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewDispatcher returns the Dispatcher use cases send email, SMS and push through.
func NewDispatcher(publisher service.EventPublisher, logger *slog.Logger) service.Dispatcher {
	return &dispatcher{publisher: publisher, logger: logger}
}

func (d *dispatcher) Send(ctx context.Context, event *service.DispatchEvent) error {
	if event == nil || event.Destination == "" {
		return errors.New("dispatch event requires a destination")
	}

	if err := d.publisher.PublishDispatchEvent(ctx, event); err != nil {
		d.logger.WarnContext(ctx, "Failed to publish dispatch event",
			slog.String("channel", string(event.Channel)),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "publish dispatch event")
	}

	return nil
}
