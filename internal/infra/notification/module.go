package notification

import (
	"context"
	"log/slog"

	"mapic/config"
	"mapic/internal/domain/service"

	"go.uber.org/fx"
)

// ServiceParams holds dependencies for the push notification service, injected by Fx
type ServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService picks FCM when credentials are configured and the log sender otherwise.
func NewNotificationService(params ServiceParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications are logged only")

		return NewLogNotificationService(params.Logger), nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging", slog.String("project_id", cfg.ProjectID))

	return NewFirebaseService(params.Ctx, cfg)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewNotificationService,
		NewLogMessageSender,
	),
)
