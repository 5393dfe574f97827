package notification

import (
	"context"
	"log/slog"

	"mapic/internal/domain/service"
)

// logNotificationService stands in for FCM when no credentials are configured.
type logNotificationService struct {
	logger *slog.Logger
}

// NewLogNotificationService returns a NotificationService that only logs.
func NewLogNotificationService(logger *slog.Logger) service.NotificationService {
	return &logNotificationService{logger: logger}
}

func (s *logNotificationService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "Push notification (log only)",
		slog.String("token", maskToken(token)),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}

func (s *logNotificationService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	for _, token := range tokens {
		_ = s.SendSingleNotification(ctx, token, title, body, data)
	}

	return len(tokens), 0, nil, nil
}

// logMessageSender writes email and SMS to the log. A real gateway plugs in behind service.MessageSender.
type logMessageSender struct {
	logger *slog.Logger
}

// NewLogMessageSender returns a MessageSender that only logs.
func NewLogMessageSender(logger *slog.Logger) service.MessageSender {
	return &logMessageSender{logger: logger}
}

func (s *logMessageSender) SendEmail(ctx context.Context, to, subject, body string) error {
	s.logger.InfoContext(ctx, "Email (log only)",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)

	return nil
}

func (s *logMessageSender) SendSMS(ctx context.Context, to, body string) error {
	s.logger.InfoContext(ctx, "SMS (log only)",
		slog.String("to", to),
		slog.String("body", body),
	)

	return nil
}

func maskToken(token string) string {
	const keep = 8
	if len(token) <= keep {
		return token
	}

	return token[:keep] + "..."
}
