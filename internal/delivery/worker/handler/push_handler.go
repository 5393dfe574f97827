// Package handler contains the dispatcher worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"mapic/config"
	deliverycontext "mapic/internal/delivery/context"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/service"
	"mapic/internal/infra/pubsub"
	"mapic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push deliveries of dispatch events.
type PushHandler struct {
	verifyToken bool
	audience    string
	validate    tokenValidator
	logger      *slog.Logger
	dispatchUC  usecase.DispatchUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate:   idtoken.Validate,
		logger:     params.Logger,
		dispatchUC: params.DispatchUC,
	}
	if w := params.Config.Worker; w != nil {
		h.verifyToken = w.VerifyToken
		h.audience = w.Audience
	}

	return h
}

// HandlePush answers 503 when the event should be redelivered and 200 otherwise,
// including for malformed or permanently undeliverable events.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyToken {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.Error("[Worker] Failed to read push body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, pushMsg, err := pubsub.DecodePushMessage(body)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing dispatch event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("channel", string(event.Channel)),
	)

	report, err := h.dispatchUC.Deliver(ctx, event)
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to deliver dispatch event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Dispatch event delivered",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int64("deactivated", report.Deactivated),
	)

	return c.NoContent(http.StatusOK)
}

// isRetryable treats domain rejections as permanent and everything else as transient.
func isRetryable(err error) bool {
	return domainerrors.KindOf(err) == domainerrors.KindInternal
}

// extractRequestID prefers message attributes, then the event, then the inbound header.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.DispatchEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google Pub/Sub attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
