package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mapic/config"
	deliverycontext "mapic/internal/delivery/context"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/service"
	"mapic/internal/infra/pubsub"
	mocks "mapic/internal/mocks/usecase"
	"mapic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, worker *config.WorkerConfig) (*PushHandler, *mocks.MockDispatchUsecase) {
	dispatchUC := mocks.NewMockDispatchUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     &config.Config{Worker: worker},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DispatchUC: dispatchUC,
	})

	return h, dispatchUC
}

func pushRequest(t *testing.T, event *service.DispatchEvent) *http.Request {
	t.Helper()

	body, err := pubsub.EncodePushMessage(event, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func serve(h *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.DispatchEvent{
		RequestID:   "req-42",
		Channel:     service.ChannelEmail,
		Destination: "alice@example.com",
		Subject:     "Your verification code",
		Body:        "Your verification code is 123456",
	}

	tests := []struct {
		name       string
		deliverErr error
		wantStatus int
	}{
		{"delivered", nil, http.StatusOK},
		{"permanent failure is acknowledged", domainerrors.ErrValidationFailed.WithDetails("unknown channel"), http.StatusOK},
		{"transient failure is retried", assert.AnError, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, dispatchUC := newTestPushHandler(t, nil)
			call := dispatchUC.EXPECT().Deliver(mock.MatchedBy(func(ctx context.Context) bool {
				return deliverycontext.GetRequestIDFromContext(ctx) == "req-42"
			}), event)
			if tt.deliverErr != nil {
				call.Return(nil, tt.deliverErr)
			} else {
				call.Return(&usecase.DeliveryReport{Sent: 1}, nil)
			}

			rec := serve(h, pushRequest(t, event))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_Malformed(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(`{"message":{"data":"***"}}`))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifyToken(t *testing.T) {
	event := &service.DispatchEvent{Channel: service.ChannelSMS, Destination: "+886912345678", Body: "code"}

	tests := []struct {
		name       string
		header     string
		payload    *idtoken.Payload
		validErr   error
		wantStatus int
	}{
		{"missing header", "", nil, nil, http.StatusUnauthorized},
		{"rejected by validator", "Bearer forged", nil, assert.AnError, http.StatusUnauthorized},
		{"wrong issuer", "Bearer token", &idtoken.Payload{Issuer: "https://evil.example.com"}, nil, http.StatusUnauthorized},
		{"google issuer", "Bearer token", &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, dispatchUC := newTestPushHandler(t, &config.WorkerConfig{VerifyToken: true, Audience: "https://dispatcher.example.com/push"})
			h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://dispatcher.example.com/push", audience)

				return tt.payload, tt.validErr
			}
			if tt.wantStatus == http.StatusOK {
				dispatchUC.EXPECT().Deliver(mock.Anything, event).Return(&usecase.DeliveryReport{Sent: 1}, nil)
			}

			req := pushRequest(t, event)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			assert.Equal(t, tt.wantStatus, serve(h, req).Code)
		})
	}
}
