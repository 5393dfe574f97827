package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mapic/internal/delivery/api/response"
	"mapic/internal/delivery/api/validator"
	domainerrors "mapic/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails bool
	}{
		{
			name:       "domain error",
			err:        domainerrors.ErrFriendshipNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "FRIENDSHIP_NOT_FOUND",
		},
		{
			name:       "wrapped domain error keeps its status",
			err:        domainerrors.ErrOtpRateLimited.WrapMessage("issue failed"),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "OTP_RATE_LIMITED",
		},
		{
			name:       "details are not rendered",
			err:        domainerrors.ErrValidationFailed.WithDetails("secret internals"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:        "validation error lists fields",
			err:         &validator.ValidationError{Fields: []validator.FieldError{{Field: "email", Rule: "required"}}},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: true,
		},
		{
			name:       "echo error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
			assert.NotContains(t, rec.Body.String(), "secret internals")
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
