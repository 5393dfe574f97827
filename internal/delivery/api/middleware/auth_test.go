package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mapic/internal/delivery/context"
	"mapic/internal/domain/service"
	mocks "mapic/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(m *mocks.MockTokenService)
		wantStatus int
		wantUser   bool
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().ValidateToken("bad", service.TokenTypeAccess).Return(nil, assert.AnError)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "malformed subject",
			header: "Bearer odd",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().ValidateToken("odd", service.TokenTypeAccess).
					Return(&service.Claims{Type: service.TokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{Subject: "42"}}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().ValidateToken("good", service.TokenTypeAccess).
					Return(&service.Claims{Type: service.TokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()}}, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen, caller uuid.UUID
			var ok, inContext bool
			err := m.Authenticate(func(c echo.Context) error {
				seen, ok = GetUserID(c)
				caller, inContext = deliverycontext.CallerFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, ok)
			assert.Equal(t, tt.wantUser, inContext)
			if tt.wantUser {
				assert.Equal(t, userID, seen)
				assert.Equal(t, userID, caller)
			}
		})
	}
}
