package middleware

import (
	"log/slog"
	"strings"

	"mapic/internal/delivery/api/response"
	deliverycontext "mapic/internal/delivery/context"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const contextKeyUserID = "userID"

// AuthMiddleware authenticates requests with a bearer access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller's id on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString, service.TokenTypeAccess)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), domainerrors.ErrInvalidToken.Message())
		}

		userID, err := claims.UserID()
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), "Invalid user ID format in token")
		}

		c.Set(contextKeyUserID, userID)

		// Use cases log through the request logger, so tag it with the caller.
		ctx := deliverycontext.WithCaller(c.Request().Context(), userID)
		logger := deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).
			With(slog.String("user_id", userID.String()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// GetUserID returns the authenticated caller. It is only set behind Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// SetUserID stores the caller's id; handler tests use it to skip token parsing.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(contextKeyUserID, userID)
}
