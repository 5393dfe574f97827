// Package handler contains the echo handlers of the public API.
//
// Handlers return use case errors unchanged; the centralized error handler
// renders them.
package handler

import (
	"net/http"
	"time"

	"mapic/internal/delivery/api/middleware"
	"mapic/internal/delivery/api/response"
	domainerrors "mapic/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return userID, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// bind decodes the request into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return c.Validate(req)
}

// HealthCheck reports liveness with the service name from env.serviceName.
func HealthCheck(service string) echo.HandlerFunc {
	if service == "" {
		service = "mapic"
	}

	return func(c echo.Context) error {
		return response.Success(c, http.StatusOK, map[string]string{"status": "ok", "service": service})
	}
}

// queryFloat returns nil when the parameter is absent.
func queryFloat(c echo.Context, name string) (*float64, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}

	var v float64
	if err := echo.QueryParamsBinder(c).Float64(name, &v).BindError(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return &v, nil
}

// requireFloat is queryFloat for mandatory parameters.
func requireFloat(c echo.Context, name string) (float64, error) {
	v, err := queryFloat(c, name)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " is required")
	}

	return *v, nil
}

// queryInt returns def when the parameter is absent.
func queryInt(c echo.Context, name string, def int) (int, error) {
	if c.QueryParam(name) == "" {
		return def, nil
	}

	v := def
	if err := echo.QueryParamsBinder(c).Int(name, &v).BindError(); err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return v, nil
}

// queryTime parses an optional RFC 3339 timestamp.
func queryTime(c echo.Context, name string) (*time.Time, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}

	var t time.Time
	if err := echo.QueryParamsBinder(c).Time(name, &t, time.RFC3339).BindError(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return &t, nil
}
