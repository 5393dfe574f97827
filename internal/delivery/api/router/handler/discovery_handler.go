package handler

import (
	"log/slog"
	"net/http"

	"mapic/internal/delivery/api/response"
	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	"mapic/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// DiscoveryHandler answers where the caller's friends are.
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler.
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// SearchFriendsRequest is the body of POST /friends/search. Every field is optional.
type SearchFriendsRequest struct {
	Query         string   `json:"query" validate:"max=100"`
	Status        string   `json:"status"`
	Activity      string   `json:"activity_status"`
	MaxDistance   *float64 `json:"max_distance" validate:"omitempty,gt=0"`
	UserLatitude  *float64 `json:"user_latitude" validate:"omitempty,latitude"`
	UserLongitude *float64 `json:"user_longitude" validate:"omitempty,longitude"`
}

// Search filters friends by the JSON body.
func (h *DiscoveryHandler) Search(c echo.Context) error {
	var req SearchFriendsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.search(c, req)
}

// List is Search driven by query parameters.
func (h *DiscoveryHandler) List(c echo.Context) error {
	req := SearchFriendsRequest{
		Query:    c.QueryParam("query"),
		Status:   c.QueryParam("status"),
		Activity: c.QueryParam("activityStatus"),
	}

	var err error
	if req.MaxDistance, err = queryFloat(c, "maxDistance"); err != nil {
		return err
	}
	if req.UserLatitude, err = queryFloat(c, "userLatitude"); err != nil {
		return err
	}
	if req.UserLongitude, err = queryFloat(c, "userLongitude"); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return h.search(c, req)
}

func (h *DiscoveryHandler) search(c echo.Context, req SearchFriendsRequest) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	presence, ok := entity.ParsePresenceTier(req.Status)
	if !ok && req.Status != "" {
		return domainerrors.ErrValidationFailed.WithDetails("unknown status " + req.Status)
	}

	result, err := h.discoveryUC.Search(c.Request().Context(), userID, &usecase.DiscoveryCriteria{
		Query:             req.Query,
		Presence:          presence,
		Activity:          req.Activity,
		MaxDistanceMeters: req.MaxDistance,
		Latitude:          req.UserLatitude,
		Longitude:         req.UserLongitude,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// Nearby lists friends by distance from lat/lng.
func (h *DiscoveryHandler) Nearby(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	lat, err := requireFloat(c, "lat")
	if err != nil {
		return err
	}
	lon, err := requireFloat(c, "lng")
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}

	result, err := h.discoveryUC.Nearby(c.Request().Context(), userID, lat, lon, limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *DiscoveryHandler) Profile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	friendID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	lat, err := queryFloat(c, "userLatitude")
	if err != nil {
		return err
	}
	lon, err := queryFloat(c, "userLongitude")
	if err != nil {
		return err
	}

	profile, err := h.discoveryUC.Profile(c.Request().Context(), userID, friendID, lat, lon)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile)
}
