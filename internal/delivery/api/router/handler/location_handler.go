package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mapic/internal/delivery/api/response"
	"mapic/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler serves /api/v1/locations.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ReportLocationRequest is a position sample from the client.
type ReportLocationRequest struct {
	Latitude   *float64   `json:"latitude" validate:"required,latitude"`
	Longitude  *float64   `json:"longitude" validate:"required,longitude"`
	Speed      *float64   `json:"speed" validate:"omitempty,gte=0"`
	Heading    *float64   `json:"heading" validate:"omitempty,gte=0,lt=360"`
	Accuracy   *float64   `json:"accuracy" validate:"omitempty,gte=0"`
	Activity   string     `json:"activity" validate:"max=32"`
	ObservedAt *time.Time `json:"observed_at"`
}

func (h *LocationHandler) Report(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req ReportLocationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	sample, err := h.locationUC.Report(c.Request().Context(), userID, &usecase.ReportLocationInput{
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		Speed:      req.Speed,
		Heading:    req.Heading,
		Accuracy:   req.Accuracy,
		Activity:   req.Activity,
		ObservedAt: req.ObservedAt,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toLocationResponse(sample))
}

func (h *LocationHandler) Latest(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	sample, err := h.locationUC.Latest(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toLocationResponse(sample))
}

// FriendLatest returns another user's latest sample; they must be a friend.
func (h *LocationHandler) FriendLatest(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	friendID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	sample, err := h.locationUC.FriendLatest(c.Request().Context(), userID, friendID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toLocationResponse(sample))
}

func (h *LocationHandler) History(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	from, err := queryTime(c, "from")
	if err != nil {
		return err
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return err
	}

	samples, err := h.locationUC.History(c.Request().Context(), userID, from, to)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toLocationResponses(samples))
}

func (h *LocationHandler) FriendsLatest(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	locations, err := h.locationUC.FriendsLatest(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toFriendLocationResponses(locations))
}
