package handler

import (
	"log/slog"
	"net/http"

	"mapic/internal/delivery/api/response"
	"mapic/internal/domain/entity"
	"mapic/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	PlaceUC usecase.PlaceUsecase
	Logger  *slog.Logger
}

// PlaceHandler serves /api/v1/places.
type PlaceHandler struct {
	placeUC usecase.PlaceUsecase
	logger  *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler.
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{
		placeUC: params.PlaceUC,
		logger:  params.Logger,
	}
}

// SearchPlacesRequest is the body of POST /places/search.
type SearchPlacesRequest struct {
	Query     string   `json:"query" validate:"max=100"`
	Category  string   `json:"category"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	Radius    *float64 `json:"radius" validate:"omitempty,gt=0"`
}

// CheckInRequest is the caller's current position.
type CheckInRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

func categoryFilter(raw string) *entity.PlaceCategory {
	if raw == "" {
		return nil
	}
	category := entity.ParsePlaceCategory(raw)

	return &category
}

func (h *PlaceHandler) Search(c echo.Context) error {
	var req SearchPlacesRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	places, err := h.placeUC.Search(c.Request().Context(), &usecase.PlaceSearchCriteria{
		Query:        req.Query,
		Category:     categoryFilter(req.Category),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.Radius,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, places)
}

// Nearby lists places around latitude/longitude, 5 km unless radius is given.
func (h *PlaceHandler) Nearby(c echo.Context) error {
	lat, err := requireFloat(c, "latitude")
	if err != nil {
		return err
	}
	lon, err := requireFloat(c, "longitude")
	if err != nil {
		return err
	}
	radius, err := queryFloat(c, "radius")
	if err != nil {
		return err
	}
	var radiusMeters float64
	if radius != nil {
		radiusMeters = *radius
	}

	places, err := h.placeUC.Nearby(c.Request().Context(), lat, lon, radiusMeters, categoryFilter(c.QueryParam("category")))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, places)
}

func (h *PlaceHandler) GetPlace(c echo.Context) error {
	placeID, err := pathUUID(c, "placeId")
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

	place, err := h.placeUC.GetPlace(c.Request().Context(), placeID, lat, lon)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, place)
}

func (h *PlaceHandler) Categories(c echo.Context) error {
	categories, err := h.placeUC.CategoriesWithCounts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, categories)
}

// Popular ranks places around lat/lng. radius is in kilometres.
func (h *PlaceHandler) Popular(c echo.Context) error {
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
	radius, err := queryFloat(c, "radius")
	if err != nil {
		return err
	}
	var radiusKm float64
	if radius != nil {
		radiusKm = *radius
	}

	places, err := h.placeUC.TopPlaces(c.Request().Context(), lat, lon, limit, radiusKm)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, places)
}

func (h *PlaceHandler) CheckIn(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	placeID, err := pathUUID(c, "placeId")
	if err != nil {
		return err
	}

	var req CheckInRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	checkIn, err := h.placeUC.CheckIn(c.Request().Context(), placeID, userID, *req.Latitude, *req.Longitude)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toCheckInResponse(checkIn))
}
