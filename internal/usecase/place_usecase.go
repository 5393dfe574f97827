package usecase

import (
	"context"

	"mapic/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceView is a place as shown to a caller, optionally relative to their position.
type PlaceView struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Category       entity.PlaceCategory `json:"category"`
	Address        string               `json:"address"`
	Latitude       float64              `json:"latitude"`
	Longitude      float64              `json:"longitude"`
	Phone          string               `json:"phone,omitempty"`
	Rating         float64              `json:"rating"`
	Description    string               `json:"description,omitempty"`
	ImageURL       string               `json:"image_url,omitempty"`
	OpeningHours   string               `json:"opening_hours,omitempty"`
	DistanceMeters *float64             `json:"distance_meters,omitempty"`
	CheckInCount   int64                `json:"checkin_count"`
	Score          float64              `json:"score,omitempty"`
}

// CategoryCount is one entry of the category picker.
type CategoryCount struct {
	Category string `json:"category"`
	Icon     string `json:"icon"`
	Count    int64  `json:"count"`
}

// PlaceSearchCriteria filters places. Radius applies only with caller coordinates.
type PlaceSearchCriteria struct {
	Query        string
	Category     *entity.PlaceCategory
	Latitude     *float64
	Longitude    *float64
	RadiusMeters *float64
}

// PlaceUsecase covers place discovery, ranking and check-in.
type PlaceUsecase interface {
	// TopPlaces ranks places within radiusKm by check-ins, rating and distance.
	TopPlaces(ctx context.Context, lat, lon float64, limit int, radiusKm float64) ([]*PlaceView, error)

	CategoriesWithCounts(ctx context.Context) ([]*CategoryCount, error)

	Search(ctx context.Context, criteria *PlaceSearchCriteria) ([]*PlaceView, error)

	// Nearby is Search by position with the configured default radius when radiusMeters <= 0.
	Nearby(ctx context.Context, lat, lon, radiusMeters float64, category *entity.PlaceCategory) ([]*PlaceView, error)

	GetPlace(ctx context.Context, placeID uuid.UUID, lat, lon *float64) (*PlaceView, error)

	// CheckIn records a visit. One per place, user and calendar day; the caller must be close by.
	CheckIn(ctx context.Context, placeID, userID uuid.UUID, lat, lon float64) (*entity.CheckIn, error)
}
