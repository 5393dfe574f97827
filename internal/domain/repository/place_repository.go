package repository

import (
	"context"

	"mapic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPlaceNotFound is returned when a place ID does not exist.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceRepository reads seeded place data.
type PlaceRepository interface {
	// All returns every place in a stable order.
	All(ctx context.Context) ([]*entity.Place, error)

	// ByCategory returns places of one category.
	ByCategory(ctx context.Context, category entity.PlaceCategory) ([]*entity.Place, error)

	// SearchByText matches query case-insensitively against name, address and description.
	// A nil category searches all categories.
	SearchByText(ctx context.Context, query string, category *entity.PlaceCategory) ([]*entity.Place, error)

	// CountByCategory returns the number of places per category. Zero counts may be omitted.
	CountByCategory(ctx context.Context) (map[entity.PlaceCategory]int64, error)

	// FindByID retrieves a place.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)

	// Create inserts a place. Used by seeding.
	Create(ctx context.Context, place *entity.Place) error
}
