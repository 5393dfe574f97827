package repository

import (
	"context"
	"time"

	"mapic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for check-in persistence.
var (
	// ErrCheckInNotFound is returned when no check-in exists for the day.
	ErrCheckInNotFound = errors.New("check-in not found")
	// ErrDuplicateCheckIn is returned when the (place, user, day) key is taken.
	ErrDuplicateCheckIn = errors.New("check-in already exists")
)

// CheckInRepository stores check-ins.
type CheckInRepository interface {
	// CountForPlace returns the number of check-ins ever recorded for a place.
	CountForPlace(ctx context.Context, placeID uuid.UUID) (int64, error)

	// CountForPlaces batches CountForPlace. Places without check-ins may be absent.
	CountForPlaces(ctx context.Context, placeIDs []uuid.UUID) (map[uuid.UUID]int64, error)

	// FindTodayCheckIn returns the check-in of userID at placeID on day.
	FindTodayCheckIn(ctx context.Context, placeID, userID uuid.UUID, day time.Time) (*entity.CheckIn, error)

	// Save inserts a check-in.
	Save(ctx context.Context, checkIn *entity.CheckIn) error
}
