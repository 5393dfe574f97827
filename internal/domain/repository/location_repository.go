package repository

import (
	"context"
	"time"

	"mapic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when a user has never reported a location.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository stores location samples. Samples are append-only.
type LocationRepository interface {
	// Save appends a sample.
	Save(ctx context.Context, sample *entity.LocationSample) error

	// LatestFor returns the sample with the greatest ObservedAt for userID.
	LatestFor(ctx context.Context, userID uuid.UUID) (*entity.LocationSample, error)

	// HistorySince returns samples observed at or after since, oldest first.
	HistorySince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.LocationSample, error)

	// HistoryBetween returns samples observed in [from, to], oldest first.
	HistoryBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.LocationSample, error)

	// LatestForMany returns the latest sample of each user that has one, keyed by user ID.
	LatestForMany(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.LocationSample, error)

	// DeleteOlderThan removes samples observed before cutoff and returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
