package usecase

import (
	"context"
	"time"

	"mapic/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportLocationInput is a position reported by a client.
type ReportLocationInput struct {
	Latitude  float64
	Longitude float64
	Speed     *float64
	Heading   *float64
	Accuracy  *float64
	// Activity defaults to stationary.
	Activity string
	// ObservedAt defaults to now.
	ObservedAt *time.Time
}

// FriendLocation is a friend's latest sample.
type FriendLocation struct {
	UserID    uuid.UUID              `json:"user_id"`
	Name      string                 `json:"name"`
	AvatarURL string                 `json:"avatar_url,omitempty"`
	Location  *entity.LocationSample `json:"location"`
}

// LocationUsecase handles location reporting and history.
type LocationUsecase interface {
	Report(ctx context.Context, userID uuid.UUID, input *ReportLocationInput) (*entity.LocationSample, error)

	Latest(ctx context.Context, userID uuid.UUID) (*entity.LocationSample, error)

	// FriendLatest requires an accepted friendship.
	FriendLatest(ctx context.Context, userID, friendID uuid.UUID) (*entity.LocationSample, error)

	// History defaults to the last 24 hours when from or to is nil.
	History(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*entity.LocationSample, error)

	// FriendsLatest returns the latest sample of every accepted friend who has one.
	FriendsLatest(ctx context.Context, userID uuid.UUID) ([]*FriendLocation, error)

	// CleanupOld deletes samples older than the retention period.
	CleanupOld(ctx context.Context) (int64, error)
}
