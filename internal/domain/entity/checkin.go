package entity

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn records a user's visit to a place. One per (place, user, Day).
type CheckIn struct {
	ID          uuid.UUID
	PlaceID     uuid.UUID
	UserID      uuid.UUID
	CheckedInAt time.Time
	Day         time.Time // midnight of CheckedInAt in the configured zone
}
