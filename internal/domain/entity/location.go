package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationSample is one position report. Samples are never updated.
type LocationSample struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Latitude   float64
	Longitude  float64
	Speed      *float64 // m/s
	Heading    *float64 // degrees from north
	Accuracy   *float64 // meters
	Activity   string   // raw tag as reported; see Tag
	ObservedAt time.Time
	RecordedAt time.Time
}

// Tag returns the parsed activity tag.
func (s *LocationSample) Tag() ActivityTag {
	return ParseActivityTag(s.Activity)
}
