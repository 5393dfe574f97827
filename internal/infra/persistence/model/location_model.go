package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationSampleModel mirrors the append-only 'location_samples' table.
type LocationSampleModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_location_samples_user_observed,priority:1"`
	Latitude   float64   `gorm:"not null"`
	Longitude  float64   `gorm:"not null"`
	Speed      *float64
	Heading    *float64
	Accuracy   *float64
	Activity   string    `gorm:"type:varchar(32);not null"`
	ObservedAt time.Time `gorm:"not null;index:idx_location_samples_user_observed,priority:2"`
	RecordedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (LocationSampleModel) TableName() string {
	return "location_samples"
}
