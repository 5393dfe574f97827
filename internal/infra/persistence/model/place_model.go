package model

import (
	"github.com/google/uuid"
)

// PlaceModel mirrors the seeded 'places' table.
type PlaceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Category     string    `gorm:"type:varchar(32);not null;index"`
	Address      string    `gorm:"type:text"`
	Latitude     float64   `gorm:"not null"`
	Longitude    float64   `gorm:"not null"`
	Phone        string    `gorm:"type:varchar(32)"`
	Rating       float64   `gorm:"not null;default:0"`
	Description  string    `gorm:"type:text"`
	ImageURL     *string   `gorm:"type:text"`
	OpeningHours string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}
