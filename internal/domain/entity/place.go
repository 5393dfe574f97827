package entity

import (
	"strings"

	"github.com/google/uuid"
)

// PlaceCategory is the closed set of place categories.
type PlaceCategory string

const (
	CategoryCafe          PlaceCategory = "CAFE"
	CategoryRestaurant    PlaceCategory = "RESTAURANT"
	CategoryPark          PlaceCategory = "PARK"
	CategoryMuseum        PlaceCategory = "MUSEUM"
	CategoryShopping      PlaceCategory = "SHOPPING"
	CategoryEntertainment PlaceCategory = "ENTERTAINMENT"
	CategoryOther         PlaceCategory = "OTHER"
)

// PlaceCategories lists categories in display order.
var PlaceCategories = []PlaceCategory{
	CategoryCafe,
	CategoryRestaurant,
	CategoryPark,
	CategoryMuseum,
	CategoryShopping,
	CategoryEntertainment,
	CategoryOther,
}

// ParsePlaceCategory maps any casing onto the closed set; unseen values become OTHER.
func ParsePlaceCategory(s string) PlaceCategory {
	category := PlaceCategory(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range PlaceCategories {
		if category == known {
			return category
		}
	}

	return CategoryOther
}

// Place is seeded reference data.
type Place struct {
	ID           uuid.UUID
	Name         string
	Category     PlaceCategory
	Address      string
	Latitude     float64
	Longitude    float64
	Phone        string
	Rating       float64 // 0-5
	Description  string
	ImageURL     string
	OpeningHours string
}
