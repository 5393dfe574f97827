// Package geo holds the great-circle math shared by friend discovery, place
// ranking and the check-in proximity gate. Points are orb.Point values, which
// store longitude first.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the mean Earth radius used by every distance in the service.
const EarthRadiusMeters = 6371000.0

// orb sizes bounds with the equatorial radius, which is slightly larger than ours.
const boundPadding = 1.01

// Point builds an orb.Point from latitude and longitude.
func Point(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// DistanceMeters returns the haversine distance between a and b.
// NaN coordinates propagate to the result; callers validate input.
func DistanceMeters(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	deltaLat := (b.Lat() - a.Lat()) * math.Pi / 180
	deltaLng := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceBetween is DistanceMeters for raw coordinates.
func DistanceBetween(lat1, lng1, lat2, lng2 float64) float64 {
	return DistanceMeters(Point(lat1, lng1), Point(lat2, lng2))
}

// Area is a prefilter for points within a radius of a center. Points it
// admits still need an exact DistanceMeters check.
type Area struct {
	box  orb.Bound
	wrap bool
}

// Around returns the Area covering every point within radiusMeters of center.
// A box that crosses the antimeridian cannot be expressed as one lon/lat
// rectangle, so such an Area admits every point.
func Around(center orb.Point, radiusMeters float64) Area {
	box := orbgeo.NewBoundAroundPoint(center, radiusMeters*boundPadding)

	return Area{box: box, wrap: box.Min.Lon() > box.Max.Lon()}
}

// MayContain reports whether p can be within the radius.
func (a Area) MayContain(p orb.Point) bool {
	if a.wrap {
		return true
	}

	return a.box.Contains(p)
}

// Valid reports whether lat/lng are finite and inside the usual ranges.
func Valid(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
