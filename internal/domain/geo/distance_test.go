package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		name string
		a, b [2]float64
	}{
		{name: "saigon blocks", a: [2]float64{10.7797, 106.6991}, b: [2]float64{10.7825, 106.6920}},
		{name: "across equator", a: [2]float64{-1.5, 36.8}, b: [2]float64{2.1, 35.9}},
		{name: "antimeridian", a: [2]float64{64.2, 179.9}, b: [2]float64{64.1, -179.8}},
		{name: "poles", a: [2]float64{89.9, 0}, b: [2]float64{-89.9, 0}},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := Point(tt.a[0], tt.a[1])
			b := Point(tt.b[0], tt.b[1])
			assert.InDelta(t, DistanceMeters(a, b), DistanceMeters(b, a), 1e-6)
			assert.Zero(t, DistanceMeters(a, a))
		})
	}
}

func TestDistanceMeters_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lat1     float64
		lng1     float64
		lat2     float64
		lng2     float64
		expected float64
		delta    float64
	}{
		{name: "district one", lat1: 10.7797, lng1: 106.6991, lat2: 10.7825, lng2: 106.6920, expected: 835.7, delta: 1},
		{name: "nearby friend", lat1: 10.781, lng1: 106.701, lat2: 10.78, lng2: 106.70, expected: 155.9, delta: 1},
		{name: "one degree of longitude on equator", lat1: 0, lng1: 0, lat2: 0, lng2: 1, expected: 111194.9, delta: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, DistanceBetween(tt.lat1, tt.lng1, tt.lat2, tt.lng2), tt.delta)
		})
	}
}

func TestDistanceMeters_NaNPropagates(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsNaN(DistanceBetween(math.NaN(), 0, 0, 0)))
}

func TestAround_MayContain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		center orb.Point
		point  orb.Point
		want   bool
	}{
		{name: "due north under 1 km", center: Point(10.78, 106.70), point: Point(10.78+0.00899, 106.70), want: true},
		{name: "due east under 1 km", center: Point(10.78, 106.70), point: Point(10.78, 106.70+0.00899/math.Cos(10.78*math.Pi/180)), want: true},
		{name: "far north", center: Point(10.78, 106.70), point: Point(10.80, 106.70), want: false},
		{name: "center next to the antimeridian", center: Point(0, 179.9995), point: Point(0.001, 179.9995), want: true},
		{name: "across the antimeridian", center: Point(0, 179.9995), point: Point(0, -179.9995), want: true},
		{name: "near a pole", center: Point(89.9995, 0), point: Point(89.9995, 120), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Around(tt.center, 1000).MayContain(tt.point))
		})
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Valid(10.78, 106.70))
	assert.False(t, Valid(91, 0))
	assert.False(t, Valid(0, -181))
	assert.False(t, Valid(math.NaN(), 0))
	assert.False(t, Valid(0, math.Inf(1)))
}
