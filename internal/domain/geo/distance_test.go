package geo

import (
	"math"
	"testing"

	"lostfound/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

var riga = entity.GeoPoint{Lat: 56.9496, Lng: 24.1052}

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	points := []entity.GeoPoint{
		riga,
		{Lat: 0, Lng: 0},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 90, Lng: 180},
	}

	for _, p := range points {
		assert.InDelta(t, 0, DistanceKm(p, p), 1e-9)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	pairs := [][2]entity.GeoPoint{
		{riga, {Lat: 56.9577, Lng: 24.1052}},
		{{Lat: 51.5074, Lng: -0.1278}, {Lat: 48.8566, Lng: 2.3522}},
		{{Lat: -33.8688, Lng: 151.2093}, {Lat: 40.7128, Lng: -74.0060}},
	}

	for _, pair := range pairs {
		assert.InDelta(t, DistanceKm(pair[0], pair[1]), DistanceKm(pair[1], pair[0]), 1e-9)
	}
}

func TestDistanceKm_KnownFixtures(t *testing.T) {
	tests := []struct {
		name      string
		a, b      entity.GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name:      "riga to 0.9 km north",
			a:         riga,
			b:         entity.GeoPoint{Lat: 56.9577, Lng: 24.1052},
			expected:  0.9,
			tolerance: 0.05,
		},
		{
			name:      "london to paris",
			a:         entity.GeoPoint{Lat: 51.5074, Lng: -0.1278},
			b:         entity.GeoPoint{Lat: 48.8566, Lng: 2.3522},
			expected:  343.5,
			tolerance: 1,
		},
		{
			name:      "antipodal points",
			a:         entity.GeoPoint{Lat: 0, Lng: 0},
			b:         entity.GeoPoint{Lat: 0, Lng: 180},
			expected:  math.Pi * EarthRadiusKm,
			tolerance: 1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
			assert.False(t, math.IsNaN(got))
		})
	}
}

func TestDistanceKm_MonotonicWithSeparation(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 10; i++ {
		d := DistanceKm(riga, entity.GeoPoint{Lat: riga.Lat + float64(i)*0.01, Lng: riga.Lng})
		assert.Greater(t, d, prev)
		prev = d
	}
}
