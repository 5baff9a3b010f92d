package spatial_test

import (
	"math"
	"testing"

	"github.com/jengzang/location-totals/internal/models"
	"github.com/jengzang/location-totals/internal/spatial"
)

func TestContainsCenterForAnyRadius(t *testing.T) {
	t.Parallel()
	for _, r := range []float64{1e-9, 0.0001, 0.05, 1, 45} {
		poi := models.PointOfInterest{Label: "x", Latitude: 47.6, Longitude: -122.3, Radius: r}
		if !spatial.Contains(poi, poi.Latitude, poi.Longitude) {
			t.Fatalf("center should be inside POI with radius %g", r)
		}
	}
}

func TestContainsBoundary(t *testing.T) {
	t.Parallel()
	poi := models.PointOfInterest{Label: "x", Latitude: 0, Longitude: 0, Radius: 0.5}

	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{name: "on edge", lat: 0.5, lon: 0, want: true},
		{name: "just outside", lat: 0.5, lon: 0.001, want: false},
		{name: "diagonal inside", lat: 0.3, lon: 0.3, want: true},
		{name: "diagonal outside", lat: 0.4, lon: 0.4, want: false},
		{name: "far away", lat: 10, lon: 10, want: false},
	}
	for _, tt := range tests {
		if got := spatial.Contains(poi, tt.lat, tt.lon); got != tt.want {
			t.Errorf("%s: Contains(%g, %g) = %v, want %v", tt.name, tt.lat, tt.lon, got, tt.want)
		}
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	t.Parallel()
	pois := []models.PointOfInterest{
		{Label: "small", Latitude: 1, Longitude: 1, Radius: 0.01},
		{Label: "outer", Latitude: 0, Longitude: 0, Radius: 2},
		{Label: "inner", Latitude: 0, Longitude: 0, Radius: 1},
	}
	if got := spatial.Classify(pois, 0, 0); got != 1 {
		t.Fatalf("Classify at origin = %d, want 1", got)
	}
	if got := spatial.Classify(pois, 1, 1); got != 0 {
		t.Fatalf("Classify at (1,1) = %d, want 0", got)
	}
	if got := spatial.Classify(pois, 50, 50); got != -1 {
		t.Fatalf("Classify far away = %d, want -1", got)
	}
}

func TestDegreesToMeters(t *testing.T) {
	t.Parallel()
	got := spatial.DegreesToMeters(1)
	want := spatial.EarthRadiusMeters * math.Pi / 180
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("DegreesToMeters(1) = %f, want %f", got, want)
	}
	d := spatial.HaversineDistance(0, 0, 0, 1)
	if math.Abs(d-want) > 1 {
		t.Fatalf("HaversineDistance along equator = %f, want about %f", d, want)
	}
}
