package spatial

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// DegreesToMeters converts an arc length in decimal degrees to meters along a great circle.
// Used for logging only; containment stays planar.
func DegreesToMeters(degrees float64) float64 {
	return (s1.Angle(degrees) * s1.Degree).Radians() * EarthRadiusMeters
}

// MapsLink generates a Google Maps search link to a point
func MapsLink(lat, lon float64) string {
	return fmt.Sprintf("https://www.google.com/search?hl=en&q=%g%%2C%g", lat, lon)
}

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
)
