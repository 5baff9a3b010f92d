package spatial

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/jengzang/location-totals/internal/models"
)

// Contains reports whether a point lies inside the POI circle. The test is planar:
// latitude and longitude are treated as Cartesian coordinates in degrees.
func Contains(poi models.PointOfInterest, lat, lon float64) bool {
	center := orb.Point{poi.Longitude, poi.Latitude}
	return planar.DistanceSquared(center, orb.Point{lon, lat}) <= poi.Radius*poi.Radius
}

// Classify returns the index of the first POI containing the point, or -1
func Classify(pois []models.PointOfInterest, lat, lon float64) int {
	for i, poi := range pois {
		if Contains(poi, lat, lon) {
			return i
		}
	}
	return -1
}
