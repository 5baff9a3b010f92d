package analysis

import "github.com/jengzang/location-totals/internal/models"

// FilterPoints returns the points whose timestamp passes the filter, in their
// original order. The input slice is not modified.
func FilterPoints(points []models.LocationPoint, filter models.TimeFilter) []models.LocationPoint {
	out := make([]models.LocationPoint, 0, len(points))
	for _, p := range points {
		if filter.Contains(p.Timestamp) {
			out = append(out, p)
		}
	}
	return out
}
