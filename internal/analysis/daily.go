package analysis

import (
	"sort"
	"time"

	"github.com/jengzang/location-totals/internal/models"
)

// DailyTotals sums visit durations per UTC day of the visit start. Rows are
// ordered by day, then by POI definition order.
func DailyTotals(visits []models.Visit, pois []models.PointOfInterest) []models.DailyTotal {
	order := make(map[string]int, len(pois))
	for i, poi := range pois {
		order[poi.Label] = i
	}

	type key struct {
		day   string
		label string
	}
	totals := make(map[key]int64)
	for _, v := range visits {
		k := key{day: time.Unix(v.StartTime, 0).UTC().Format("2006-01-02"), label: v.Label}
		totals[k] += v.Duration
	}

	rows := make([]models.DailyTotal, 0, len(totals))
	for k, seconds := range totals {
		rows = append(rows, models.DailyTotal{Date: k.day, Label: k.label, Seconds: seconds})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return order[rows[i].Label] < order[rows[j].Label]
	})
	return rows
}
