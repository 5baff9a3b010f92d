package stats

import (
	"sort"

	"github.com/jengzang/location-totals/internal/models"
)

// DurationSummary describes the visits of one POI
type DurationSummary struct {
	Label   string
	Visits  int
	Total   int64
	Mean    float64
	Median  float64
	Longest int64
}

// Mean calculates the arithmetic mean of a slice of durations
func Mean(values []int64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum int64
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// Median calculates the median duration
func Median(values []int64) float64 {
	if len(values) == 0 {
		return 0
	}

	// Create a copy to avoid modifying the original slice
	sorted := make([]int64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return float64(sorted[n/2])
}

// Max returns the largest duration
func Max(values []int64) int64 {
	if len(values) == 0 {
		return 0
	}

	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// SummarizeVisits groups visits by POI, keeping POI definition order. POIs
// without visits are included with zero values.
func SummarizeVisits(visits []models.Visit, pois []models.PointOfInterest) []DurationSummary {
	byLabel := make(map[string][]int64, len(pois))
	for _, v := range visits {
		byLabel[v.Label] = append(byLabel[v.Label], v.Duration)
	}

	summaries := make([]DurationSummary, 0, len(pois))
	for _, poi := range pois {
		durations := byLabel[poi.Label]
		var total int64
		for _, d := range durations {
			total += d
		}
		summaries = append(summaries, DurationSummary{
			Label:   poi.Label,
			Visits:  len(durations),
			Total:   total,
			Mean:    Mean(durations),
			Median:  Median(durations),
			Longest: Max(durations),
		})
	}
	return summaries
}
