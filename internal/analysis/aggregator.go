package analysis

import (
	"github.com/jengzang/location-totals/internal/models"
	"github.com/jengzang/location-totals/internal/spatial"
)

// Rewind is a pair of consecutive samples whose timestamps go backwards
type Rewind struct {
	Index int   // Position of the earlier sample in the export
	From  int64 // Timestamp of the earlier sample
	To    int64 // Timestamp of its successor
}

// AggregationResult is the output of a single aggregation pass
type AggregationResult struct {
	Aggregate models.Aggregate
	Visits    []models.Visit
	Rewinds   []Rewind
}

// Aggregate walks the export once, pair by pair.
//
// The interval between a sample and its successor is clipped to the time
// filter. It is dwell time for the first POI containing the sample when the
// successor is still inside that POI; otherwise it is unclassified. Every
// backwards interval is skipped and reported as a rewind, whether or not it
// touches the filter. The last sample has no successor so it credits nothing.
// A visit opens only on an interval that credits time.
func Aggregate(points []models.LocationPoint, pois []models.PointOfInterest, filter models.TimeFilter) *AggregationResult {
	result := &AggregationResult{
		Aggregate: models.Aggregate{Totals: make([]models.POITotal, len(pois))},
	}
	for i, poi := range pois {
		result.Aggregate.Totals[i].Label = poi.Label
	}

	agg := &result.Aggregate
	var current *models.Visit
	currentPOI := -1
	closeVisit := func() {
		if current != nil {
			result.Visits = append(result.Visits, *current)
			current = nil
			currentPOI = -1
		}
	}

	var first, last int64
	for i, p := range points {
		if filter.Contains(p.Timestamp) {
			if agg.Points == 0 {
				first = p.Timestamp
			}
			last = p.Timestamp
			agg.Points++
		}
		if i+1 == len(points) {
			break
		}
		next := points[i+1]

		if next.Timestamp < p.Timestamp {
			agg.OutOfOrder++
			agg.Rewound += p.Timestamp - next.Timestamp
			result.Rewinds = append(result.Rewinds, Rewind{Index: i, From: p.Timestamp, To: next.Timestamp})
			continue
		}

		start, end, seconds, ok := filter.Clip(p.Timestamp, next.Timestamp)
		if !ok {
			closeVisit()
			continue
		}
		agg.Covered += seconds

		idx := spatial.Classify(pois, p.Latitude, p.Longitude)
		if idx < 0 || !spatial.Contains(pois[idx], next.Latitude, next.Longitude) {
			agg.Unclassified += seconds
			closeVisit()
			continue
		}

		agg.Totals[idx].Seconds += seconds
		if current == nil || currentPOI != idx {
			closeVisit()
			if seconds == 0 {
				continue
			}
			current = &models.Visit{
				Label:      pois[idx].Label,
				StartTime:  start,
				EndTime:    start,
				Latitude:   p.Latitude,
				Longitude:  p.Longitude,
				PointCount: 1,
			}
			currentPOI = idx
		}
		current.Duration += seconds
		current.PointCount++
		current.EndTime = max(current.EndTime, end)
	}
	closeVisit()

	agg.Span = last - first
	return result
}
