package models

// POITotal is the accumulated dwell time of one point of interest
type POITotal struct {
	Label   string `json:"label" db:"label"`
	Seconds int64  `json:"totalSeconds" db:"total_seconds"`
}

// Aggregate holds per-POI totals in definition order and the time that could
// not be attributed to any POI.
type Aggregate struct {
	Totals       []POITotal `json:"totals"`
	Unclassified int64      `json:"unclassified"` // Seconds spent outside every POI
	Rewound      int64      `json:"rewound"`      // Seconds of backwards intervals that were skipped
	OutOfOrder   int        `json:"outOfOrder"`   // Number of backwards intervals
	Points       int        `json:"points"`       // Points inside the time filter
	Span         int64      `json:"span"`         // Last minus first filtered timestamp
	Covered      int64      `json:"covered"`      // Clipped time covered by the filtered runs
}

// Total returns the seconds accumulated for label
func (a *Aggregate) Total(label string) (int64, bool) {
	for _, t := range a.Totals {
		if t.Label == label {
			return t.Seconds, true
		}
	}
	return 0, false
}

// Classified returns the sum of all POI totals
func (a *Aggregate) Classified() int64 {
	var sum int64
	for _, t := range a.Totals {
		sum += t.Seconds
	}
	return sum
}
