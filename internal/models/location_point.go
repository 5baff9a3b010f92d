package models

// LocationPoint is a single decoded sample from the location history export
type LocationPoint struct {
	Timestamp int64   `json:"timestamp" db:"timestamp"` // Unix timestamp in seconds
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// HistoryLoadResult holds the decoded points plus bookkeeping about skipped samples
type HistoryLoadResult struct {
	Points  []LocationPoint
	Total   int            // Samples present in the export
	Skipped []SkippedSample
}

// SkippedSample records why a sample could not be decoded
type SkippedSample struct {
	Index  int
	Reason string
}
