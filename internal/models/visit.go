package models

// Visit is a run of consecutive points classified into the same POI
type Visit struct {
	Label      string  `json:"label" db:"label"`
	StartTime  int64   `json:"startTime" db:"start_ts"` // Unix timestamp
	EndTime    int64   `json:"endTime" db:"end_ts"`     // Unix timestamp
	Duration   int64   `json:"duration" db:"duration_s"` // Seconds credited to the POI
	PointCount int     `json:"pointCount" db:"point_count"`
	Latitude   float64 `json:"latitude" db:"latitude"`   // Position of the first point
	Longitude  float64 `json:"longitude" db:"longitude"` // Position of the first point
}

// DailyTotal is the visit time of one POI on one UTC day
type DailyTotal struct {
	Date    string `json:"date" db:"day"` // YYYY-MM-DD
	Label   string `json:"label" db:"label"`
	Seconds int64  `json:"totalSeconds" db:"total_seconds"`
}
