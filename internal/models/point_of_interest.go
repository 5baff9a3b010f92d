package models

// PointOfInterest is a labeled circular area loaded from the area document
type PointOfInterest struct {
	Label     string  `json:"label" db:"label"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Radius    float64 `json:"radius" db:"radius"` // Decimal degrees, always > 0
	Line      int     `json:"line,omitempty" db:"-"` // Source line in the area document
}
