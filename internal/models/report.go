package models

// Report is the finished result of one run
type Report struct {
	POIs        []PointOfInterest `json:"pois"`
	Aggregate   Aggregate         `json:"aggregate"`
	Visits      []Visit           `json:"visits"`
	DailyTotals []DailyTotal      `json:"dailyTotals"`

	// Load statistics
	SamplesRead    int `json:"samplesRead"`
	SamplesSkipped int `json:"samplesSkipped"`
	FilteredOut    int `json:"filteredOut"`
}
