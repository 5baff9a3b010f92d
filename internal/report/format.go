package report

import "fmt"

// SecondsPerHour is used for the fractional hours columns
const SecondsPerHour = 60 * 60

// FormatDuration renders seconds as H:MM:SS. Hours are not capped.
func FormatDuration(seconds int64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%d:%02d:%02d", sign, seconds/3600, seconds/60%60, seconds%60)
}

// Hours converts seconds to fractional hours
func Hours(seconds int64) float64 {
	return float64(seconds) / SecondsPerHour
}
