package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jengzang/location-totals/internal/apperrors"
	"github.com/jengzang/location-totals/internal/models"
)

// Flags holds the raw command line values
type Flags struct {
	HistoryPath     string
	AreaPath        string
	Times           []string // Each "start,stop" in Unix seconds
	OutputPath      string
	DailyOutputPath string
	SQLitePath      string
	ShowVisits      bool
	Debug           bool
}

// Config is the validated run configuration
type Config struct {
	HistoryPath     string
	AreaPath        string
	Filter          models.TimeFilter
	OutputPath      string // Totals CSV; console report when empty
	DailyOutputPath string
	SQLitePath      string
	ShowVisits      bool
	Debug           bool
}

// Load validates flags and builds a Config
func Load(flags Flags) (*Config, error) {
	if strings.TrimSpace(flags.HistoryPath) == "" {
		return nil, fmt.Errorf("history file path is required")
	}
	if strings.TrimSpace(flags.AreaPath) == "" {
		return nil, fmt.Errorf("--area is required")
	}

	windows := make([]models.TimeWindow, 0, len(flags.Times))
	for _, raw := range flags.Times {
		w, err := ParseTimeWindow(raw)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}

	return &Config{
		HistoryPath:     flags.HistoryPath,
		AreaPath:        flags.AreaPath,
		Filter:          models.NewTimeFilter(windows...),
		OutputPath:      flags.OutputPath,
		DailyOutputPath: flags.DailyOutputPath,
		SQLitePath:      flags.SQLitePath,
		ShowVisits:      flags.ShowVisits,
		Debug:           flags.Debug,
	}, nil
}

// ParseTimeWindow parses "start,stop" with both bounds in Unix seconds
func ParseTimeWindow(raw string) (models.TimeWindow, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return models.TimeWindow{}, fmt.Errorf("%w: %q: expected start,stop", apperrors.ErrInvalidTimeRange, raw)
	}

	var bounds [2]int64
	for i, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return models.TimeWindow{}, fmt.Errorf("%w: %q: %q is not an integer timestamp", apperrors.ErrInvalidTimeRange, raw, strings.TrimSpace(part))
		}
		bounds[i] = v
	}

	if bounds[0] > bounds[1] {
		return models.TimeWindow{}, fmt.Errorf("%w: %q: start is after stop", apperrors.ErrInvalidTimeRange, raw)
	}
	return models.TimeWindow{Start: bounds[0], Stop: bounds[1]}, nil
}
