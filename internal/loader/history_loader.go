package loader

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/jengzang/location-totals/internal/apperrors"
	"github.com/jengzang/location-totals/internal/models"
)

// E7Scale converts Takeout's integer coordinates to decimal degrees
const E7Scale = 10_000_000

type takeoutDocument struct {
	Locations *[]json.RawMessage `json:"locations"`
}

type takeoutSample struct {
	TimestampMs json.RawMessage `json:"timestampMs"` // String or number, milliseconds
	Timestamp   *string         `json:"timestamp"`   // RFC 3339, newer exports
	LatitudeE7  *int64          `json:"latitudeE7"`
	LongitudeE7 *int64          `json:"longitudeE7"`
}

// LoadHistory reads a Takeout location history export from disk
func LoadHistory(path string) (*models.HistoryLoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: history file %s: %w", apperrors.ErrInputNotFound, path, err)
	}

	result, err := ParseHistory(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// ParseHistory decodes a Takeout export. The document must carry a "locations"
// array; samples that cannot be decoded are skipped and reported in the result,
// the rest keep their original order.
func ParseHistory(data []byte) (*models.HistoryLoadResult, error) {
	var doc takeoutDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrMalformedHistory, err)
	}
	if doc.Locations == nil {
		return nil, fmt.Errorf("%w: missing \"locations\" array", apperrors.ErrMalformedHistory)
	}

	samples := *doc.Locations
	result := &models.HistoryLoadResult{
		Points: make([]models.LocationPoint, 0, len(samples)),
		Total:  len(samples),
	}

	for i, raw := range samples {
		point, err := decodeSample(raw)
		if err != nil {
			result.Skipped = append(result.Skipped, models.SkippedSample{Index: i, Reason: err.Error()})
			continue
		}
		result.Points = append(result.Points, point)
	}

	return result, nil
}

func decodeSample(raw json.RawMessage) (models.LocationPoint, error) {
	var s takeoutSample
	if err := json.Unmarshal(raw, &s); err != nil {
		return models.LocationPoint{}, err
	}
	if s.LatitudeE7 == nil {
		return models.LocationPoint{}, fmt.Errorf("missing latitudeE7")
	}
	if s.LongitudeE7 == nil {
		return models.LocationPoint{}, fmt.Errorf("missing longitudeE7")
	}

	ts, err := sampleTimestamp(s)
	if err != nil {
		return models.LocationPoint{}, err
	}

	point := models.LocationPoint{
		Timestamp: ts,
		Latitude:  float64(*s.LatitudeE7) / E7Scale,
		Longitude: float64(*s.LongitudeE7) / E7Scale,
	}
	if math.Abs(point.Latitude) > 90 || math.Abs(point.Longitude) > 180 {
		return models.LocationPoint{}, fmt.Errorf("coordinates (%g, %g) out of range", point.Latitude, point.Longitude)
	}
	return point, nil
}

func sampleTimestamp(s takeoutSample) (int64, error) {
	if len(s.TimestampMs) > 0 && string(s.TimestampMs) != "null" {
		text := string(s.TimestampMs)
		if strings.HasPrefix(text, `"`) {
			var str string
			if err := json.Unmarshal(s.TimestampMs, &str); err != nil {
				return 0, fmt.Errorf("invalid timestampMs: %w", err)
			}
			text = str
		}
		ms, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestampMs %s", string(s.TimestampMs))
		}
		return floorDiv(ms, 1000), nil
	}

	if s.Timestamp != nil {
		t, err := time.Parse(time.RFC3339Nano, *s.Timestamp)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", *s.Timestamp)
		}
		return t.Unix(), nil
	}

	return 0, fmt.Errorf("missing timestampMs or timestamp")
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
