package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jengzang/location-totals/internal/apperrors"
	"github.com/jengzang/location-totals/internal/models"
)

// LoadPOIs reads an area document from disk. Files ending in .yaml or .yml are
// parsed as YAML, anything else as the line format.
func LoadPOIs(path string) ([]models.PointOfInterest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: area file %s: %w", apperrors.ErrInputNotFound, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParsePOIYAML(path, data)
	default:
		return ParsePOIText(path, data)
	}
}

// ParsePOIText parses the line format:
//
//	latitude, longitude, radius[, label]   # trailing comments allowed
//
// Blank lines and lines starting with '#' are ignored.
func ParsePOIText(path string, data []byte) ([]models.PointOfInterest, error) {
	var pois []models.PointOfInterest
	seen := make(map[string]int)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := raw
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		poi, err := parsePOILine(line, len(pois)+1)
		if err != nil {
			return nil, &apperrors.LineError{Path: path, Line: lineNo, Text: strings.TrimSpace(raw), Err: err}
		}
		poi.Line = lineNo

		if prev, ok := seen[poi.Label]; ok {
			return nil, &apperrors.LineError{
				Path: path,
				Line: lineNo,
				Text: strings.TrimSpace(raw),
				Err:  fmt.Errorf("%w: label %q already used on line %d", apperrors.ErrMalformedPOI, poi.Label, prev),
			}
		}
		seen[poi.Label] = lineNo
		pois = append(pois, poi)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: area file %s: %w", apperrors.ErrMalformedPOI, path, err)
	}

	if len(pois) == 0 {
		return nil, fmt.Errorf("%w: %s defines no points of interest", apperrors.ErrMalformedPOI, path)
	}
	return pois, nil
}

func parsePOILine(line string, position int) (models.PointOfInterest, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return models.PointOfInterest{}, fmt.Errorf("%w: expected 3 or 4 fields (latitude, longitude, radius[, label]), got %d",
			apperrors.ErrMalformedPOI, len(fields))
	}

	names := [3]string{"latitude", "longitude", "radius"}
	var values [3]float64
	for i := range names {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return models.PointOfInterest{}, fmt.Errorf("%w: %s %q is not a number", apperrors.ErrMalformedPOI, names[i], strings.TrimSpace(fields[i]))
		}
		values[i] = v
	}

	label := fmt.Sprintf("poi-%d", position)
	if len(fields) == 4 {
		label = strings.TrimSpace(fields[3])
		if label == "" {
			return models.PointOfInterest{}, fmt.Errorf("%w: label is empty", apperrors.ErrMalformedPOI)
		}
	}

	poi := models.PointOfInterest{
		Label:     label,
		Latitude:  values[0],
		Longitude: values[1],
		Radius:    values[2],
	}
	if err := validatePOI(poi); err != nil {
		return models.PointOfInterest{}, err
	}
	return poi, nil
}

func validatePOI(poi models.PointOfInterest) error {
	switch {
	case math.IsNaN(poi.Latitude) || math.IsNaN(poi.Longitude) || math.IsInf(poi.Radius, 0):
		return fmt.Errorf("%w: coordinates and radius must be finite numbers", apperrors.ErrMalformedPOI)
	case poi.Latitude < -90 || poi.Latitude > 90:
		return fmt.Errorf("%w: latitude %g out of range [-90, 90]", apperrors.ErrMalformedPOI, poi.Latitude)
	case poi.Longitude < -180 || poi.Longitude > 180:
		return fmt.Errorf("%w: longitude %g out of range [-180, 180]", apperrors.ErrMalformedPOI, poi.Longitude)
	case !(poi.Radius > 0):
		return fmt.Errorf("%w: radius %g must be greater than 0", apperrors.ErrMalformedPOI, poi.Radius)
	}
	return nil
}

type yamlAreaDocument struct {
	Areas []yaml.Node `yaml:"areas"`
}

type yamlArea struct {
	Label     string   `yaml:"label"`
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
	Radius    *float64 `yaml:"radius"`
}

// ParsePOIYAML parses an area document of the form
//
//	areas:
//	  - label: office
//	    latitude: 47.6
//	    longitude: -122.3
//	    radius: 0.002
func ParsePOIYAML(path string, data []byte) ([]models.PointOfInterest, error) {
	var doc yamlAreaDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrMalformedPOI, path, err)
	}

	pois := make([]models.PointOfInterest, 0, len(doc.Areas))
	seen := make(map[string]int)
	for i := range doc.Areas {
		node := &doc.Areas[i]
		lineErr := func(err error) error {
			return &apperrors.LineError{Path: path, Line: node.Line, Err: err}
		}

		var area yamlArea
		if err := node.Decode(&area); err != nil {
			return nil, lineErr(fmt.Errorf("%w: %w", apperrors.ErrMalformedPOI, err))
		}
		if area.Latitude == nil || area.Longitude == nil || area.Radius == nil {
			return nil, lineErr(fmt.Errorf("%w: latitude, longitude and radius are required", apperrors.ErrMalformedPOI))
		}

		poi := models.PointOfInterest{
			Label:     strings.TrimSpace(area.Label),
			Latitude:  *area.Latitude,
			Longitude: *area.Longitude,
			Radius:    *area.Radius,
			Line:      node.Line,
		}
		if poi.Label == "" {
			poi.Label = fmt.Sprintf("poi-%d", len(pois)+1)
		}
		if err := validatePOI(poi); err != nil {
			return nil, lineErr(err)
		}
		if prev, ok := seen[poi.Label]; ok {
			return nil, lineErr(fmt.Errorf("%w: label %q already used on line %d", apperrors.ErrMalformedPOI, poi.Label, prev))
		}
		seen[poi.Label] = node.Line
		pois = append(pois, poi)
	}

	if len(pois) == 0 {
		return nil, fmt.Errorf("%w: %s defines no points of interest", apperrors.ErrMalformedPOI, path)
	}
	return pois, nil
}
