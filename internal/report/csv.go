package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jengzang/location-totals/internal/apperrors"
	"github.com/jengzang/location-totals/internal/models"
)

// TotalsHeader is the header row of the totals CSV
var TotalsHeader = []string{"label", "total_seconds"}

// DailyHeader is the header row of the daily CSV
var DailyHeader = []string{"date", "label", "total_seconds", "hours"}

// WriteTotalsCSV writes one row per POI in definition order, zero totals included
func WriteTotalsCSV(w io.Writer, agg models.Aggregate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TotalsHeader); err != nil {
		return err
	}
	for _, total := range agg.Totals {
		if err := cw.Write([]string{total.Label, strconv.FormatInt(total.Seconds, 10)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDailyCSV writes the per-day visit totals
func WriteDailyCSV(w io.Writer, rows []models.DailyTotal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(DailyHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Date,
			row.Label,
			strconv.FormatInt(row.Seconds, 10),
			strconv.FormatFloat(Hours(row.Seconds), 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile creates path and hands it to write. Any failure, including on
// close, is reported as an output write failure and the partial file is removed.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrOutputWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", apperrors.ErrOutputWrite, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("%w: %s: %w", apperrors.ErrOutputWrite, path, err)
	}
	return nil
}
