package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/location-totals/internal/database"
	"github.com/jengzang/location-totals/internal/models"
)

// ReportRepository writes finished reports to a SQLite export
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// SaveReport replaces the contents of the export with r in one transaction
func (r *ReportRepository) SaveReport(ctx context.Context, report *models.Report) error {
	return database.Transaction(ctx, r.db, func(tx *sql.Tx) error {
		if err := database.ApplySchema(ctx, tx); err != nil {
			return err
		}

		totals := make(map[string]int64, len(report.Aggregate.Totals))
		for _, t := range report.Aggregate.Totals {
			totals[t.Label] = t.Seconds
		}
		for i, poi := range report.POIs {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO poi_totals (label, position, latitude, longitude, radius, total_seconds)
				VALUES (?, ?, ?, ?, ?, ?)`,
				poi.Label, i, poi.Latitude, poi.Longitude, poi.Radius, totals[poi.Label])
			if err != nil {
				return fmt.Errorf("failed to insert total for %s: %w", poi.Label, err)
			}
		}

		for _, v := range report.Visits {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO visits (label, start_ts, end_ts, duration_s, point_count, latitude, longitude)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				v.Label, v.StartTime, v.EndTime, v.Duration, v.PointCount, v.Latitude, v.Longitude)
			if err != nil {
				return fmt.Errorf("failed to insert visit: %w", err)
			}
		}

		for _, d := range report.DailyTotals {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO daily_totals (day, label, total_seconds) VALUES (?, ?, ?)`,
				d.Date, d.Label, d.Seconds)
			if err != nil {
				return fmt.Errorf("failed to insert daily total: %w", err)
			}
		}

		agg := report.Aggregate
		_, err := tx.ExecContext(ctx, `
			INSERT INTO run_summary (id, samples_read, samples_skipped, points_in_window,
				unclassified_seconds, rewound_seconds, out_of_order)
			VALUES (1, ?, ?, ?, ?, ?, ?)`,
			report.SamplesRead, report.SamplesSkipped, agg.Points, agg.Unclassified, agg.Rewound, agg.OutOfOrder)
		if err != nil {
			return fmt.Errorf("failed to insert run summary: %w", err)
		}
		return nil
	})
}

// GetTotals returns the exported totals in POI definition order
func (r *ReportRepository) GetTotals(ctx context.Context) ([]models.POITotal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT label, total_seconds FROM poi_totals ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query totals: %w", err)
	}
	defer rows.Close()

	var totals []models.POITotal
	for rows.Next() {
		var t models.POITotal
		if err := rows.Scan(&t.Label, &t.Seconds); err != nil {
			return nil, fmt.Errorf("failed to scan total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// GetVisits returns the exported visits in chronological insertion order
func (r *ReportRepository) GetVisits(ctx context.Context) ([]models.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT label, start_ts, end_ts, duration_s, point_count, latitude, longitude
		FROM visits ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	var visits []models.Visit
	for rows.Next() {
		var v models.Visit
		if err := rows.Scan(&v.Label, &v.StartTime, &v.EndTime, &v.Duration, &v.PointCount, &v.Latitude, &v.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
