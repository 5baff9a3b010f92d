package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Migration is one schema statement applied when a report is exported
type Migration struct {
	Name string
	SQL  string
}

// ReportSchema recreates the report tables. The export file holds the result
// of the latest run only.
var ReportSchema = []Migration{
	{Name: "drop_run_summary", SQL: `DROP TABLE IF EXISTS run_summary`},
	{Name: "drop_daily_totals", SQL: `DROP TABLE IF EXISTS daily_totals`},
	{Name: "drop_visits", SQL: `DROP TABLE IF EXISTS visits`},
	{Name: "drop_poi_totals", SQL: `DROP TABLE IF EXISTS poi_totals`},
	{Name: "create_poi_totals", SQL: `
		CREATE TABLE poi_totals (
			label TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			radius REAL NOT NULL,
			total_seconds INTEGER NOT NULL
		)`},
	{Name: "create_visits", SQL: `
		CREATE TABLE visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			label TEXT NOT NULL REFERENCES poi_totals(label),
			start_ts INTEGER NOT NULL,
			end_ts INTEGER NOT NULL,
			duration_s INTEGER NOT NULL,
			point_count INTEGER NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL
		)`},
	{Name: "create_daily_totals", SQL: `
		CREATE TABLE daily_totals (
			day TEXT NOT NULL,
			label TEXT NOT NULL REFERENCES poi_totals(label),
			total_seconds INTEGER NOT NULL,
			PRIMARY KEY (day, label)
		)`},
	{Name: "create_run_summary", SQL: `
		CREATE TABLE run_summary (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			samples_read INTEGER NOT NULL,
			samples_skipped INTEGER NOT NULL,
			points_in_window INTEGER NOT NULL,
			unclassified_seconds INTEGER NOT NULL,
			rewound_seconds INTEGER NOT NULL,
			out_of_order INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
}

// ApplySchema runs the report schema inside tx
func ApplySchema(ctx context.Context, tx *sql.Tx) error {
	for _, m := range ReportSchema {
		if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", m.Name, err)
		}
	}
	return nil
}
