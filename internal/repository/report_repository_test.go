package repository_test

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jengzang/location-totals/internal/database"
	"github.com/jengzang/location-totals/internal/models"
	"github.com/jengzang/location-totals/internal/repository"
)

func testReport(totals ...int64) *models.Report {
	r := &models.Report{
		POIs: []models.PointOfInterest{
			{Label: "office", Latitude: 47.62, Longitude: -122.35, Radius: 0.002},
			{Label: "gym", Latitude: 47.61, Longitude: -122.33, Radius: 0.001},
		},
		Visits: []models.Visit{
			{Label: "office", StartTime: 100, EndTime: 200, Duration: 100, PointCount: 3, Latitude: 47.62, Longitude: -122.35},
		},
		DailyTotals: []models.DailyTotal{{Date: "1970-01-01", Label: "office", Seconds: 100}},
		SamplesRead: 10,
	}
	r.Aggregate.Totals = []models.POITotal{{Label: "office", Seconds: totals[0]}, {Label: "gym", Seconds: totals[1]}}
	return r
}

func TestSaveReport(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, database.Config{Path: filepath.Join(t.TempDir(), "report.db")})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	repo := repository.NewReportRepository(db)
	if err := repo.SaveReport(ctx, testReport(100, 0)); err != nil {
		t.Fatalf("save: %v", err)
	}

	totals, err := repo.GetTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	want := []models.POITotal{{Label: "office", Seconds: 100}, {Label: "gym", Seconds: 0}}
	if !reflect.DeepEqual(totals, want) {
		t.Fatalf("totals = %+v, want %+v", totals, want)
	}

	visits, err := repo.GetVisits(ctx)
	if err != nil {
		t.Fatalf("visits: %v", err)
	}
	if len(visits) != 1 || visits[0].Duration != 100 || visits[0].PointCount != 3 {
		t.Fatalf("unexpected visits: %+v", visits)
	}
}

func TestSaveReportReplacesPreviousRun(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "report.db")
	db, err := database.Open(ctx, database.Config{Path: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	repo := repository.NewReportRepository(db)
	if err := repo.SaveReport(ctx, testReport(100, 0)); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.SaveReport(ctx, testReport(5, 7)); err != nil {
		t.Fatalf("second save: %v", err)
	}

	totals, err := repo.GetTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	want := []models.POITotal{{Label: "office", Seconds: 5}, {Label: "gym", Seconds: 7}}
	if !reflect.DeepEqual(totals, want) {
		t.Fatalf("totals = %+v, want %+v", totals, want)
	}
	visits, err := repo.GetVisits(ctx)
	if err != nil {
		t.Fatalf("visits: %v", err)
	}
	if len(visits) != 1 {
		t.Fatalf("visits should be replaced, got %d", len(visits))
	}
}
