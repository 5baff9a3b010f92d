package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jengzang/location-totals/internal/analysis"
	"github.com/jengzang/location-totals/internal/apperrors"
	"github.com/jengzang/location-totals/internal/config"
	"github.com/jengzang/location-totals/internal/database"
	"github.com/jengzang/location-totals/internal/loader"
	"github.com/jengzang/location-totals/internal/models"
	"github.com/jengzang/location-totals/internal/report"
	"github.com/jengzang/location-totals/internal/repository"
	"github.com/jengzang/location-totals/internal/spatial"
)

// maxLoggedIssues caps per-item warnings; the totals are always logged
const maxLoggedIssues = 20

// TotalerService runs the load, filter, aggregate and report pipeline
type TotalerService struct {
	logger *log.Logger
	stdout io.Writer
	debug  bool
}

// NewTotalerService creates a new totaler service. The console report goes to
// stdout, progress and warnings to logger.
func NewTotalerService(logger *log.Logger, stdout io.Writer, debug bool) *TotalerService {
	return &TotalerService{logger: logger, stdout: stdout, debug: debug}
}

// Run executes one pass over the inputs named by cfg and writes the requested outputs
func (s *TotalerService) Run(ctx context.Context, cfg *config.Config) (*models.Report, error) {
	s.logger.Printf("[POILoader] Opening points of interest from %s", cfg.AreaPath)
	pois, err := loader.LoadPOIs(cfg.AreaPath)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("[POILoader] Loaded %d points of interest", len(pois))
	for _, poi := range pois {
		s.debugf("[POILoader] %s: (%g, %g) radius %g° (about %.0f m)",
			poi.Label, poi.Latitude, poi.Longitude, poi.Radius, spatial.DegreesToMeters(poi.Radius))
	}

	for _, w := range cfg.Filter.Windows {
		s.logger.Printf("[Totaler] Location times from %s to %s",
			time.Unix(w.Start, 0).UTC().Format(time.RFC3339), time.Unix(w.Stop, 0).UTC().Format(time.RFC3339))
	}

	s.logger.Printf("[HistoryLoader] Opening location history from %s", cfg.HistoryPath)
	history, err := loader.LoadHistory(cfg.HistoryPath)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("[HistoryLoader] Decoded %s of %s samples",
		humanize.Comma(int64(len(history.Points))), humanize.Comma(int64(history.Total)))
	if len(history.Skipped) > 0 {
		s.logger.Printf("[HistoryLoader] WARNING: skipped %s malformed samples", humanize.Comma(int64(len(history.Skipped))))
		for i, skip := range history.Skipped {
			if i == maxLoggedIssues {
				s.logger.Printf("[HistoryLoader] ... %d more", len(history.Skipped)-maxLoggedIssues)
				break
			}
			s.logger.Printf("[HistoryLoader] sample %d: %s", skip.Index, skip.Reason)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filtered := analysis.FilterPoints(history.Points, cfg.Filter)
	s.logger.Printf("[Totaler] %s samples inside the time filter", humanize.Comma(int64(len(filtered))))

	s.logger.Printf("[Aggregator] Totaling time per point of interest")
	result := analysis.Aggregate(history.Points, pois, cfg.Filter)
	if result.Aggregate.OutOfOrder > 0 {
		s.logger.Printf("[Aggregator] WARNING: skipped %d out-of-order intervals (%d seconds)",
			result.Aggregate.OutOfOrder, result.Aggregate.Rewound)
		for i, rw := range result.Rewinds {
			if i == maxLoggedIssues {
				s.logger.Printf("[Aggregator] ... %d more", len(result.Rewinds)-maxLoggedIssues)
				break
			}
			s.logger.Printf("[Aggregator] sample %d: timestamp %d is followed by %d", rw.Index, rw.From, rw.To)
		}
	}
	if s.debug {
		s.logVisits(result.Visits, pois)
	}

	rep := &models.Report{
		POIs:           pois,
		Aggregate:      result.Aggregate,
		Visits:         result.Visits,
		DailyTotals:    analysis.DailyTotals(result.Visits, pois),
		SamplesRead:    history.Total,
		SamplesSkipped: len(history.Skipped),
		FilteredOut:    len(history.Points) - len(filtered),
	}

	if err := s.emit(ctx, cfg, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *TotalerService) emit(ctx context.Context, cfg *config.Config, rep *models.Report) error {
	if cfg.OutputPath != "" {
		s.logger.Printf("[Totaler] Writing CSV to %s", cfg.OutputPath)
		err := report.WriteFile(cfg.OutputPath, func(w io.Writer) error {
			return report.WriteTotalsCSV(w, rep.Aggregate)
		})
		if err != nil {
			return err
		}
	} else {
		if err := report.WriteConsole(s.stdout, rep, report.ConsoleOptions{ShowVisits: cfg.ShowVisits}); err != nil {
			return fmt.Errorf("%w: console: %w", apperrors.ErrOutputWrite, err)
		}
	}

	if cfg.DailyOutputPath != "" {
		s.logger.Printf("[Totaler] Writing daily CSV to %s", cfg.DailyOutputPath)
		err := report.WriteFile(cfg.DailyOutputPath, func(w io.Writer) error {
			return report.WriteDailyCSV(w, rep.DailyTotals)
		})
		if err != nil {
			return err
		}
	}

	if cfg.SQLitePath != "" {
		s.logger.Printf("[Totaler] Writing SQLite export to %s", cfg.SQLitePath)
		db, err := database.Open(ctx, database.Config{Path: cfg.SQLitePath, Logger: s.logger})
		if err != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrOutputWrite, err)
		}
		defer db.Close()

		if err := repository.NewReportRepository(db).SaveReport(ctx, rep); err != nil {
			return fmt.Errorf("%w: %s: %w", apperrors.ErrOutputWrite, cfg.SQLitePath, err)
		}
	}
	return nil
}

func (s *TotalerService) logVisits(visits []models.Visit, pois []models.PointOfInterest) {
	byLabel := make(map[string]models.PointOfInterest, len(pois))
	for _, poi := range pois {
		byLabel[poi.Label] = poi
	}

	for _, v := range visits {
		poi := byLabel[v.Label]
		s.logger.Printf("[Aggregator] At %s for %.2f hours, %s to %s, %.0f m from center (%s)",
			v.Label,
			report.Hours(v.Duration),
			time.Unix(v.StartTime, 0).UTC().Format(time.RFC3339),
			time.Unix(v.EndTime, 0).UTC().Format(time.RFC3339),
			spatial.HaversineDistance(v.Latitude, v.Longitude, poi.Latitude, poi.Longitude),
			spatial.MapsLink(v.Latitude, v.Longitude),
		)
	}
}

func (s *TotalerService) debugf(format string, args ...any) {
	if s.debug {
		s.logger.Printf(format, args...)
	}
}
