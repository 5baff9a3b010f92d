package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jengzang/location-totals/internal/apperrors"
	"github.com/jengzang/location-totals/internal/config"
	"github.com/jengzang/location-totals/internal/service"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(apperrors.ExitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var flags config.Flags

	root := &cobra.Command{
		Use:   "totaler <history.json>",
		Short: "Total the time spent inside areas of interest",
		Long: `Reads a Google Takeout location history export and totals the time spent
inside circular areas of interest, optionally limited to time windows.

The area file holds one "latitude, longitude, radius[, label]" per line; lines
can be commented out with a leading '#'. Files ending in .yaml or .yml are read
as YAML documents with an "areas" list instead.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.HistoryPath = args[0]
			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}

			logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			svc := service.NewTotalerService(logger, cmd.OutOrStdout(), cfg.Debug)
			_, err = svc.Run(cmd.Context(), cfg)
			return err
		},
	}

	f := root.Flags()
	f.StringVar(&flags.AreaPath, "area", "", "path to the area file (lat, long, radius[, label] per line, or YAML)")
	f.StringArrayVar(&flags.Times, "time", nil, "start,stop Unix timestamps in seconds, inclusive; may be repeated")
	f.StringVarP(&flags.OutputPath, "output", "o", "", "write per-area totals as CSV to this path instead of printing them")
	f.StringVar(&flags.DailyOutputPath, "daily-output", "", "write per-day totals as CSV to this path")
	f.StringVar(&flags.SQLitePath, "sqlite", "", "export totals, visits and daily totals to this SQLite file")
	f.BoolVar(&flags.ShowVisits, "visits", false, "list individual visits in the console report")
	f.BoolVar(&flags.Debug, "debug", false, "enable debug logging")
	_ = root.MarkFlagRequired("area")

	return root
}
