package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/jengzang/location-totals/internal/models"
	"github.com/jengzang/location-totals/internal/stats"
)

// ConsoleOptions controls the optional sections of the console report
type ConsoleOptions struct {
	ShowVisits bool
}

// WriteConsole prints one line per POI in definition order followed by the
// unclassified time and the classified time summed over all POIs. With
// ShowVisits the individual visits and a per-POI visit summary come first.
func WriteConsole(w io.Writer, r *models.Report, opts ConsoleOptions) error {
	bw := bufio.NewWriter(w)

	if opts.ShowVisits {
		for _, v := range r.Visits {
			fmt.Fprintf(bw, "%s: %s to %s, %.2f hours\n",
				v.Label,
				time.Unix(v.StartTime, 0).UTC().Format(time.RFC3339),
				time.Unix(v.EndTime, 0).UTC().Format(time.RFC3339),
				Hours(v.Duration),
			)
		}
		for _, s := range stats.SummarizeVisits(r.Visits, r.POIs) {
			if s.Visits == 0 {
				continue
			}
			fmt.Fprintf(bw, "%s: %d visits, median %s, longest %s\n",
				s.Label, s.Visits, FormatDuration(int64(s.Median)), FormatDuration(s.Longest))
		}
		fmt.Fprintln(bw)
	}

	for _, total := range r.Aggregate.Totals {
		fmt.Fprintf(bw, "%s: %s\n", total.Label, FormatDuration(total.Seconds))
	}
	fmt.Fprintf(bw, "unclassified: %s\n", FormatDuration(r.Aggregate.Unclassified))
	fmt.Fprintf(bw, "classified: %s\n", FormatDuration(r.Aggregate.Classified()))

	return bw.Flush()
}
