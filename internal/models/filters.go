package models

import "sort"

// TimeWindow is an inclusive range of Unix timestamps in seconds
type TimeWindow struct {
	Start int64 `json:"start"`
	Stop  int64 `json:"stop"`
}

// Contains reports whether ts lies inside the window, bounds included
func (w TimeWindow) Contains(ts int64) bool {
	return w.Start <= ts && ts <= w.Stop
}

// TimeFilter is a set of windows. An empty filter accepts every timestamp.
type TimeFilter struct {
	Windows []TimeWindow `json:"windows,omitempty"`
}

// NewTimeFilter builds a filter whose windows are sorted and merged where they
// overlap.
func NewTimeFilter(windows ...TimeWindow) TimeFilter {
	if len(windows) == 0 {
		return TimeFilter{}
	}

	sorted := make([]TimeWindow, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := []TimeWindow{sorted[0]}
	for _, w := range sorted[1:] {
		last := &merged[len(merged)-1]
		if w.Start <= last.Stop {
			if w.Stop > last.Stop {
				last.Stop = w.Stop
			}
			continue
		}
		merged = append(merged, w)
	}

	return TimeFilter{Windows: merged}
}

// IsEmpty reports whether the filter accepts everything
func (f TimeFilter) IsEmpty() bool {
	return len(f.Windows) == 0
}

// Contains reports whether ts passes the filter
func (f TimeFilter) Contains(ts int64) bool {
	if f.IsEmpty() {
		return true
	}
	for _, w := range f.Windows {
		if w.Contains(ts) {
			return true
		}
	}
	return false
}

// Clip intersects the interval [from, to] with the filter. It returns the
// earliest and latest instants of the overlap and the overlapping seconds.
// ok is false when the interval lies outside every window.
func (f TimeFilter) Clip(from, to int64) (start, end, seconds int64, ok bool) {
	if to < from {
		return 0, 0, 0, false
	}
	if f.IsEmpty() {
		return from, to, to - from, true
	}

	first := true
	for _, w := range f.Windows {
		lo := max(from, w.Start)
		hi := min(to, w.Stop)
		if hi < lo || (hi == lo && from != to) {
			continue
		}
		if first {
			start = lo
			first = false
		}
		end = hi
		seconds += hi - lo
	}
	return start, end, seconds, !first
}
