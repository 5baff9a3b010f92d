package apperrors_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jengzang/location-totals/internal/apperrors"
)

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "input", err: fmt.Errorf("%w: history.json", apperrors.ErrInputNotFound), want: 2},
		{name: "poi", err: &apperrors.LineError{Path: "a.txt", Line: 1, Err: apperrors.ErrMalformedPOI}, want: 3},
		{name: "history", err: apperrors.ErrMalformedHistory, want: 4},
		{name: "time", err: fmt.Errorf("wrap: %w", apperrors.ErrInvalidTimeRange), want: 5},
		{name: "output", err: apperrors.ErrOutputWrite, want: 6},
		{name: "other", err: errors.New("boom"), want: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := apperrors.ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestLineErrorMessage(t *testing.T) {
	t.Parallel()
	err := &apperrors.LineError{
		Path: "areas.txt",
		Line: 3,
		Text: "1.0,2.0",
		Err:  fmt.Errorf("%w: expected 3 or 4 fields, got 2", apperrors.ErrMalformedPOI),
	}
	msg := err.Error()
	for _, want := range []string{"areas.txt", "line 3", `"1.0,2.0"`, "malformed POI"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q should contain %q", msg, want)
		}
	}
	if !errors.Is(err, apperrors.ErrMalformedPOI) {
		t.Fatalf("line error should unwrap to ErrMalformedPOI")
	}
}
