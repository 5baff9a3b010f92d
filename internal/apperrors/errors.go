package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInputNotFound    = errors.New("input not found")
	ErrMalformedPOI     = errors.New("malformed POI")
	ErrMalformedHistory = errors.New("malformed history")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrOutputWrite      = errors.New("output write failure")
)

// LineError pins a parse failure to a line of an input document.
type LineError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s line %d (%q): %v", e.Path, e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a run to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInputNotFound):
		return 2
	case errors.Is(err, ErrMalformedPOI):
		return 3
	case errors.Is(err, ErrMalformedHistory):
		return 4
	case errors.Is(err, ErrInvalidTimeRange):
		return 5
	case errors.Is(err, ErrOutputWrite):
		return 6
	default:
		return 1
	}
}
