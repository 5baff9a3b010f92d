package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jengzang/location-totals/internal/apperrors"
)

const history = `{"locations": [
	{"timestampMs": "0", "latitudeE7": 0, "longitudeE7": 0},
	{"timestampMs": "100000", "latitudeE7": 0, "longitudeE7": 0},
	{"timestampMs": "200000", "latitudeE7": 100000000, "longitudeE7": 100000000}
]}`

func fixtures(t *testing.T, area string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.json")
	areaPath := filepath.Join(dir, "areas.txt")
	if err := os.WriteFile(historyPath, []byte(history), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(areaPath, []byte(area), 0o644); err != nil {
		t.Fatal(err)
	}
	return historyPath, areaPath
}

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestRootCommandConsole(t *testing.T) {
	historyPath, areaPath := fixtures(t, "# office\n0, 0, 0.05, office\n")
	out, err := execute(historyPath, "--area="+areaPath)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "office: 0:01:40\nunclassified: 0:01:40\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRootCommandTimeWindow(t *testing.T) {
	historyPath, areaPath := fixtures(t, "0, 0, 0.05, office\n")
	out, err := execute(historyPath, "--area", areaPath, "--time=50,150")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "office: 0:00:50\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRootCommandCSV(t *testing.T) {
	historyPath, areaPath := fixtures(t, "0, 0, 0.05\n")
	outPath := filepath.Join(t.TempDir(), "out.csv")
	if _, err := execute(historyPath, "--area="+areaPath, "-o", outPath); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "label,total_seconds\npoi-1,100\n" {
		t.Fatalf("unexpected CSV: %q", data)
	}
}

func TestRootCommandErrors(t *testing.T) {
	historyPath, areaPath := fixtures(t, "0, 0, 0.05\n")
	_, badArea := fixtures(t, "1.0,2.0\n")

	tests := []struct {
		name     string
		args     []string
		want     error
		wantCode int
	}{
		{name: "malformed poi", args: []string{historyPath, "--area=" + badArea}, want: apperrors.ErrMalformedPOI, wantCode: 3},
		{name: "time arity", args: []string{historyPath, "--area=" + areaPath, "--time=50"}, want: apperrors.ErrInvalidTimeRange, wantCode: 5},
		{name: "time not integer", args: []string{historyPath, "--area=" + areaPath, "--time=a,b"}, want: apperrors.ErrInvalidTimeRange, wantCode: 5},
		{name: "time reversed", args: []string{historyPath, "--area=" + areaPath, "--time=150,50"}, want: apperrors.ErrInvalidTimeRange, wantCode: 5},
		{name: "missing history", args: []string{historyPath + ".missing", "--area=" + areaPath}, want: apperrors.ErrInputNotFound, wantCode: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if code := apperrors.ExitCode(err); code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d", code, tt.wantCode)
			}
			if out != "" {
				t.Fatalf("no report expected on failure, got %q", out)
			}
		})
	}
}

func TestRootCommandUsageErrors(t *testing.T) {
	historyPath, _ := fixtures(t, "0, 0, 0.05\n")
	if _, err := execute(historyPath); err == nil || apperrors.ExitCode(err) != 1 {
		t.Fatalf("missing --area should be a usage error, got %v", err)
	}
	if _, err := execute(); err == nil {
		t.Fatalf("missing history argument should fail")
	}
}
