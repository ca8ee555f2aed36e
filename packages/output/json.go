package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/flicker/packages/core/runner"
	"github.com/abdul-hamid-achik/flicker/packages/flicker"
	"github.com/google/uuid"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	RunID    string      `json:"runId"`
	Summary  JSONSummary `json:"summary"`
	Checks   []JSONCheck `json:"checks"`
	Duration float64     `json:"duration"`
	Time     string      `json:"time"`
}

// JSONSummary represents the check summary
type JSONSummary struct {
	Total         int `json:"total"`
	Passed        int `json:"passed"`
	Failed        int `json:"failed"`
	Skipped       int `json:"skipped"`
	PossiblyFixed int `json:"possiblyFixed"`
}

// JSONCheck represents a single check result
type JSONCheck struct {
	Name          string  `json:"name"`
	LegacyName    string  `json:"legacyName,omitempty"`
	Kind          string  `json:"kind"`
	Scope         string  `json:"scope"`
	Scenario      string  `json:"scenario"`
	File          string  `json:"file"`
	Trace         string  `json:"trace"`
	BugID         int     `json:"bugId,omitempty"`
	Enabled       bool    `json:"enabled"`
	Passed        bool    `json:"passed"`
	Skipped       bool    `json:"skipped,omitempty"`
	SkipReason    string  `json:"skipReason,omitempty"`
	WouldPass     *bool   `json:"wouldPass,omitempty"`
	PossiblyFixed bool    `json:"possiblyFixed,omitempty"`
	Duration      float64 `json:"duration"`
	Error         string  `json:"error,omitempty"`
}

// JSONFormatter formats check results as JSON
type JSONFormatter struct {
	writer  io.Writer
	runID   string
	results []JSONCheck
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer:  os.Stdout,
		runID:   uuid.NewString(),
		results: make([]JSONCheck, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

// JSONWithRunID replaces the generated run id.
func JSONWithRunID(id string) JSONOption {
	return func(f *JSONFormatter) {
		f.runID = id
	}
}

func (f *JSONFormatter) FormatResult(result *runner.RunResult) {
	for _, r := range result.Results {
		check := JSONCheck{
			Name:          r.Name,
			LegacyName:    flicker.LegacyName(r.Name),
			Kind:          r.Kind,
			Scope:         string(r.Scope),
			Scenario:      result.Scenario,
			File:          result.File,
			Trace:         result.Trace,
			BugID:         r.BugID,
			Enabled:       r.Enabled,
			Passed:        r.Passed,
			Skipped:       r.Skipped,
			WouldPass:     r.WouldPass,
			PossiblyFixed: r.PossiblyFixed(),
			Duration:      float64(r.Duration.Microseconds()) / 1000,
		}

		if r.SkipReason != "" && r.SkipReason != "filtered out" {
			check.SkipReason = r.SkipReason
		}

		if !r.Passed && r.Message != "" {
			check.Error = r.Message
		}

		f.results = append(f.results, check)
	}
}

func (f *JSONFormatter) FormatError(err error) {
	// Errors are included in individual check results
}

func (f *JSONFormatter) FormatHeader(version string) {
	// No header needed for JSON output
}

// Flush writes the accumulated JSON output
func (f *JSONFormatter) Flush(totalDuration time.Duration) error {
	var passed, failed, skipped, fixed int
	for _, c := range f.results {
		switch {
		case c.Skipped:
			skipped++
			if c.PossiblyFixed {
				fixed++
			}
		case c.Passed:
			passed++
		default:
			failed++
		}
	}

	output := JSONOutput{
		RunID: f.runID,
		Summary: JSONSummary{
			Total:         len(f.results),
			Passed:        passed,
			Failed:        failed,
			Skipped:       skipped,
			PossiblyFixed: fixed,
		},
		Checks:   f.results,
		Duration: float64(totalDuration.Milliseconds()),
		Time:     time.Now().Format(time.RFC3339),
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
