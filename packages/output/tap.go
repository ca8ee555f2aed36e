package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/flicker/packages/core/runner"
	"gopkg.in/yaml.v3"
)

// TAPFormatter formats check results in TAP (Test Anything Protocol) format
type TAPFormatter struct {
	writer    io.Writer
	testCount int
	results   []tapResult
}

type tapResult struct {
	number     int
	name       string
	passed     bool
	skipped    bool
	skipReason string
	diag       *tapDiagnostic
}

// tapDiagnostic is the YAML block emitted under a failing check.
type tapDiagnostic struct {
	Message  string `yaml:"message"`
	Severity string `yaml:"severity"`
	Kind     string `yaml:"kind"`
	Scope    string `yaml:"scope"`
	Scenario string `yaml:"scenario"`
	BugID    int    `yaml:"bugId,omitempty"`
}

type TAPOption func(*TAPFormatter)

func NewTAPFormatter(opts ...TAPOption) *TAPFormatter {
	f := &TAPFormatter{
		writer:  os.Stdout,
		results: make([]tapResult, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func TAPWithWriter(w io.Writer) TAPOption {
	return func(f *TAPFormatter) {
		f.writer = w
	}
}

func (f *TAPFormatter) FormatResult(result *runner.RunResult) {
	for _, r := range result.Results {
		f.testCount++
		tr := tapResult{
			number:     f.testCount,
			name:       checkID(r),
			passed:     r.Passed,
			skipped:    r.Skipped,
			skipReason: skipNote(r),
		}
		if tr.skipReason == "" {
			tr.skipReason = r.SkipReason
		}

		if !r.Passed && !r.Skipped {
			tr.diag = &tapDiagnostic{
				Message:  r.Message,
				Severity: "fail",
				Kind:     r.Kind,
				Scope:    string(r.Scope),
				Scenario: result.Scenario,
				BugID:    r.BugID,
			}
		}

		f.results = append(f.results, tr)
	}
}

func (f *TAPFormatter) FormatError(err error) {
	// Errors are included in individual check results
}

func (f *TAPFormatter) FormatHeader(version string) {
	// Header is written in Flush
}

// Flush writes the accumulated TAP output
func (f *TAPFormatter) Flush(totalDuration time.Duration) error {
	fmt.Fprintf(f.writer, "TAP version 13\n")
	fmt.Fprintf(f.writer, "1..%d\n", f.testCount)

	for _, r := range f.results {
		if r.skipped {
			fmt.Fprintf(f.writer, "ok %d - %s # SKIP %s\n", r.number, r.name, r.skipReason)
			continue
		}

		if r.passed {
			fmt.Fprintf(f.writer, "ok %d - %s\n", r.number, r.name)
			continue
		}

		fmt.Fprintf(f.writer, "not ok %d - %s\n", r.number, r.name)
		if r.diag != nil {
			if err := writeDiagnostic(f.writer, r.diag); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(f.writer, "# time %dms\n", totalDuration.Milliseconds())
	return nil
}

func writeDiagnostic(w io.Writer, d *tapDiagnostic) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("encoding diagnostic: %w", err)
	}
	fmt.Fprintf(w, "  ---\n")
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintf(w, "  ...\n")
	return nil
}
