package output

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/flicker/packages/core/runner"
	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatResult(result *runner.RunResult) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(f.writer, "\n%s\n", bold("Running: "+result.Scenario))
	if f.verbose {
		fmt.Fprintf(f.writer, "  trace: %s\n", result.Trace)
	}
	fmt.Fprintf(f.writer, "\n")

	for _, r := range result.Results {
		if r.Skipped {
			if r.SkipReason == "filtered out" && !f.verbose {
				continue
			}
			fmt.Fprintf(f.writer, "  %s %s", yellow("-"), r.Name)
			if note := skipNote(r); note != "" {
				fmt.Fprintf(f.writer, " (%s)", note)
			}
			fmt.Fprintf(f.writer, "\n")
			if f.verbose && r.Message != "" {
				fmt.Fprintf(f.writer, "      %s\n", r.Message)
			}
			continue
		}

		symbol := green("✓")
		if !r.Passed {
			symbol = red("✗")
		}

		fmt.Fprintf(f.writer, "  %s %s %s", symbol, r.Name, cyan(fmt.Sprintf("[%s %s]", r.Kind, r.Scope)))
		if r.BugID != 0 {
			fmt.Fprintf(f.writer, " %s", yellow(fmt.Sprintf("(bug %d)", r.BugID)))
		}
		fmt.Fprintf(f.writer, "\n")

		if !r.Passed && r.Message != "" {
			fmt.Fprintf(f.writer, "    %s %s\n", red("→"), r.Message)
		}
	}

	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Checks: ")
	if result.Passed > 0 {
		fmt.Fprintf(f.writer, "%s, ", green(fmt.Sprintf("%d passed", result.Passed)))
	}
	if result.Failed > 0 {
		fmt.Fprintf(f.writer, "%s, ", red(fmt.Sprintf("%d failed", result.Failed)))
	}
	if result.Skipped > 0 {
		fmt.Fprintf(f.writer, "%s, ", yellow(fmt.Sprintf("%d skipped", result.Skipped)))
	}
	total := result.Passed + result.Failed + result.Skipped
	fmt.Fprintf(f.writer, "%d total\n", total)

	for _, r := range result.PossiblyFixed() {
		fmt.Fprintf(f.writer, "%s %s passes while disabled for bug %d\n", yellow("Note:"), r.Name, r.BugID)
	}

	fmt.Fprintf(f.writer, "Time:   %dms\n", result.Duration.Milliseconds())
	fmt.Fprintf(f.writer, "\n")
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func (f *ConsoleFormatter) FormatHeader(version string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", bold("flicker"), version)
}
