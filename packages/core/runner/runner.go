package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/flicker/packages/assertions"
	"github.com/abdul-hamid-achik/flicker/packages/core/scenario"
	"github.com/abdul-hamid-achik/flicker/packages/flicker"
	"github.com/abdul-hamid-achik/flicker/packages/geometry"
	"github.com/abdul-hamid-achik/flicker/packages/trace"
)

// ErrNoTrace is returned when neither the caller nor the scenario names a trace.
var ErrNoTrace = errors.New("no trace given")

type Runner struct {
	config *Config
	logger *slog.Logger
}

type Config struct {
	Display     geometry.Display
	RunDisabled bool
	Bail        bool
	NameFilter  string
	Logger      *slog.Logger
}

func NewRunner(cfg *Config) *Runner {
	if cfg == nil {
		cfg = &Config{Display: geometry.DefaultDisplay()}
	}
	if cfg.Display == (geometry.Display{}) {
		cfg.Display = geometry.DefaultDisplay()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		config: cfg,
		logger: logger,
	}
}

type RunResult struct {
	File     string
	Scenario string
	Trace    string
	Results  []*assertions.Result
	Duration time.Duration
	Passed   int
	Failed   int
	Skipped  int
}

// PossiblyFixed returns the bug-gated checks that passed while disabled.
func (r *RunResult) PossiblyFixed() []*assertions.Result {
	var fixed []*assertions.Result
	for _, res := range r.Results {
		if res.PossiblyFixed() {
			fixed = append(fixed, res)
		}
	}
	return fixed
}

// RunFile parses a scenario and runs it. tracePath overrides the trace named
// by the scenario.
func (r *Runner) RunFile(ctx context.Context, path, tracePath string) (*RunResult, error) {
	sc, err := scenario.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return r.RunScenario(ctx, sc, tracePath)
}

// RunScenario runs a parsed scenario.
func (r *Runner) RunScenario(ctx context.Context, sc *scenario.Scenario, tracePath string) (result *RunResult, err error) {
	start := time.Now()
	baseDir := filepath.Dir(sc.Path)

	if tracePath == "" {
		tracePath = sc.TracePath()
	}
	if tracePath == "" {
		return nil, fmt.Errorf("%s: %w", sc.Name, ErrNoTrace)
	}

	defer func() {
		if tdErr := r.executeTeardown(ctx, sc.Teardown, baseDir); tdErr != nil && err == nil {
			result, err = nil, tdErr
		}
	}()

	if err := r.executeSetup(ctx, sc.Setup, baseDir); err != nil {
		return nil, err
	}

	t, err := trace.Load(tracePath)
	if err != nil {
		return nil, fmt.Errorf("loading trace: %w", err)
	}
	r.logger.Debug("trace loaded", "trace", t.Name,
		"windows", len(t.Windows), "layers", len(t.Layers), "events", len(t.Events))

	suite := assertions.NewSuite()
	if err := sc.Apply(suite, r.config.Display); err != nil {
		return nil, err
	}

	results := suite.Evaluate(t, r.evaluateOptions()...)

	result = &RunResult{
		File:     sc.Path,
		Scenario: sc.Name,
		Trace:    tracePath,
		Results:  results,
	}
	for _, res := range results {
		switch {
		case res.Skipped:
			result.Skipped++
			if res.PossiblyFixed() {
				r.logger.Info("disabled check passed", "check", res.Name, "bug", res.BugID)
			}
		case res.Passed:
			result.Passed++
		default:
			result.Failed++
			r.logger.Debug("check failed", "check", res.Name, "kind", res.Kind, "message", res.Message)
		}
	}
	result.Duration = time.Since(start)

	r.logger.Debug("scenario finished", "scenario", sc.Name,
		"passed", result.Passed, "failed", result.Failed, "skipped", result.Skipped,
		"duration", result.Duration)
	return result, nil
}

func (r *Runner) evaluateOptions() []assertions.EvaluateOption {
	opts := []assertions.EvaluateOption{
		assertions.WithRunDisabled(r.config.RunDisabled),
		assertions.WithBail(r.config.Bail),
	}
	if r.config.NameFilter != "" {
		pattern := r.config.NameFilter
		opts = append(opts, assertions.WithFilter(func(name string) bool {
			if matchesPattern(name, pattern) {
				return true
			}
			legacy := flicker.LegacyName(name)
			return legacy != "" && matchesPattern(legacy, pattern)
		}))
	}
	return opts
}

// matchesPattern matches a check name against a pattern with an optional
// leading and/or trailing '*'.
func matchesPattern(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	if pattern == "*" {
		return true
	}

	if pattern[0] == '*' && pattern[len(pattern)-1] == '*' {
		return strings.Contains(name, pattern[1:len(pattern)-1])
	}

	if pattern[0] == '*' {
		return strings.HasSuffix(name, pattern[1:])
	}

	if pattern[len(pattern)-1] == '*' {
		return strings.HasPrefix(name, pattern[:len(pattern)-1])
	}

	return name == pattern
}
