package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/abdul-hamid-achik/flicker/packages/core/config"
	"github.com/abdul-hamid-achik/flicker/packages/core/runner"
	"github.com/abdul-hamid-achik/flicker/packages/core/scenario"
	"github.com/abdul-hamid-achik/flicker/packages/output"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario|directory>...",
	Short: "Run flicker checks from scenario files",
	Long: `Run the checks named in .flicker.yaml scenario files against captured traces.

Examples:
  flicker run rotate.flicker.yaml
  flicker run rotate.flicker.yaml --trace captures/rotate.json
  flicker run ./scenarios/ --name "navBar*"
  flicker run ./scenarios/ --run-disabled --output json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond

	// WatchRerunInterval is the minimum time between watch re-runs
	WatchRerunInterval = time.Second
)

var (
	traceFlag       string
	nameFlag        string
	verboseFlag     int
	bailFlag        bool
	runDisabledFlag bool
	noColorFlag     bool
	outputFlag      string
	outputFileFlag  string
	watchFlag       bool
	configFlag      string
)

func init() {
	runCmd.Flags().StringVarP(&traceFlag, "trace", "t", getEnvString("FLICKER_TRACE", ""), "Trace file to check, overriding the scenario's trace (env: FLICKER_TRACE)")
	runCmd.Flags().StringVar(&configFlag, "config", getEnvString("FLICKER_CONFIG", ""), "Path to config file (env: FLICKER_CONFIG)")
	runCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Run only checks matching name pattern")

	runCmd.Flags().CountVarP(&verboseFlag, "verbose", "v", "Verbose output (-v for check details, -vv for debug logs)")
	runCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("FLICKER_NO_COLOR", false), "Disable colored output (env: FLICKER_NO_COLOR)")
	runCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("FLICKER_OUTPUT", "console"), "Output format: console, json, junit, tap (env: FLICKER_OUTPUT)")
	runCmd.Flags().StringVar(&outputFileFlag, "output-file", getEnvString("FLICKER_OUTPUT_FILE", ""), "Write output to file (default: stdout) (env: FLICKER_OUTPUT_FILE)")

	runCmd.Flags().BoolVar(&bailFlag, "bail", getEnvBool("FLICKER_BAIL", false), "Stop on first failure (env: FLICKER_BAIL)")
	runCmd.Flags().BoolVar(&runDisabledFlag, "run-disabled", getEnvBool("FLICKER_RUN_DISABLED", false), "Evaluate bug-gated checks and report possibly fixed bugs (env: FLICKER_RUN_DISABLED)")
	runCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch scenarios and traces for changes and re-run checks")
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

// Formatter interface for all output formatters
type Formatter interface {
	FormatResult(result *runner.RunResult)
	FormatError(err error)
	FormatHeader(version string)
}

// Flushable interface for formatters that need to flush output
type Flushable interface {
	Flush(totalDuration time.Duration) error
}

// runSettings is the file config with command-line overrides applied.
type runSettings struct {
	cfg    *config.Config
	format string
}

func resolveSettings(cmd *cobra.Command) (*runSettings, error) {
	fileConfig, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, err
	}

	overrides := &config.Config{}
	if cmd.Flags().Changed("bail") || bailFlag {
		overrides.Bail = config.BoolPtr(bailFlag)
	}
	if cmd.Flags().Changed("run-disabled") || runDisabledFlag {
		overrides.RunDisabled = config.BoolPtr(runDisabledFlag)
	}
	if cmd.Flags().Changed("no-color") || noColorFlag {
		overrides.NoColor = config.BoolPtr(noColorFlag)
	}
	if verboseFlag > 0 {
		overrides.Verbose = config.BoolPtr(true)
	}

	s := &runSettings{
		cfg:    fileConfig.Merge(overrides),
		format: strings.ToLower(outputFlag),
	}
	// --output beats FLICKER_OUTPUT, which beats the config's first reporter.
	if !cmd.Flags().Changed("output") {
		if env := os.Getenv("FLICKER_OUTPUT"); env != "" {
			s.format = strings.ToLower(env)
		} else if len(s.cfg.Reporters) > 0 {
			s.format = strings.ToLower(s.cfg.Reporters[0])
		}
	}
	return s, nil
}

// reportPath is where a non-console report goes when only outputDir is configured.
func (s *runSettings) reportPath() string {
	if outputFileFlag != "" {
		return outputFileFlag
	}
	if s.cfg.OutputDir == "" {
		return ""
	}
	switch s.format {
	case "json":
		return filepath.Join(s.cfg.OutputDir, "flicker-report.json")
	case "junit":
		return filepath.Join(s.cfg.OutputDir, "flicker-report.xml")
	case "tap":
		return filepath.Join(s.cfg.OutputDir, "flicker-report.tap")
	}
	return ""
}

// openReport creates the report file, or returns nil when output goes to stdout.
func (s *runSettings) openReport() (*os.File, error) {
	path := s.reportPath()
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cannot create output file: %w", err)
	}
	return f, nil
}

func newFormatter(s *runSettings, w *os.File) Formatter {
	switch s.format {
	case "json":
		opts := []output.JSONOption{}
		if w != nil {
			opts = append(opts, output.JSONWithWriter(w))
		}
		return output.NewJSONFormatter(opts...)
	case "junit":
		opts := []output.JUnitOption{}
		if w != nil {
			opts = append(opts, output.JUnitWithWriter(w))
		}
		return output.NewJUnitFormatter(opts...)
	case "tap":
		opts := []output.TAPOption{}
		if w != nil {
			opts = append(opts, output.TAPWithWriter(w))
		}
		return output.NewTAPFormatter(opts...)
	default: // "console"
		consoleOpts := []output.ConsoleOption{
			output.WithVerbose(s.cfg.GetVerbose()),
			output.WithNoColor(s.cfg.GetNoColor()),
		}
		if w != nil {
			consoleOpts = append(consoleOpts, output.WithWriter(w))
		}
		return output.NewConsoleFormatter(consoleOpts...)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verboseFlag > 1:
		level = slog.LevelDebug
	case verboseFlag == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runCommand(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	switch settings.format {
	case "console", "json", "junit", "tap":
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown output format %q\n", settings.format)
		os.Exit(ExitUsageError)
	}

	outWriter, err := settings.openReport()
	if err != nil {
		return err
	}
	if outWriter != nil {
		defer outWriter.Close()
	}

	formatter := newFormatter(settings, outWriter)
	formatter.FormatHeader(version)

	files, err := collectFiles(args)
	if err != nil {
		formatter.FormatError(err)
		return err
	}

	if len(files) == 0 {
		formatter.FormatError(fmt.Errorf("no .flicker.yaml files found"))
		return fmt.Errorf("no files found")
	}

	logger := newLogger()
	cfg := &runner.Config{
		Display:     settings.cfg.GetDisplay(),
		RunDisabled: settings.cfg.GetRunDisabled(),
		Bail:        settings.cfg.GetBail(),
		NameFilter:  nameFlag,
		Logger:      logger,
	}

	r := runner.NewRunner(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runChecks := func(formatter Formatter) (int, int, int, time.Duration, bool) {
		totalPassed := 0
		totalFailed := 0
		totalSkipped := 0
		loadFailed := false
		startTime := time.Now()

		for _, file := range files {
			result, err := r.RunFile(ctx, file, traceFlag)
			if err != nil {
				formatter.FormatError(fmt.Errorf("%s: %w", file, err))
				loadFailed = true
				if cfg.Bail {
					break
				}
				continue
			}

			formatter.FormatResult(result)
			totalPassed += result.Passed
			totalFailed += result.Failed
			totalSkipped += result.Skipped

			if cfg.Bail && result.Failed > 0 {
				break
			}
		}

		return totalPassed, totalFailed, totalSkipped, time.Since(startTime), loadFailed
	}

	totalPassed, totalFailed, totalSkipped, totalDuration, loadFailed := runChecks(formatter)

	if flushable, ok := formatter.(Flushable); ok {
		if err := flushable.Flush(totalDuration); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}

	logger.Info("run finished", "files", len(files),
		"passed", totalPassed, "failed", totalFailed, "skipped", totalSkipped,
		"duration", totalDuration)

	if !watchFlag {
		switch {
		case loadFailed:
			os.Exit(ExitParseError)
		case totalFailed > 0:
			os.Exit(ExitCheckFailure)
		}
		return nil
	}

	return watch(ctx, cmd, files, func() error {
		outWriter, err := settings.openReport()
		if err != nil {
			return err
		}
		if outWriter != nil {
			defer outWriter.Close()
		}

		formatter := newFormatter(settings, outWriter)
		_, _, _, duration, _ := runChecks(formatter)
		if flushable, ok := formatter.(Flushable); ok {
			return flushable.Flush(duration)
		}
		return nil
	})
}

// watchTargets returns the scenario files plus every trace they reference.
func watchTargets(files []string) map[string]bool {
	targets := make(map[string]bool)
	for _, file := range files {
		targets[filepath.Clean(file)] = true
		if traceFlag != "" {
			targets[filepath.Clean(traceFlag)] = true
			continue
		}
		sc, err := scenario.ParseFile(file)
		if err != nil {
			continue
		}
		if p := sc.TracePath(); p != "" {
			targets[filepath.Clean(p)] = true
		}
	}
	return targets
}

func watch(ctx context.Context, cmd *cobra.Command, files []string, rerun func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	targets := watchTargets(files)
	watchedDirs := make(map[string]bool)
	for target := range targets {
		dir := filepath.Dir(target)
		if watchedDirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "failed to watch %s: %v\n", dir, err)
		}
		watchedDirs[dir] = true
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	return watchLoop(ctx, watcher.Events, watcher.Errors, targets, cmd.OutOrStdout(), cmd.ErrOrStderr(), rerun)
}

// watchLoop re-runs checks after changes to targets or scenario files settle.
// Re-runs happen one at a time on the calling goroutine.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, targets map[string]bool, out, errOut io.Writer, rerun func() error) error {
	// Debounce timer for rapid file changes
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	changed := make(chan string, 1)
	limiter := rate.NewLimiter(rate.Every(WatchRerunInterval), 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if !targets[name] && !scenario.IsScenarioFile(name) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				select {
				case changed <- name:
				default:
				}
			})

		case name := <-changed:
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			fmt.Fprintf(out, "\n\nFile changed: %s\nRe-running checks...\n\n", name)
			if err := rerun(); err != nil {
				fmt.Fprintf(errOut, "error writing output: %v\n", err)
			}
			fmt.Fprintf(out, "\nWatching for changes... (press Ctrl+C to stop)\n")

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				fmt.Fprintf(errOut, "watcher overflow, some changes may be missed\n")
				continue
			}
			fmt.Fprintf(errOut, "watcher error: %v\n", err)
		}
	}
}

func collectFiles(args []string) ([]string, error) {
	return collect(args, scenario.IsScenarioFile)
}

// collect expands directories into the files accepted by match. Files named
// directly are kept only when they match.
func collect(args []string, match func(string) bool) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && match(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			if match(arg) {
				files = append(files, arg)
			}
		}
	}

	return files, nil
}
