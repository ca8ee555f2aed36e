package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/flicker/packages/core/config"
	"github.com/abdul-hamid-achik/flicker/packages/core/scenario"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.flicker.yaml"), "name: a\nassertions: []\n")
	writeFile(t, filepath.Join(dir, "nested", "b.flicker.yml"), "name: b\nassertions: []\n")
	writeFile(t, filepath.Join(dir, "trace.json"), "{}")
	writeFile(t, filepath.Join(dir, "notes.yaml"), "x: 1\n")

	files, err := collectFiles([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.flicker.yaml"),
		filepath.Join(dir, "nested", "b.flicker.yml"),
	}, files)

	all, err := collect([]string{dir}, isValidatable)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = collectFiles([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.flicker.yaml")
	writeFile(t, good, "name: good\nassertions:\n  - helper: focusDoesNotChange\n")
	assert.NoError(t, validateFile(good))

	bad := filepath.Join(dir, "bad.flicker.yaml")
	writeFile(t, bad, "name: bad\nassertions:\n  - helper: noSuchHelper\n")
	assert.ErrorIs(t, validateFile(bad), scenario.ErrUnknownHelper)

	tr := filepath.Join(dir, "trace.json")
	writeFile(t, tr, `{"version": 1, "windows": [], "layers": [], "events": []}`)
	assert.NoError(t, validateFile(tr))

	badTrace := filepath.Join(dir, "old.json")
	writeFile(t, badTrace, `{"version": 7}`)
	assert.Error(t, validateFile(badTrace))
}

func TestHelpersCommand(t *testing.T) {
	var buf bytes.Buffer
	helpersCmd.SetOut(&buf)
	defer helpersCmd.SetOut(nil)

	require.NoError(t, helpersCommand(helpersCmd, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, len(scenario.Helpers()))
	assert.True(t, strings.HasPrefix(lines[0], "appPairsDividerIsInvisible"))
	assert.Contains(t, buf.String(), "noUncoveredRegions")
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	var buf bytes.Buffer
	initCmd.SetOut(&buf)
	defer initCmd.SetOut(nil)

	require.NoError(t, initCommand(initCmd, nil))
	assert.Contains(t, buf.String(), "flicker project initialized!")

	cfg, err := config.LoadConfig(filepath.Join(dir, ".flicker.config.json"))
	require.NoError(t, err)
	assert.True(t, cfg.IsDefault())

	sc, err := scenario.ParseFile(filepath.Join(dir, "example.flicker.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "example-rotation", sc.Name)
	assert.Len(t, sc.Assertions, 6)
	assert.Equal(t, 140855415, sc.Assertions[5].BugID)

	err = initCommand(initCmd, nil)
	assert.ErrorContains(t, err, "already exists")
}

func TestReportPath(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		outputDir string
		expected  string
	}{
		{"console ignores output dir", "console", "reports", ""},
		{"json in output dir", "json", "reports", filepath.Join("reports", "flicker-report.json")},
		{"junit in output dir", "junit", "reports", filepath.Join("reports", "flicker-report.xml")},
		{"no output dir", "tap", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &runSettings{cfg: &config.Config{OutputDir: tt.outputDir}, format: tt.format}
			assert.Equal(t, tt.expected, s.reportPath())
		})
	}
}

func resetRunFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		for _, name := range []string{"output", "bail"} {
			runCmd.Flags().Lookup(name).Changed = false
		}
		outputFlag = "console"
		bailFlag = false
		configFlag = ""
	})
}

func TestResolveSettings(t *testing.T) {
	dir := t.TempDir()
	junitConfig := filepath.Join(dir, "junit.json")
	writeFile(t, junitConfig, `{"reporters": ["junit"], "bail": true}`)

	tests := []struct {
		name   string
		config string
		env    string
		flags  map[string]string
		format string
		bail   bool
	}{
		{name: "defaults", format: "console"},
		{name: "config reporter", config: junitConfig, format: "junit", bail: true},
		{name: "env beats config", config: junitConfig, env: "JSON", format: "json", bail: true},
		{name: "flag beats env", config: junitConfig, env: "json", flags: map[string]string{"output": "tap"}, format: "tap", bail: true},
		{name: "explicit false flag beats config", config: junitConfig, flags: map[string]string{"bail": "false"}, format: "junit", bail: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetRunFlags(t)
			t.Setenv("FLICKER_OUTPUT", tt.env)

			if tt.config == "" {
				wd, err := os.Getwd()
				require.NoError(t, err)
				require.NoError(t, os.Chdir(t.TempDir()))
				defer os.Chdir(wd)
			}
			configFlag = tt.config
			for name, value := range tt.flags {
				require.NoError(t, runCmd.Flags().Set(name, value))
			}

			s, err := resolveSettings(runCmd)
			require.NoError(t, err)
			assert.Equal(t, tt.format, s.format)
			assert.Equal(t, tt.bail, s.cfg.GetBail())
		})
	}
}

func TestResolveSettings_BadConfig(t *testing.T) {
	resetRunFlags(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	writeFile(t, path, `{"display": {"width": 0, "height": 10}}`)
	configFlag = path

	_, err := resolveSettings(runCmd)
	assert.ErrorContains(t, err, "display size must be positive")
}

func TestWatchLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan fsnotify.Event)
	errs := make(chan error)
	targets := map[string]bool{filepath.Clean("captures/rotate.json"): true}

	var runs, running, overlapped atomic.Int32
	rerun := func() error {
		if running.Add(1) > 1 {
			overlapped.Store(1)
		}
		defer running.Add(-1)
		runs.Add(1)
		time.Sleep(50 * time.Millisecond)
		return nil
	}

	var out, errOut bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, events, errs, targets, &out, &errOut, rerun)
	}()

	events <- fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "captures/rotate.json", Op: fsnotify.Chmod}
	for i := 0; i < 3; i++ {
		events <- fsnotify.Event{Name: "captures/rotate.json", Op: fsnotify.Write}
	}

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 3*time.Second, 20*time.Millisecond)

	events <- fsnotify.Event{Name: "a.flicker.yaml", Op: fsnotify.Create}
	require.Eventually(t, func() bool { return runs.Load() == 2 }, 3*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, int32(2), runs.Load())
	assert.Zero(t, overlapped.Load())
	assert.Empty(t, errOut.String())
}
