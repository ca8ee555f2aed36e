package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdul-hamid-achik/flicker/packages/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rotationTrace covers a rotation from portrait to landscape on the default
// display, with the status bar hidden in the middle state.
const rotationTrace = `{
  "version": 1,
  "windows": [
    {"timestamp": 1, "windows": [
      {"title": "StatusBar", "visible": true},
      {"title": "NavigationBar", "visible": true},
      {"title": "com.example/.Main", "visible": true, "appWindow": true}
    ]},
    {"timestamp": 2, "windows": [
      {"title": "StatusBar", "visible": true},
      {"title": "NavigationBar", "visible": true},
      {"title": "com.example/.Main", "visible": true, "appWindow": true}
    ]}
  ],
  "layers": [
    {"timestamp": 1, "layers": [
      {"id": 1, "name": "StatusBar", "visible": true, "visibleRegion": {"rects": [{"left": 0, "top": 0, "right": 1080, "bottom": 63}]}},
      {"id": 2, "name": "NavigationBar0", "visible": true, "visibleRegion": {"rects": [{"left": 0, "top": 1794, "right": 1080, "bottom": 1920}]}},
      {"id": 3, "name": "com.example/.Main", "visible": true, "visibleRegion": {"rects": [{"left": 0, "top": 0, "right": 1080, "bottom": 1920}]}}
    ]},
    {"timestamp": 2, "layers": [
      {"id": 1, "name": "StatusBar", "visible": false},
      {"id": 2, "name": "NavigationBar0", "visible": true, "visibleRegion": {"rects": [{"left": 1794, "top": 0, "right": 1920, "bottom": 1080}]}},
      {"id": 3, "name": "com.example/.Main", "visible": true, "visibleRegion": {"rects": [{"left": 0, "top": 0, "right": 1920, "bottom": 1080}]}}
    ]},
    {"timestamp": 3, "layers": [
      {"id": 1, "name": "StatusBar", "visible": true, "visibleRegion": {"rects": [{"left": 0, "top": 0, "right": 1920, "bottom": 63}]}},
      {"id": 2, "name": "NavigationBar0", "visible": true, "visibleRegion": {"rects": [{"left": 1794, "top": 0, "right": 1920, "bottom": 1080}]}},
      {"id": 3, "name": "com.example/.Main", "visible": true, "visibleRegion": {"rects": [{"left": 0, "top": 0, "right": 1920, "bottom": 1080}]}}
    ]}
  ],
  "events": []
}`

const rotationScenario = `name: rotate-app
trace: rotate.json
beginRotation: 0
endRotation: 90
assertions:
  - helper: statusBarWindowIsAlwaysVisible
  - helper: noUncoveredRegions
  - helper: navBarLayerRotatesAndScales
  - helper: statusBarLayerRotatesScales
  - helper: statusBarLayerIsAlwaysVisible
    bugId: 151179149
  - helper: focusDoesNotChange
`

func writeFixture(t *testing.T, scenarioText string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rotate.json"), []byte(rotationTrace), 0644))
	path := filepath.Join(dir, "rotate.flicker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioText), 0644))
	return path
}

func TestNewRunner(t *testing.T) {
	t.Run("with nil config", func(t *testing.T) {
		r := NewRunner(nil)
		assert.NotNil(t, r)
		assert.NotNil(t, r.logger)
		assert.Equal(t, geometry.DefaultDisplay(), r.config.Display)
	})

	t.Run("with custom config", func(t *testing.T) {
		r := NewRunner(&Config{Bail: true, NameFilter: "navBar*"})
		assert.True(t, r.config.Bail)
		assert.Equal(t, geometry.DefaultDisplay(), r.config.Display)
	})
}

func TestRunner_RunFile(t *testing.T) {
	path := writeFixture(t, rotationScenario)

	r := NewRunner(nil)
	result, err := r.RunFile(context.Background(), path, "")
	require.NoError(t, err)

	assert.Equal(t, "rotate-app", result.Scenario)
	for _, res := range result.Results {
		if !res.Skipped {
			assert.True(t, res.Passed, "%s: %s", res.Name, res.Message)
		}
	}
	// statusBarWindow, noUncoveredRegions, 2 nav bar, 2 status bar, status bar layer, focus
	assert.Len(t, result.Results, 8)
	assert.Equal(t, 7, result.Passed)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 1, result.Skipped)
}

func TestRunner_RunDisabled(t *testing.T) {
	path := writeFixture(t, rotationScenario)

	r := NewRunner(&Config{RunDisabled: true})
	result, err := r.RunFile(context.Background(), path, "")
	require.NoError(t, err)

	var gated bool
	for _, res := range result.Results {
		if res.Name == "statusBarLayerIsAlwaysVisible" {
			gated = true
			assert.True(t, res.Skipped)
			require.NotNil(t, res.WouldPass)
			assert.False(t, *res.WouldPass)
		}
	}
	assert.True(t, gated)
	assert.Empty(t, result.PossiblyFixed())
}

func TestRunner_EnabledBugFails(t *testing.T) {
	path := writeFixture(t, `trace: rotate.json
assertions:
  - helper: statusBarLayerIsAlwaysVisible
    bugId: 151179149
    enabled: true
`)

	result, err := NewRunner(nil).RunFile(context.Background(), path, "")
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Results[0].Message, "state 1")
	assert.Equal(t, 151179149, result.Results[0].BugID)
}

func TestRunner_NameFilter(t *testing.T) {
	path := writeFixture(t, rotationScenario)

	result, err := NewRunner(&Config{NameFilter: "navBar*"}).RunFile(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Passed)
	assert.Equal(t, 6, result.Skipped)
}

func TestRunner_NameFilterMatchesLegacyNames(t *testing.T) {
	path := writeFixture(t, rotationScenario)

	result, err := NewRunner(&Config{NameFilter: "*_EndingPost"}).RunFile(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 7, result.Skipped)

	for _, res := range result.Results {
		if !res.Skipped {
			assert.Equal(t, "navBarLayerRotatesAndScales_EndingPos", res.Name)
		}
	}
}

func TestRunner_Hooks(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "captured.json")
	require.NoError(t, os.WriteFile(src, []byte(rotationTrace), 0644))

	path := filepath.Join(dir, "pull.flicker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`trace: pulled.json
setup:
  - cp captured.json pulled.json
teardown:
  - rm pulled.json
assertions:
  - helper: focusDoesNotChange
`), 0644))

	result, err := NewRunner(nil).RunFile(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Passed)

	_, err = os.Stat(filepath.Join(dir, "pulled.json"))
	assert.True(t, os.IsNotExist(err), "teardown should remove the pulled trace")
}

func TestRunner_ScriptHooksWithRelativeScenarioPath(t *testing.T) {
	tests := []struct {
		name  string
		setup string
	}{
		{name: "dot slash script", setup: "./pull.sh"},
		{name: "bare script name", setup: "pull.sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			wd, err := os.Getwd()
			require.NoError(t, err)
			require.NoError(t, os.Chdir(dir))
			defer os.Chdir(wd)

			scenarios := filepath.Join(dir, "scenarios")
			require.NoError(t, os.MkdirAll(scenarios, 0755))
			require.NoError(t, os.WriteFile(filepath.Join(scenarios, "captured.json"), []byte(rotationTrace), 0644))
			require.NoError(t, os.WriteFile(filepath.Join(scenarios, "pull.sh"),
				[]byte("#!/bin/sh\ncp captured.json pulled.json\n"), 0755))
			require.NoError(t, os.WriteFile(filepath.Join(scenarios, "pull.flicker.yaml"), []byte(`trace: pulled.json
setup:
  - `+tt.setup+`
assertions:
  - helper: focusDoesNotChange
`), 0644))

			result, err := NewRunner(nil).RunFile(context.Background(), filepath.Join("scenarios", "pull.flicker.yaml"), "")
			require.NoError(t, err)
			assert.Equal(t, 1, result.Passed)
			assert.FileExists(t, filepath.Join(scenarios, "pulled.json"))
		})
	}
}

func TestRunner_Errors(t *testing.T) {
	t.Run("no trace", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bare.flicker.yaml")
		require.NoError(t, os.WriteFile(path, []byte("assertions:\n  - helper: focusDoesNotChange\n"), 0644))

		_, err := NewRunner(nil).RunFile(context.Background(), path, "")
		assert.ErrorIs(t, err, ErrNoTrace)
	})

	t.Run("failing setup", func(t *testing.T) {
		path := writeFixture(t, "trace: rotate.json\nsetup:\n  - exit 3\nassertions:\n  - helper: focusDoesNotChange\n")

		_, err := NewRunner(nil).RunFile(context.Background(), path, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "setup failed")
	})

	t.Run("trace override", func(t *testing.T) {
		path := writeFixture(t, rotationScenario)

		_, err := NewRunner(nil).RunFile(context.Background(), path, filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		matches bool
	}{
		{"noUncoveredRegions", "", true},
		{"noUncoveredRegions", "*", true},
		{"noUncoveredRegions", "noUncoveredRegions", true},
		{"noUncoveredRegions_StartingPos", "noUncovered*", true},
		{"navBarLayerRotatesAndScales_EndingPos", "*_EndingPos", true},
		{"statusBarLayerIsAlwaysVisible", "*Layer*", true},
		{"statusBarWindowIsAlwaysVisible", "*Layer*", false},
		{"focusChanges", "focus", false},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.matches, matchesPattern(tt.name, tt.pattern))
		})
	}
}
