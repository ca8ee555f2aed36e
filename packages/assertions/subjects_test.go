package assertions

import (
	"testing"

	"github.com/abdul-hamid-achik/flicker/packages/geometry"
	"github.com/abdul-hamid-achik/flicker/packages/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layer(name string, visible bool, rects ...geometry.Rect) trace.Layer {
	return trace.Layer{Name: name, Visible: visible, VisibleRegion: geometry.NewRegion(rects...)}
}

func TestShowsAboveAppWindow(t *testing.T) {
	state := &trace.WindowManagerState{
		Timestamp: 10,
		Windows: []trace.Window{
			{Title: "StatusBar", Visible: true},
			{Title: "com.example/.Main", Visible: true, AppWindow: true},
			{Title: "NavigationBar", Visible: true},
			{Title: "Toast", Visible: false},
		},
	}

	assert.NoError(t, ShowsAboveAppWindow("StatusBar")(state))

	err := ShowsAboveAppWindow("NavigationBar")(state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not visible above app windows")

	err = ShowsAboveAppWindow("InputMethod")(state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLayerSubjects(t *testing.T) {
	state := &trace.LayerState{
		Timestamp: 20,
		Layers: []trace.Layer{
			layer("StatusBar", true, geometry.NewRect(0, 0, 100, 10)),
			layer("NavigationBar0", true, geometry.NewRect(0, 190, 100, 200)),
			layer("com.example/.Main", true, geometry.NewRect(0, 10, 100, 190)),
			layer("DockedStackDivider", false),
		},
	}

	t.Run("shows layer", func(t *testing.T) {
		assert.NoError(t, ShowsLayer("StatusBar")(state))
		assert.Error(t, ShowsLayer("DockedStackDivider")(state))
		assert.Error(t, ShowsLayer("AppPairDivider")(state))
	})

	t.Run("has not layer", func(t *testing.T) {
		assert.NoError(t, HasNotLayer("AppPairDivider")(state))
		assert.Error(t, HasNotLayer("DockedStackDivider")(state))
	})

	t.Run("has visible region", func(t *testing.T) {
		expected := geometry.NewRegion(geometry.NewRect(0, 190, 100, 200))
		assert.NoError(t, HasVisibleRegion("NavigationBar", expected)(state))

		wrong := geometry.NewRegion(geometry.NewRect(90, 0, 100, 200))
		err := HasVisibleRegion("NavigationBar", wrong)(state)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NavigationBar")
	})

	t.Run("covers at least region", func(t *testing.T) {
		assert.NoError(t, CoversAtLeastRegion(geometry.NewRect(0, 0, 100, 200))(state))

		err := CoversAtLeastRegion(geometry.NewRect(0, 0, 200, 100))(state)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not covered")
	})
}

func TestFocusChanges(t *testing.T) {
	events := []trace.FocusEvent{
		{Window: "com.example/.Launcher", Kind: trace.FocusRequested},
		{Window: "com.example/.Launcher", Kind: trace.FocusGained},
		{Window: "com.example/.Launcher", Kind: trace.FocusLost},
		{Window: "com.example/.Settings", Kind: trace.FocusGained},
	}

	tests := []struct {
		name    string
		windows []string
		passed  bool
	}{
		{name: "exact sequence", windows: []string{"Launcher", "Settings"}, passed: true},
		{name: "wrong order", windows: []string{"Settings", "Launcher"}, passed: false},
		{name: "missing transition", windows: []string{"Launcher"}, passed: false},
		{name: "extra transition", windows: []string{"Launcher", "Settings", "Launcher"}, passed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FocusChanges(tt.windows...)(events)
			if tt.passed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFocusDoesNotChange(t *testing.T) {
	assert.NoError(t, FocusDoesNotChange()(nil))
	assert.NoError(t, FocusDoesNotChange()([]trace.FocusEvent{{Window: "a", Kind: trace.FocusLost}}))
	assert.Error(t, FocusDoesNotChange()([]trace.FocusEvent{{Window: "a", Kind: trace.FocusGained}}))
}

func TestSuite_Evaluate(t *testing.T) {
	s := NewSuite()
	s.Windows.All("statusBar", Enabled(), Each(ShowsAboveAppWindow("StatusBar")))
	s.Layers.End("divider", NewGate(99), HasNotLayer("AppPairDivider"))
	s.Events.All("focus", Enabled(), FocusDoesNotChange())

	tr := &trace.Trace{
		Version: trace.Version,
		Windows: []*trace.WindowManagerState{{Windows: []trace.Window{{Title: "StatusBar", Visible: true}}}},
		Layers:  []*trace.LayerState{{}},
	}

	results := s.Evaluate(tr)
	require.Len(t, results, 3)
	assert.Equal(t, 3, s.Len())

	assert.Equal(t, "wm", results[0].Kind)
	assert.True(t, results[0].Passed)
	assert.Equal(t, "layers", results[1].Kind)
	assert.True(t, results[1].Skipped)
	assert.Equal(t, 99, results[1].BugID)
	assert.Equal(t, "eventlog", results[2].Kind)
	assert.True(t, results[2].Passed)
}
