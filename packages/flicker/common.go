package flicker

import (
	"github.com/abdul-hamid-achik/flicker/packages/assertions"
	"github.com/abdul-hamid-achik/flicker/packages/geometry"
)

// Window and layer names of the system UI surfaces.
const (
	StatusBarWindowTitle     = "StatusBar"
	NavigationBarWindowTitle = "NavigationBar"
	AppPairsDivider          = "AppPairDivider"
	DockedStackDivider       = "DockedStackDivider"
)

// StatusBarWindowIsAlwaysVisible checks that the status bar window is above
// the app windows in every state.
func StatusBarWindowIsAlwaysVisible(wm *assertions.WindowBuilder, opts ...Option) {
	wm.All(CheckStatusBarWindowIsAlwaysVisible, Resolve(opts...),
		assertions.Each(assertions.ShowsAboveAppWindow(StatusBarWindowTitle)))
}

// NavBarWindowIsAlwaysVisible checks that the navigation bar window is above
// the app windows in every state.
func NavBarWindowIsAlwaysVisible(wm *assertions.WindowBuilder, opts ...Option) {
	wm.All(CheckNavBarWindowIsAlwaysVisible, Resolve(opts...),
		assertions.Each(assertions.ShowsAboveAppWindow(NavigationBarWindowTitle)))
}

// NoUncoveredRegions checks that visible layers cover the display. With
// allStates every state is checked, moving from the begin bounds to the end
// bounds when the rotation changes them; otherwise only the first state is
// checked against the begin bounds and the last against the end bounds.
func NoUncoveredRegions(layers *assertions.LayerBuilder, m geometry.Metrics, begin, end geometry.Rotation, allStates bool, opts ...Option) {
	gate := Resolve(opts...)
	startingBounds := m.DisplayBounds(begin)
	endingBounds := m.DisplayBounds(end)

	if !allStates {
		layers.Start(CheckNoUncoveredRegionsStartingPos, gate, assertions.CoversAtLeastRegion(startingBounds))
		layers.End(CheckNoUncoveredRegionsEndingPos, gate, assertions.CoversAtLeastRegion(endingBounds))
		return
	}

	if startingBounds.Equal(endingBounds) {
		layers.All(CheckNoUncoveredRegions, gate,
			assertions.Each(assertions.CoversAtLeastRegion(startingBounds)))
		return
	}
	layers.All(CheckNoUncoveredRegions, gate,
		assertions.First(assertions.CoversAtLeastRegion(startingBounds)).
			Then(assertions.CoversAtLeastRegion(endingBounds)).
			Assert())
}

// StatusBarLayerIsAlwaysVisible checks that the status bar layer is shown in
// every state.
func StatusBarLayerIsAlwaysVisible(layers *assertions.LayerBuilder, opts ...Option) {
	layers.All(CheckStatusBarLayerIsAlwaysVisible, Resolve(opts...),
		assertions.Each(assertions.ShowsLayer(StatusBarWindowTitle)))
}

// NavBarLayerIsAlwaysVisible checks that the navigation bar layer is shown in
// every state.
func NavBarLayerIsAlwaysVisible(layers *assertions.LayerBuilder, opts ...Option) {
	layers.All(CheckNavBarLayerIsAlwaysVisible, Resolve(opts...),
		assertions.Each(assertions.ShowsLayer(NavigationBarWindowTitle)))
}

func AppPairsDividerIsVisible(layers *assertions.LayerBuilder, opts ...Option) {
	layers.End(CheckAppPairsDividerIsVisible, Resolve(opts...), assertions.ShowsLayer(AppPairsDivider))
}

func AppPairsDividerIsInvisible(layers *assertions.LayerBuilder, opts ...Option) {
	layers.End(CheckAppPairsDividerIsInvisible, Resolve(opts...), assertions.HasNotLayer(AppPairsDivider))
}

func DockedStackDividerIsVisible(layers *assertions.LayerBuilder, opts ...Option) {
	layers.End(CheckDockedStackDividerIsVisible, Resolve(opts...), assertions.ShowsLayer(DockedStackDivider))
}

func DockedStackDividerIsInvisible(layers *assertions.LayerBuilder, opts ...Option) {
	layers.End(CheckDockedStackDividerIsInvisible, Resolve(opts...), assertions.HasNotLayer(DockedStackDivider))
}

// NavBarLayerRotatesAndScales checks the navigation bar layer position at the
// start and end of the transition. When both rotations put the bar in the
// same place, it must stay there in every state.
func NavBarLayerRotatesAndScales(layers *assertions.LayerBuilder, m geometry.Metrics, begin, end geometry.Rotation, opts ...Option) {
	gate := Resolve(opts...)
	startingPos := m.NavigationBarPosition(begin)
	endingPos := m.NavigationBarPosition(end)

	layers.Start(CheckNavBarLayerRotatesAndScalesStart, gate,
		assertions.HasVisibleRegion(NavigationBarWindowTitle, startingPos))
	layers.End(CheckNavBarLayerRotatesAndScalesEnd, gate,
		assertions.HasVisibleRegion(NavigationBarWindowTitle, endingPos))

	if startingPos.Equal(endingPos) {
		layers.All(CheckNavBarLayerRotatesAndScales, gate,
			assertions.Each(assertions.HasVisibleRegion(NavigationBarWindowTitle, startingPos)))
	}
}

// StatusBarLayerRotatesScales checks the status bar layer position at the
// start and end of the transition.
func StatusBarLayerRotatesScales(layers *assertions.LayerBuilder, m geometry.Metrics, begin, end geometry.Rotation, opts ...Option) {
	gate := Resolve(opts...)
	startingPos := m.StatusBarPosition(begin)
	endingPos := m.StatusBarPosition(end)

	layers.Start(CheckStatusBarLayerRotatesScalesStart, gate,
		assertions.HasVisibleRegion(StatusBarWindowTitle, startingPos))
	layers.End(CheckStatusBarLayerRotatesScalesEnd, gate,
		assertions.HasVisibleRegion(StatusBarWindowTitle, endingPos))
}

// FocusChanges checks that focus moves through windows, in order, and nowhere else.
func FocusChanges(events *assertions.EventLogBuilder, windows []string, opts ...Option) {
	events.All(CheckFocusChanges, Resolve(opts...), assertions.FocusChanges(windows...))
}

func FocusDoesNotChange(events *assertions.EventLogBuilder, opts ...Option) {
	events.All(CheckFocusDoesNotChange, Resolve(opts...), assertions.FocusDoesNotChange())
}
