package scenario

import (
	"sort"

	"github.com/abdul-hamid-achik/flicker/packages/assertions"
	"github.com/abdul-hamid-achik/flicker/packages/flicker"
	"github.com/abdul-hamid-achik/flicker/packages/geometry"
)

type invocation struct {
	begin     geometry.Rotation
	end       geometry.Rotation
	allStates bool
	windows   []string
	opts      []flicker.Option
}

// Helper describes a helper that scenarios can name.
type Helper struct {
	Name        string
	Description string
	register    func(s *assertions.Suite, m geometry.Metrics, inv invocation)
}

var registry = map[string]Helper{}

func register(name, description string, fn func(s *assertions.Suite, m geometry.Metrics, inv invocation)) {
	registry[name] = Helper{Name: name, Description: description, register: fn}
}

func lookup(name string) (Helper, bool) {
	h, ok := registry[name]
	return h, ok
}

// Helpers returns every helper scenarios can name, sorted by name.
func Helpers() []Helper {
	helpers := make([]Helper, 0, len(registry))
	for _, h := range registry {
		helpers = append(helpers, h)
	}
	sort.Slice(helpers, func(i, j int) bool {
		return helpers[i].Name < helpers[j].Name
	})
	return helpers
}

func init() {
	register("statusBarWindowIsAlwaysVisible", "status bar window is above app windows in every state",
		func(s *assertions.Suite, _ geometry.Metrics, inv invocation) {
			flicker.StatusBarWindowIsAlwaysVisible(s.Windows, inv.opts...)
		})
	register("navBarWindowIsAlwaysVisible", "navigation bar window is above app windows in every state",
		func(s *assertions.Suite, _ geometry.Metrics, inv invocation) {
			flicker.NavBarWindowIsAlwaysVisible(s.Windows, inv.opts...)
		})
	register("noUncoveredRegions", "visible layers cover the display",
		func(s *assertions.Suite, m geometry.Metrics, inv invocation) {
			flicker.NoUncoveredRegions(s.Layers, m, inv.begin, inv.end, inv.allStates, inv.opts...)
		})
	register("statusBarLayerIsAlwaysVisible", "status bar layer is shown in every state",
		func(s *assertions.Suite, _ geometry.Metrics, inv invocation) {
			flicker.StatusBarLayerIsAlwaysVisible(s.Layers, inv.opts...)
		})
	register("navBarLayerIsAlwaysVisible", "navigation bar layer is shown in every state",
		func(s *assertions.Suite, _ geometry.Metrics, inv invocation) {
			flicker.NavBarLayerIsAlwaysVisible(s.Layers, inv.opts...)
		})
	register("appPairsDividerIsVisible", "app pairs divider is shown at the end",
		func(s *assertions.Suite, _ geometry.Metrics, inv invocation) {
			flicker.AppPairsDividerIsVisible(s.Layers, inv.opts...)
		})
	register("appPairsDividerIsInvisible", "app pairs divider is gone at the end",
		func(s *assertions.Suite, _ geometry.Metrics, inv invocation) {
			flicker.AppPairsDividerIsInvisible(s.Layers, inv.opts...)
		})
	register("dockedStackDividerIsVisible", "docked stack divider is shown at the end",
		func(s *assertions.Suite, _ geometry.Metrics, inv invocation) {
			flicker.DockedStackDividerIsVisible(s.Layers, inv.opts...)
		})
	register("dockedStackDividerIsInvisible", "docked stack divider is gone at the end",
		func(s *assertions.Suite, _ geometry.Metrics, inv invocation) {
			flicker.DockedStackDividerIsInvisible(s.Layers, inv.opts...)
		})
	register("navBarLayerRotatesAndScales", "navigation bar layer is where the rotation puts it",
		func(s *assertions.Suite, m geometry.Metrics, inv invocation) {
			flicker.NavBarLayerRotatesAndScales(s.Layers, m, inv.begin, inv.end, inv.opts...)
		})
	register("statusBarLayerRotatesScales", "status bar layer is where the rotation puts it",
		func(s *assertions.Suite, m geometry.Metrics, inv invocation) {
			flicker.StatusBarLayerRotatesScales(s.Layers, m, inv.begin, inv.end, inv.opts...)
		})
	register("focusChanges", "focus moves through the listed windows, in order",
		func(s *assertions.Suite, _ geometry.Metrics, inv invocation) {
			flicker.FocusChanges(s.Events, inv.windows, inv.opts...)
		})
	register("focusDoesNotChange", "focus never changes",
		func(s *assertions.Suite, _ geometry.Metrics, inv invocation) {
			flicker.FocusDoesNotChange(s.Events, inv.opts...)
		})
}
