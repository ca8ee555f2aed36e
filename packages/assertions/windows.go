package assertions

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/flicker/packages/trace"
)

// WindowBuilder registers checks over window manager states.
type WindowBuilder = Builder[*trace.WindowManagerState]

// NewWindowBuilder creates a builder for window manager states.
func NewWindowBuilder() *WindowBuilder {
	return NewBuilder[*trace.WindowManagerState]("wm")
}

// ShowsAboveAppWindow requires a visible window whose title contains title
// to be stacked above every visible app window.
func ShowsAboveAppWindow(title string) StateAssertion[*trace.WindowManagerState] {
	return func(s *trace.WindowManagerState) error {
		for _, w := range s.AboveAppWindows() {
			if w.Visible && strings.Contains(w.Title, title) {
				return nil
			}
		}
		if _, ok := s.FindWindow(title); !ok {
			return fmt.Errorf("window %q not found (t=%d)", title, s.Timestamp)
		}
		return fmt.Errorf("window %q is not visible above app windows (t=%d, visible: %v)",
			title, s.Timestamp, s.VisibleWindowTitles())
	}
}
