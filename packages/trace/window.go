package trace

import (
	"strings"

	"github.com/abdul-hamid-achik/flicker/packages/geometry"
)

// Window is one window in the window manager hierarchy.
type Window struct {
	Title     string        `json:"title"`
	Visible   bool          `json:"visible"`
	AppWindow bool          `json:"appWindow,omitempty"`
	Frame     geometry.Rect `json:"frame"`
}

// WindowManagerState is a window hierarchy snapshot. Windows are ordered
// from the top of the z-order down.
type WindowManagerState struct {
	Timestamp int64    `json:"timestamp"`
	Windows   []Window `json:"windows"`
}

// AboveAppWindows returns the windows stacked above the top-most visible app
// window. All windows are returned when no app window is visible.
func (s *WindowManagerState) AboveAppWindows() []Window {
	for i, w := range s.Windows {
		if w.AppWindow && w.Visible {
			return s.Windows[:i]
		}
	}
	return s.Windows
}

// FindWindow returns the first window whose title contains title.
func (s *WindowManagerState) FindWindow(title string) (Window, bool) {
	for _, w := range s.Windows {
		if strings.Contains(w.Title, title) {
			return w, true
		}
	}
	return Window{}, false
}

// VisibleWindowTitles lists the titles of visible windows in z-order.
func (s *WindowManagerState) VisibleWindowTitles() []string {
	var titles []string
	for _, w := range s.Windows {
		if w.Visible {
			titles = append(titles, w.Title)
		}
	}
	return titles
}
