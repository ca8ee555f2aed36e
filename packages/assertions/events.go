package assertions

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/flicker/packages/trace"
)

// EventLogBuilder registers checks over focus events.
type EventLogBuilder = Builder[trace.FocusEvent]

// NewEventLogBuilder creates a builder for event log entries.
func NewEventLogBuilder() *EventLogBuilder {
	return NewBuilder[trace.FocusEvent]("eventlog")
}

// FocusChanges requires focus to be gained by exactly the given windows, in
// order. Each entry matches a window title by substring.
func FocusChanges(windows ...string) TraceAssertion[trace.FocusEvent] {
	return func(events []trace.FocusEvent) error {
		changes := focusChanges(events)
		if len(changes) != len(windows) {
			return fmt.Errorf("expected focus changes %v, got %v", windows, changes)
		}
		for i, want := range windows {
			if !strings.Contains(changes[i], want) {
				return fmt.Errorf("focus change %d went to %q, expected %q (all changes: %v)", i, changes[i], want, changes)
			}
		}
		return nil
	}
}

// FocusDoesNotChange requires that no window gains focus.
func FocusDoesNotChange() TraceAssertion[trace.FocusEvent] {
	return func(events []trace.FocusEvent) error {
		if changes := focusChanges(events); len(changes) > 0 {
			return fmt.Errorf("focus changed to %v", changes)
		}
		return nil
	}
}

func focusChanges(events []trace.FocusEvent) []string {
	var windows []string
	for _, e := range events {
		if e.HasFocus() {
			windows = append(windows, e.Window)
		}
	}
	return windows
}
