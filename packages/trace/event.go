package trace

// FocusKind is the type of a focus event.
type FocusKind string

const (
	FocusGained    FocusKind = "gained"
	FocusLost      FocusKind = "lost"
	FocusRequested FocusKind = "requested"
)

// FocusEvent is an input focus entry from the event log.
type FocusEvent struct {
	Timestamp int64     `json:"timestamp"`
	Window    string    `json:"window"`
	Kind      FocusKind `json:"kind"`
	Reason    string    `json:"reason,omitempty"`
}

// HasFocus reports whether the event gives focus to its window.
func (e FocusEvent) HasFocus() bool {
	return e.Kind == FocusGained
}
