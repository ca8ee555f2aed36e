package assertions

import "fmt"

// Gate decides whether a registered check is evaluated.
type Gate struct {
	BugID   int
	Enabled bool
}

// DefaultEnabled returns the enabled state implied by a bug reference: checks
// without a tracking bug run, checks with one do not.
func DefaultEnabled(bugID int) bool {
	return bugID == 0
}

// NewGate returns a gate whose enabled state is derived from bugID.
func NewGate(bugID int) Gate {
	return Gate{BugID: bugID, Enabled: DefaultEnabled(bugID)}
}

// Enabled returns a gate with no bug reference.
func Enabled() Gate {
	return NewGate(0)
}

// WithEnabled returns a copy of g with an explicit enabled state.
func (g Gate) WithEnabled(enabled bool) Gate {
	g.Enabled = enabled
	return g
}

// SkipReason describes why a disabled check did not run.
func (g Gate) SkipReason() string {
	if g.BugID != 0 {
		return fmt.Sprintf("disabled (bug %d)", g.BugID)
	}
	return "disabled"
}
