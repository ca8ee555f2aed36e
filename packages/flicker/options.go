package flicker

import "github.com/abdul-hamid-achik/flicker/packages/assertions"

// Option configures how a helper gates its checks.
type Option func(*options)

type options struct {
	bugID   int
	enabled *bool
}

// BugID ties the checks to a tracking bug. Unless Enabled is also given, the
// checks are registered disabled.
func BugID(id int) Option {
	return func(o *options) {
		o.bugID = id
	}
}

// Enabled overrides whether the checks run, regardless of BugID.
func Enabled(enabled bool) Option {
	return func(o *options) {
		o.enabled = &enabled
	}
}

// Resolve returns the gate produced by opts. Options may come in any order.
func Resolve(opts ...Option) assertions.Gate {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	gate := assertions.NewGate(o.bugID)
	if o.enabled != nil {
		gate = gate.WithEnabled(*o.enabled)
	}
	return gate
}
