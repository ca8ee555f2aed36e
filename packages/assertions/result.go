package assertions

import "time"

// Result is the outcome of one check.
type Result struct {
	Name       string
	Kind       string
	Scope      Scope
	BugID      int
	Enabled    bool
	Passed     bool
	Skipped    bool
	SkipReason string
	Message    string
	Duration   time.Duration

	// WouldPass is set for disabled checks evaluated with RunDisabled.
	WouldPass *bool
}

// PossiblyFixed reports whether a disabled, bug-gated check passed anyway.
func (r *Result) PossiblyFixed() bool {
	return r.Skipped && r.BugID != 0 && r.WouldPass != nil && *r.WouldPass
}

// EvaluateOption configures evaluation.
type EvaluateOption func(*evaluation)

type evaluation struct {
	runDisabled bool
	bail        bool
	filter      func(name string) bool
	failed      bool
}

// WithRunDisabled evaluates disabled checks too. Their results stay skipped
// but record whether they would have passed.
func WithRunDisabled(run bool) EvaluateOption {
	return func(e *evaluation) {
		e.runDisabled = run
	}
}

// WithBail skips every check after the first failure.
func WithBail(bail bool) EvaluateOption {
	return func(e *evaluation) {
		e.bail = bail
	}
}

// WithFilter skips checks whose name is rejected by keep.
func WithFilter(keep func(name string) bool) EvaluateOption {
	return func(e *evaluation) {
		e.filter = keep
	}
}

func newEvaluation(opts []EvaluateOption) *evaluation {
	e := &evaluation{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs every registered check against states.
func (b *Builder[S]) Evaluate(states []S, opts ...EvaluateOption) []*Result {
	return evaluateChecks(b.checks, states, newEvaluation(opts))
}

func evaluateChecks[S any](checks []*Check[S], states []S, e *evaluation) []*Result {
	results := make([]*Result, 0, len(checks))
	for _, c := range checks {
		results = append(results, e.evaluate(c.Name, c.Kind, c.Scope, c.Gate, func() error {
			return c.run(states)
		}))
	}
	return results
}

func (e *evaluation) evaluate(name, kind string, scope Scope, gate Gate, run func() error) *Result {
	result := &Result{
		Name:    name,
		Kind:    kind,
		Scope:   scope,
		BugID:   gate.BugID,
		Enabled: gate.Enabled,
	}

	switch {
	case e.filter != nil && !e.filter(name):
		result.Skipped = true
		result.SkipReason = "filtered out"
		return result
	case e.bail && e.failed:
		result.Skipped = true
		result.SkipReason = "skipped after failure"
		return result
	}

	start := time.Now()
	if !gate.Enabled {
		result.Skipped = true
		result.SkipReason = gate.SkipReason()
		if e.runDisabled {
			err := run()
			passed := err == nil
			result.WouldPass = &passed
			if err != nil {
				result.Message = err.Error()
			}
		}
		result.Duration = time.Since(start)
		return result
	}

	if err := run(); err != nil {
		result.Message = err.Error()
		e.failed = true
	} else {
		result.Passed = true
	}
	result.Duration = time.Since(start)
	return result
}
