package assertions

import (
	"errors"
	"fmt"
)

// ErrEmptyTrace is returned by start and end checks when no state was captured.
var ErrEmptyTrace = errors.New("trace has no states")

// StateAssertion checks a single captured state.
type StateAssertion[S any] func(state S) error

// TraceAssertion checks a whole sequence of captured states.
type TraceAssertion[S any] func(states []S) error

// Scope selects which states a check sees.
type Scope string

const (
	ScopeAll   Scope = "all"
	ScopeStart Scope = "start"
	ScopeEnd   Scope = "end"
)

// Check is one registered assertion.
type Check[S any] struct {
	Name  string
	Kind  string
	Scope Scope
	Gate  Gate
	run   TraceAssertion[S]
}

// Run evaluates the check against states, ignoring its gate.
func (c *Check[S]) Run(states []S) error {
	return c.run(states)
}

// Builder collects checks for one kind of state.
type Builder[S any] struct {
	kind   string
	checks []*Check[S]
}

// NewBuilder creates a builder. kind labels results, e.g. "layers".
func NewBuilder[S any](kind string) *Builder[S] {
	return &Builder[S]{kind: kind}
}

func (b *Builder[S]) Kind() string { return b.kind }

// Checks returns the registered checks in registration order.
func (b *Builder[S]) Checks() []*Check[S] {
	return b.checks
}

// All registers a check over every captured state.
func (b *Builder[S]) All(name string, gate Gate, assertion TraceAssertion[S]) {
	b.add(name, ScopeAll, gate, assertion)
}

// Start registers a check over the first captured state.
func (b *Builder[S]) Start(name string, gate Gate, assertion StateAssertion[S]) {
	b.add(name, ScopeStart, gate, func(states []S) error {
		if len(states) == 0 {
			return ErrEmptyTrace
		}
		return assertion(states[0])
	})
}

// End registers a check over the last captured state.
func (b *Builder[S]) End(name string, gate Gate, assertion StateAssertion[S]) {
	b.add(name, ScopeEnd, gate, func(states []S) error {
		if len(states) == 0 {
			return ErrEmptyTrace
		}
		return assertion(states[len(states)-1])
	})
}

func (b *Builder[S]) add(name string, scope Scope, gate Gate, run TraceAssertion[S]) {
	b.checks = append(b.checks, &Check[S]{
		Name:  name,
		Kind:  b.Kind(),
		Scope: scope,
		Gate:  gate,
		run:   run,
	})
}

// Each returns a trace assertion requiring a to hold on every state.
func Each[S any](a StateAssertion[S]) TraceAssertion[S] {
	return func(states []S) error {
		for i, s := range states {
			if err := a(s); err != nil {
				return fmt.Errorf("state %d: %w", i, err)
			}
		}
		return nil
	}
}

// Chain returns a trace assertion made of ordered stages. States are consumed
// in order; each must satisfy the current stage or the next one, which then
// becomes current. A stage must hold on at least one state before the trace
// may move past it. Stages are never revisited, and the trace may end before
// the last stage is reached.
func Chain[S any](stages ...StateAssertion[S]) TraceAssertion[S] {
	return func(states []S) error {
		if len(stages) == 0 {
			return nil
		}

		current := 0
		passed := false
		for i, s := range states {
			err := stages[current](s)
			if err == nil {
				passed = true
				continue
			}
			if !passed || current+1 >= len(stages) {
				return fmt.Errorf("state %d, stage %d: %w", i, current, err)
			}
			current++
			if next := stages[current](s); next != nil {
				return fmt.Errorf("state %d, stage %d: %w", i, current, next)
			}
		}
		return nil
	}
}

// Stages is a fluent form of Chain: First(a).Then(b).Assert().
type Stages[S any] []StateAssertion[S]

// First starts a chain of stages.
func First[S any](a StateAssertion[S]) Stages[S] {
	return Stages[S]{a}
}

// Then appends the stage the trace may move on to.
func (s Stages[S]) Then(a StateAssertion[S]) Stages[S] {
	return append(s[:len(s):len(s)], a)
}

// Assert returns the chained trace assertion.
func (s Stages[S]) Assert() TraceAssertion[S] {
	return Chain(s...)
}
