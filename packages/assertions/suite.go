package assertions

import "github.com/abdul-hamid-achik/flicker/packages/trace"

// Suite groups the builders for the three kinds of captured state.
type Suite struct {
	Windows *WindowBuilder
	Layers  *LayerBuilder
	Events  *EventLogBuilder
}

// NewSuite creates a suite with empty builders.
func NewSuite() *Suite {
	return &Suite{
		Windows: NewWindowBuilder(),
		Layers:  NewLayerBuilder(),
		Events:  NewEventLogBuilder(),
	}
}

// Len returns the number of registered checks.
func (s *Suite) Len() int {
	return len(s.Windows.Checks()) + len(s.Layers.Checks()) + len(s.Events.Checks())
}

// Evaluate runs every check against t. Window checks come first, then layer
// checks, then event log checks, each in registration order.
func (s *Suite) Evaluate(t *trace.Trace, opts ...EvaluateOption) []*Result {
	e := newEvaluation(opts)
	results := make([]*Result, 0, s.Len())
	results = append(results, evaluateChecks(s.Windows.Checks(), t.Windows, e)...)
	results = append(results, evaluateChecks(s.Layers.Checks(), t.Layers, e)...)
	results = append(results, evaluateChecks(s.Events.Checks(), t.Events, e)...)
	return results
}
