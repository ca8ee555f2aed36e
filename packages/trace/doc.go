// Package trace defines the captured state of a UI transition.
//
// A trace holds three ordered sequences recorded during the transition:
//   - Window manager states (window hierarchy in z-order)
//   - Layer states (surface compositor layers and their visible regions)
//   - Focus events from the event log
//
// Traces are loaded from JSON or YAML documents and validated against an
// embedded JSON Schema before decoding.
package trace
