// Package assertions provides the trace assertion engine for flicker tests.
//
// Checks are registered on a Builder for one kind of state (window manager,
// layers or event log) in one of three scopes:
//   - all: the assertion sees every captured state (Each, Chain)
//   - start: the assertion sees the first state
//   - end: the assertion sees the last state
//
// Every check carries a Gate. A check tied to a known bug is registered
// disabled by default so it documents the failure without breaking the run.
package assertions
