// Package runner executes flicker scenarios against captured traces.
//
// It provides functionality for:
//   - Running scenario files against a trace
//   - Setup and teardown commands around trace loading
//   - Filtering checks by name pattern
//   - Evaluating bug-gated checks on request
//   - Stopping at the first failure
package runner
