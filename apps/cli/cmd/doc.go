// Package cmd implements the flicker CLI commands using Cobra.
//
// Available commands:
//   - run: Evaluate scenario checks against traces
//   - validate: Check scenario and trace files without running checks
//   - helpers: List the helpers scenarios can name
//   - init: Create a config file and an example scenario
//   - version: Show flicker version information
//
// The CLI supports flags for filtering, output formatting, running
// bug-gated checks, and watch mode for development workflows.
package cmd
