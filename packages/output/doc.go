// Package output provides formatters for displaying check results.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON output
//   - JUnit: JUnit XML format for CI integration
//   - TAP: Test Anything Protocol format
//
// Each formatter implements FormatHeader, FormatResult and FormatError and
// can optionally implement Flush for formats that accumulate results.
package output
