package cmd

// Exit codes for flicker CLI
const (
	// ExitSuccess indicates all checks passed
	ExitSuccess = 0

	// ExitCheckFailure indicates one or more checks failed
	ExitCheckFailure = 1

	// ExitParseError indicates a scenario or trace could not be read
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
