package cmd

import (
	"fmt"
	"os"

	"github.com/abdul-hamid-achik/flicker/packages/core/scenario"
	"github.com/abdul-hamid-achik/flicker/packages/trace"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory>...",
	Short: "Validate scenario and trace files",
	Long: `Validate .flicker.yaml scenarios and .json/.yaml traces without running checks.

Scenarios are checked for unknown helpers and bad rotations; traces are
checked against the trace schema.

Examples:
  flicker validate rotate.flicker.yaml
  flicker validate captures/rotate.json
  flicker validate ./scenarios/`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func isValidatable(path string) bool {
	return scenario.IsScenarioFile(path) || trace.IsTraceFile(path)
}

func validateCommand(cmd *cobra.Command, args []string) error {
	files, err := collect(args, isValidatable)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no scenario or trace files found")
	}

	hasErrors := false
	for _, file := range files {
		if err := validateFile(file); err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "Error in %s: %v\n", file, err)
			hasErrors = true
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", file)
		}
	}

	if hasErrors {
		fmt.Fprintf(cmd.OutOrStderr(), "validation failed\n")
		os.Exit(ExitParseError)
	}

	return nil
}

func validateFile(path string) error {
	// Scenario files also end in .yaml, so check them first.
	if scenario.IsScenarioFile(path) {
		_, err := scenario.ParseFile(path)
		return err
	}
	_, err := trace.Load(path)
	return err
}
