package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/flicker/packages/core/config"
	"github.com/abdul-hamid-achik/flicker/packages/core/scenario"
	"github.com/abdul-hamid-achik/flicker/packages/geometry"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new flicker project",
	Long: `Initialize a new flicker project in the current directory.

This creates:
  - .flicker.config.json  - Configuration file with display metrics
  - example.flicker.yaml  - Example rotation scenario

Examples:
  flicker init
  flicker init --force`,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
}

func exampleScenario() *scenario.Scenario {
	end := geometry.Rotation90
	bug := false
	return &scenario.Scenario{
		Name:          "example-rotation",
		Description:   "App rotates from portrait to landscape",
		Trace:         "example.json",
		BeginRotation: geometry.Rotation0,
		EndRotation:   &end,
		Assertions: []scenario.Entry{
			{Helper: "statusBarWindowIsAlwaysVisible"},
			{Helper: "navBarWindowIsAlwaysVisible"},
			{Helper: "noUncoveredRegions"},
			{Helper: "navBarLayerRotatesAndScales"},
			{Helper: "statusBarLayerRotatesScales"},
			{Helper: "statusBarLayerIsAlwaysVisible", BugID: 140855415, Enabled: &bug},
		},
	}
}

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configFile := filepath.Join(cwd, config.ConfigFilenames[0])
	exampleFile := filepath.Join(cwd, "example.flicker.yaml")

	if !forceInit {
		for _, f := range []string{configFile, exampleFile} {
			if _, err := os.Stat(f); err == nil {
				return fmt.Errorf("file already exists: %s (use --force to overwrite)", f)
			}
		}
	}

	if err := config.DefaultConfig().SaveConfig(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	exampleYAML, err := yaml.Marshal(exampleScenario())
	if err != nil {
		return fmt.Errorf("failed to encode example scenario: %w", err)
	}
	if err := os.WriteFile(exampleFile, exampleYAML, 0644); err != nil {
		return fmt.Errorf("failed to create example file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", exampleFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\nflicker project initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Capture a trace to example.json, then run 'flicker run example.flicker.yaml'.\n")

	return nil
}
