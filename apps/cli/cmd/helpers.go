package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/abdul-hamid-achik/flicker/packages/core/scenario"
	"github.com/spf13/cobra"
)

var helpersCmd = &cobra.Command{
	Use:   "helpers",
	Short: "List the helpers scenarios can name",
	Long: `List every helper a scenario's assertions can name.

Examples:
  flicker helpers`,
	Args: cobra.NoArgs,
	RunE: helpersCommand,
}

func helpersCommand(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, h := range scenario.Helpers() {
		fmt.Fprintf(w, "%s\t%s\n", h.Name, h.Description)
	}
	return w.Flush()
}
