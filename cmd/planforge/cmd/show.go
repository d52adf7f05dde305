package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/planforge/planforge/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the problem setup",
	Long: `Show prints the production plan as it will be handed to the solver:
every product with its profit and resource coefficients, the production
bounds, and the resource capacities.

Examples:
  planforge show
  planforge show --plan configs/planforge.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := resolvePlan(loadConfig())
		if err != nil {
			printError("loading plan", err)
			return err
		}

		report.RenderSetup(os.Stdout, plan)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
