package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/planforge/planforge/internal/analysis"
	"github.com/planforge/planforge/internal/report"
)

var (
	sensitivityMultiplier float64
	sensitivityCapacity   float64
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Re-solve under perturbed coefficients",
	Long: `Sensitivity re-solves the plan under a set of what-if scenarios and
compares the objective values against the base case.

Profit scenarios raise each product's profit per unit by --multiplier in
turn. With --capacity the resource capacities are additionally scaled up
and down by the given fraction.

Examples:
  planforge sensitivity
  planforge sensitivity --multiplier 2.0
  planforge sensitivity --capacity 0.1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := resolvePlan(loadConfig())
		if err != nil {
			printError("loading plan", err)
			return err
		}

		scenarios := analysis.ProfitScenarios(plan, sensitivityMultiplier)
		if sensitivityCapacity > 0 {
			scenarios = append(scenarios, analysis.CapacityScenarios(plan, sensitivityCapacity)[1:]...)
		}

		results, err := analysis.Sensitivity(plan, scenarios)
		if err != nil {
			printError("running scenarios", err)
			return err
		}

		report.RenderSensitivity(os.Stdout, results)
		return nil
	},
}

func init() {
	sensitivityCmd.Flags().Float64Var(&sensitivityMultiplier, "multiplier", 1.5, "Profit multiplier for the per-product scenarios")
	sensitivityCmd.Flags().Float64Var(&sensitivityCapacity, "capacity", 0, "Also scale capacities up/down by this fraction (0 disables)")
	rootCmd.AddCommand(sensitivityCmd)
}
