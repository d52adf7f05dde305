package cmd

import (
	"github.com/spf13/cobra"

	"github.com/planforge/planforge/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse results interactively",
	Long: `Tui solves the plan and opens an interactive terminal browser with
tabs for the production plan, resource utilization, and sensitivity
scenarios.

Keys:
  tab / shift+tab  - switch view
  up / down        - scroll
  q                - quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := resolvePlan(loadConfig())
		if err != nil {
			printError("loading plan", err)
			return err
		}

		if err := tui.Run(plan); err != nil {
			printError("running browser", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
