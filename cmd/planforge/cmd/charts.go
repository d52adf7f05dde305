package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/planforge/planforge/internal/charts"
	"github.com/planforge/planforge/internal/solver"
	"github.com/planforge/planforge/pkg/core/logging"
)

var chartsOutDir string

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render the chart set as PNG files",
	Long: `Charts solves the plan and renders the result charts: production
quantities, profit contributions, resource utilization, and used versus
available resources.

Examples:
  planforge charts
  planforge charts --out ./charts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		logger := newLogger(cfg, "charts")

		plan, err := resolvePlan(cfg)
		if err != nil {
			printError("loading plan", err)
			return err
		}

		sol, err := solver.Solve(plan)
		if err != nil {
			printError("solving plan", err)
			return err
		}

		outDir := chartsOutDir
		if outDir == "" {
			outDir = cfg.Charts.OutputDir
		}

		if err := charts.Render(outDir, plan, sol); err != nil {
			printError("rendering charts", err)
			return err
		}

		for _, name := range charts.FileNames {
			logger.Debug("chart written", logging.Fields{"file": name})
			fmt.Println(filepath.Join(outDir, name))
		}
		return nil
	},
}

func init() {
	chartsCmd.Flags().StringVar(&chartsOutDir, "out", "", "Output directory for the PNG files (default from config)")
	rootCmd.AddCommand(chartsCmd)
}
