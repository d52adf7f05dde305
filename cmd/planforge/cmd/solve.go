package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planforge/planforge/internal/model"
	"github.com/planforge/planforge/internal/report"
	"github.com/planforge/planforge/internal/solver"
	"github.com/planforge/planforge/internal/store"
	"github.com/planforge/planforge/pkg/core/logging"
)

var (
	solveReportPath string
	solveRecord     bool
	solveDBPath     string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the plan and print the results",
	Long: `Solve builds the linear program from the plan, solves it, and prints
the optimal production quantities, resource utilization, and constraint
analysis.

With --report the full business report is additionally written to a text
file. With --record the run is stored in the local history database.

Examples:
  planforge solve
  planforge solve --plan configs/planforge.toml --report optimization_results.txt
  planforge solve --record`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		logger := newLogger(cfg, "solve")

		plan, err := resolvePlan(cfg)
		if err != nil {
			printError("loading plan", err)
			return err
		}
		logger.Debug("plan loaded", logging.Fields{"name": plan.Name, "products": len(plan.Products)})

		sol, err := solver.Solve(plan)
		if err != nil {
			printError("solving plan", err)
			return err
		}
		logger.Debug("solve finished", logging.Fields{"status": sol.Status.String()})

		report.RenderResults(os.Stdout, plan, sol)

		if solveReportPath != "" {
			if err := report.WriteBusinessReport(solveReportPath, plan, sol); err != nil {
				printError("writing report", err)
				return err
			}
			fmt.Printf("\nBusiness report written to %s\n", solveReportPath)
		}

		if solveRecord {
			dbPath := solveDBPath
			if dbPath == "" {
				dbPath = cfg.History.Path
			}
			run, err := recordRun(cmd.Context(), dbPath, plan, sol)
			if err != nil {
				printError("recording run", err)
				return err
			}
			fmt.Printf("Run recorded as %s\n", run.ID)
		}

		if !sol.IsOptimal() {
			return fmt.Errorf("no optimal solution: %s", sol.Status)
		}
		return nil
	},
}

func recordRun(ctx context.Context, dbPath string, plan model.Plan, sol solver.Solution) (store.Run, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return store.Run{}, err
	}
	defer st.Close()

	products := make([]string, len(plan.Products))
	for i, prod := range plan.Products {
		products[i] = prod.Name
	}

	return st.Record(ctx, store.Run{
		PlanName:   plan.Name,
		Status:     sol.Status.String(),
		Objective:  sol.Objective,
		Quantities: sol.Quantities,
		Products:   products,
	})
}

func init() {
	solveCmd.Flags().StringVar(&solveReportPath, "report", "", "Write the business report to this file")
	solveCmd.Flags().BoolVar(&solveRecord, "record", false, "Record the run in the history database")
	solveCmd.Flags().StringVar(&solveDBPath, "db", "", "History database path (default from config)")
	rootCmd.AddCommand(solveCmd)
}
