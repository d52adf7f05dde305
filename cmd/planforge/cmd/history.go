package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/planforge/planforge/internal/report"
	"github.com/planforge/planforge/internal/solver"
	"github.com/planforge/planforge/internal/store"
)

var (
	historyDBPath string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solve runs",
	Long: `History lists the runs recorded with "solve --record", newest first.

Examples:
  planforge history
  planforge history --limit 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		dbPath := historyDBPath
		if dbPath == "" {
			dbPath = cfg.History.Path
		}

		st, err := store.Open(dbPath)
		if err != nil {
			printError("opening history database", err)
			return err
		}
		defer st.Close()

		runs, err := st.List(cmd.Context(), historyLimit)
		if err != nil {
			printError("listing runs", err)
			return err
		}

		if len(runs) == 0 {
			fmt.Println("No recorded runs.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CREATED\tPLAN\tSTATUS\tOBJECTIVE\tID")
		for _, run := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				run.CreatedAt.Local().Format("2006-01-02 15:04"),
				run.PlanName, run.Status, objectiveColumn(run), run.ID)
		}
		return w.Flush()
	},
}

// objectiveColumn formats a run's objective; non-optimal runs have no
// meaningful objective value
func objectiveColumn(run store.Run) string {
	if run.Status != solver.StatusOptimal.String() {
		return "-"
	}
	return "$" + report.FormatAmount(run.Objective)
}

func init() {
	historyCmd.Flags().StringVar(&historyDBPath, "db", "", "History database path (default from config)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}
