package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/planforge/planforge/internal/analysis"
	"github.com/planforge/planforge/internal/model"
	"github.com/planforge/planforge/internal/solver"
)

// BusinessReport builds the plain-text business report for an optimal
// solution: executive summary, production recommendations, resource
// utilization, key insights, and implementation recommendations.
func BusinessReport(plan model.Plan, sol solver.Solution) string {
	var b strings.Builder

	b.WriteString("BUSINESS OPTIMIZATION REPORT\n")
	b.WriteString("============================\n\n")

	b.WriteString("Executive Summary:\n")
	b.WriteString("------------------\n")
	fmt.Fprintf(&b, "The production planning optimization has identified an optimal solution that\n")
	fmt.Fprintf(&b, "maximizes profit while respecting all operational constraints. The recommended\n")
	fmt.Fprintf(&b, "production plan will generate a total profit of $%s.\n\n", FormatAmount(sol.Objective))

	b.WriteString("Production Recommendations:\n")
	b.WriteString("---------------------------\n")
	contribs := analysis.ProfitContributions(plan, sol)
	for i, prod := range plan.Products {
		fmt.Fprintf(&b, "- %s: %.2f units ($%s contribution)\n",
			prod.Name, sol.Quantities[i], FormatAmount(contribs[i]))
	}
	b.WriteString("\n")

	b.WriteString("Resource Utilization:\n")
	b.WriteString("---------------------\n")
	usage := analysis.Usage(plan, sol)
	for _, u := range usage {
		fmt.Fprintf(&b, "- %s: %.1f%% utilized (%.1f/%.1f)\n",
			u.Name, u.Utilization, u.Used, u.Available)
	}
	b.WriteString("\n")

	most := analysis.MostConstrained(usage)
	b.WriteString("Key Insights:\n")
	b.WriteString("-------------\n")
	fmt.Fprintf(&b, "1. The optimal solution utilizes %.1f%% of the most constrained resource (%s).\n",
		most.Utilization, most.Name)
	b.WriteString("2. Total production capacity is efficiently allocated across all products.\n")
	b.WriteString("3. All minimum production requirements are met while maximizing profitability.\n\n")

	b.WriteString("Implementation Recommendations:\n")
	b.WriteString("-------------------------------\n")
	b.WriteString("1. Implement the recommended production quantities.\n")
	b.WriteString("2. Monitor resource utilization against the plan.\n")
	fmt.Fprintf(&b, "3. Consider capacity expansion for %s.\n", most.Name)
	b.WriteString("4. Review and update the optimization model as input data changes.\n")

	return b.String()
}

// WriteBusinessReport writes the report to path, creating parent
// directories as needed.
func WriteBusinessReport(path string, plan model.Plan, sol solver.Solution) error {
	if !sol.IsOptimal() {
		return fmt.Errorf("no report for %s solution", sol.Status)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(BusinessReport(plan, sol)), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
