// ============================================================================
// PlanForge - Production Planning Optimization
// ============================================================================
//
// Package:     report
// Description: Console rendering of plan setup, solve results, and
//              sensitivity comparisons
// License:     MIT
// ============================================================================

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/planforge/planforge/internal/analysis"
	"github.com/planforge/planforge/internal/model"
	"github.com/planforge/planforge/internal/solver"
)

// RenderSetup prints the problem definition: every product with its
// coefficients and bounds, followed by the resource capacities.
func RenderSetup(w io.Writer, plan model.Plan) {
	fmt.Fprintln(w, titleStyle.Render(plan.Name))
	fmt.Fprintln(w, mutedStyle.Render(strings.Repeat("=", len(plan.Name))))

	fmt.Fprintln(w, sectionStyle.Render("Products"))
	for _, prod := range plan.Products {
		fmt.Fprintf(w, "  %s\n", headerStyle.Render(prod.Name))
		fmt.Fprintf(w, "    Profit per unit:  $%.2f\n", prod.ProfitPerUnit)
		fmt.Fprintf(w, "    Labor hours:      %.2f\n", prod.LaborHours)
		fmt.Fprintf(w, "    Machine hours:    %.2f\n", prod.MachineHours)
		fmt.Fprintf(w, "    Raw material:     %.2f kg\n", prod.RawMaterial)
		if prod.DemandCapped() {
			fmt.Fprintf(w, "    Production range: %.0f - %.0f units\n", prod.MinProduction, prod.MaxDemand)
		} else {
			fmt.Fprintf(w, "    Production range: %.0f units or more\n", prod.MinProduction)
		}
	}

	fmt.Fprintln(w, sectionStyle.Render("Resource Capacities"))
	for i, cap := range plan.Resources.Capacities() {
		fmt.Fprintf(w, "  %-15s %10.1f\n", model.ResourceNames[i], cap)
	}
}

// RenderStatus prints the solve outcome line
func RenderStatus(w io.Writer, sol solver.Solution) {
	if sol.IsOptimal() {
		fmt.Fprintln(w, okStyle.Render("Optimal solution found"))
		return
	}
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("No optimal solution: %s", sol.Status)))
	if sol.Err != nil {
		fmt.Fprintln(w, mutedStyle.Render("  "+sol.Err.Error()))
	}
}

// RenderResults prints the full result block: production quantities with
// profit contributions, resource utilization, and constraint analysis.
func RenderResults(w io.Writer, plan model.Plan, sol solver.Solution) {
	RenderStatus(w, sol)
	if !sol.IsOptimal() {
		return
	}

	fmt.Fprintln(w, sectionStyle.Render("Production Quantities"))
	contribs := analysis.ProfitContributions(plan, sol)
	for i, prod := range plan.Products {
		fmt.Fprintf(w, "  %-15s %8.2f units  ($%s profit)\n",
			prod.Name, sol.Quantities[i], FormatAmount(contribs[i]))
	}
	fmt.Fprintf(w, "  %s\n", totalStyle.Render(fmt.Sprintf("%-15s %19s", "Total Profit", "$"+FormatAmount(sol.Objective))))

	fmt.Fprintln(w, sectionStyle.Render("Resource Utilization"))
	for _, u := range analysis.Usage(plan, sol) {
		bar := utilizationBar(u.Utilization)
		fmt.Fprintf(w, "  %-15s %8.1f / %8.1f  %s %5.1f%%\n",
			u.Name, u.Used, u.Available, bar, u.Utilization)
	}

	fmt.Fprintln(w, sectionStyle.Render("Constraint Analysis"))
	for _, c := range analysis.Constraints(plan, sol) {
		marker := "  "
		if c.Binding {
			marker = warnStyle.Render("* ")
		}
		fmt.Fprintf(w, "  %s%-28s %10.2f  (bound %10.2f)\n", marker, c.Name, c.LHS, c.Bound)
	}
	fmt.Fprintln(w, mutedStyle.Render("  * binding constraint"))
}

// RenderSensitivity prints the scenario comparison table
func RenderSensitivity(w io.Writer, results []analysis.ScenarioResult) {
	fmt.Fprintln(w, sectionStyle.Render("Sensitivity Analysis"))

	if len(results) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  no scenarios"))
		return
	}

	base := results[0].Solution.Objective
	for _, res := range results {
		if !res.Solution.IsOptimal() {
			fmt.Fprintf(w, "  %-22s %s\n", res.Scenario.Name,
				errorStyle.Render(res.Solution.Status.String()))
			continue
		}

		delta := res.Solution.Objective - base
		deltaText := fmt.Sprintf("%+.2f", delta)
		switch {
		case delta > 0:
			deltaText = okStyle.Render(deltaText)
		case delta < 0:
			deltaText = errorStyle.Render(deltaText)
		default:
			deltaText = mutedStyle.Render(deltaText)
		}

		fmt.Fprintf(w, "  %-22s $%12s  %s\n",
			res.Scenario.Name, FormatAmount(res.Solution.Objective), deltaText)
	}
}

// FormatAmount formats a money amount with thousands separators, e.g.
// 9937.5 -> "9,937.50"
func FormatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// utilizationBar renders a ten-segment usage bar
func utilizationBar(percent float64) string {
	filled := int(percent / 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	switch {
	case percent >= 95:
		return errorStyle.Render(bar)
	case percent >= 75:
		return warnStyle.Render(bar)
	default:
		return okStyle.Render(bar)
	}
}
