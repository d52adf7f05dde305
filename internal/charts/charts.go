// ============================================================================
// PlanForge - Production Planning Optimization
// ============================================================================
//
// Package:     charts
// Description: Static PNG chart rendering for solved plans
// License:     MIT
// ============================================================================

package charts

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/planforge/planforge/internal/analysis"
	"github.com/planforge/planforge/internal/model"
	"github.com/planforge/planforge/internal/solver"
)

var (
	colorQuantity  = color.RGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF}
	colorProfit    = color.RGBA{R: 0xFF, G: 0xB3, B: 0x66, A: 0xFF}
	colorUsed      = color.RGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF}
	colorAvailable = color.RGBA{R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF}
)

// FileNames lists the chart files Render produces, in render order
var FileNames = []string{"quantities.png", "profit.png", "utilization.png", "resources.png"}

// Render writes the chart set for an optimal solution into dir:
// production quantities, profit contribution per product, resource
// utilization percentages, and used-vs-available capacity.
func Render(dir string, plan model.Plan, sol solver.Solution) error {
	if !sol.IsOptimal() {
		return fmt.Errorf("no charts for %s solution", sol.Status)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}

	productNames := make([]string, len(plan.Products))
	for i, prod := range plan.Products {
		productNames[i] = prod.Name
	}
	usage := analysis.Usage(plan, sol)

	if err := renderBars(
		filepath.Join(dir, "quantities.png"),
		"Optimal Production Quantities", "Units",
		productNames, sol.Quantities, colorQuantity,
	); err != nil {
		return err
	}

	if err := renderBars(
		filepath.Join(dir, "profit.png"),
		"Profit Contribution by Product", "Profit ($)",
		productNames, analysis.ProfitContributions(plan, sol), colorProfit,
	); err != nil {
		return err
	}

	utilization := make([]float64, len(usage))
	resourceNames := make([]string, len(usage))
	for i, u := range usage {
		utilization[i] = u.Utilization
		resourceNames[i] = u.Name
	}
	if err := renderBars(
		filepath.Join(dir, "utilization.png"),
		"Resource Utilization", "Utilization (%)",
		resourceNames, utilization, colorUsed,
	); err != nil {
		return err
	}

	return renderUsedVsAvailable(filepath.Join(dir, "resources.png"), usage)
}

func renderBars(path, title, yLabel string, names []string, values []float64, fill color.Color) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(40))
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", filepath.Base(path), err)
	}
	bars.LineStyle.Width = 0
	bars.Color = fill

	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", filepath.Base(path), err)
	}
	return nil
}

func renderUsedVsAvailable(path string, usage []analysis.ResourceUsage) error {
	p := plot.New()
	p.Title.Text = "Resource Usage vs Availability"
	p.Y.Label.Text = "Hours / Kg"

	used := make(plotter.Values, len(usage))
	available := make(plotter.Values, len(usage))
	names := make([]string, len(usage))
	for i, u := range usage {
		used[i] = u.Used
		available[i] = u.Available
		names[i] = u.Name
	}

	w := vg.Points(20)

	usedBars, err := plotter.NewBarChart(used, w)
	if err != nil {
		return fmt.Errorf("failed to build resources chart: %w", err)
	}
	usedBars.LineStyle.Width = 0
	usedBars.Color = colorUsed
	usedBars.Offset = -w / 2

	availableBars, err := plotter.NewBarChart(available, w)
	if err != nil {
		return fmt.Errorf("failed to build resources chart: %w", err)
	}
	availableBars.LineStyle.Width = 0
	availableBars.Color = colorAvailable
	availableBars.Offset = w / 2

	p.Add(usedBars, availableBars)
	p.Legend.Add("Used", usedBars)
	p.Legend.Add("Available", availableBars)
	p.Legend.Top = true
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save resources chart: %w", err)
	}
	return nil
}
