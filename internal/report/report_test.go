package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/planforge/planforge/internal/analysis"
	"github.com/planforge/planforge/internal/model"
	"github.com/planforge/planforge/internal/solver"
)

func solveDefault(t *testing.T) (model.Plan, solver.Solution) {
	t.Helper()
	plan := model.Default()
	sol, err := solver.Solve(plan)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	return plan, sol
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"small", 5, "5.00"},
		{"thousands", 9937.5, "9,937.50"},
		{"millions", 1234567.891, "1,234,567.89"},
		{"exact thousand", 1000, "1,000.00"},
		{"negative", -1234.5, "-1,234.50"},
		{"zero", 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.input); got != tt.expected {
				t.Errorf("FormatAmount(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRenderSetup(t *testing.T) {
	var buf bytes.Buffer
	RenderSetup(&buf, model.Default())

	out := buf.String()
	for _, want := range []string{"Product A", "Product B", "Product C", "Labor Hours", "$50.00", "20 - 100 units"} {
		if !strings.Contains(out, want) {
			t.Errorf("setup output missing %q", want)
		}
	}
}

func TestRenderSetup_UncappedDemand(t *testing.T) {
	plan := model.Default()
	plan.Products[0].MaxDemand = 0

	var buf bytes.Buffer
	RenderSetup(&buf, plan)

	if !strings.Contains(buf.String(), "20 units or more") {
		t.Errorf("setup output missing uncapped range: %q", buf.String())
	}
}

func TestRenderResults_Optimal(t *testing.T) {
	plan, sol := solveDefault(t)

	var buf bytes.Buffer
	RenderResults(&buf, plan, sol)

	out := buf.String()
	for _, want := range []string{
		"Optimal solution found",
		"Production Quantities",
		"Resource Utilization",
		"Constraint Analysis",
		"Total Profit",
		"9,937.50",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("results output missing %q", want)
		}
	}
}

func TestRenderResults_Infeasible(t *testing.T) {
	plan := model.Default()
	plan.Products[0].MinProduction = 500
	plan.Products[0].MaxDemand = 600

	sol, err := solver.Solve(plan)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	var buf bytes.Buffer
	RenderResults(&buf, plan, sol)

	out := buf.String()
	if !strings.Contains(out, "Infeasible") {
		t.Errorf("output missing status: %q", out)
	}
	if strings.Contains(out, "Production Quantities") {
		t.Error("result tables rendered for infeasible solution")
	}
}

func TestRenderSensitivity(t *testing.T) {
	plan, _ := solveDefault(t)
	results, err := analysis.Sensitivity(plan, analysis.ProfitScenarios(plan, 1.5))
	if err != nil {
		t.Fatalf("Sensitivity() error = %v", err)
	}

	var buf bytes.Buffer
	RenderSensitivity(&buf, results)

	out := buf.String()
	for _, want := range []string{"Base Case", "High Profit Product A", "High Profit Product C"} {
		if !strings.Contains(out, want) {
			t.Errorf("sensitivity output missing %q", want)
		}
	}
}

func TestBusinessReport(t *testing.T) {
	plan, sol := solveDefault(t)

	text := BusinessReport(plan, sol)
	for _, want := range []string{
		"BUSINESS OPTIMIZATION REPORT",
		"Executive Summary:",
		"Production Recommendations:",
		"Resource Utilization:",
		"Key Insights:",
		"Implementation Recommendations:",
		"$9,937.50",
		"Labor Hours",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteBusinessReport(t *testing.T) {
	plan, sol := solveDefault(t)

	path := filepath.Join(t.TempDir(), "out", "optimization_results.txt")
	if err := WriteBusinessReport(path, plan, sol); err != nil {
		t.Fatalf("WriteBusinessReport() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	if !strings.Contains(string(data), "BUSINESS OPTIMIZATION REPORT") {
		t.Error("report file missing header")
	}
}

func TestWriteBusinessReport_NonOptimal(t *testing.T) {
	plan := model.Default()
	sol := solver.Solution{Status: solver.StatusInfeasible}

	err := WriteBusinessReport(filepath.Join(t.TempDir(), "r.txt"), plan, sol)
	if err == nil || !strings.Contains(err.Error(), "Infeasible") {
		t.Errorf("err = %v, want infeasible report error", err)
	}
}
