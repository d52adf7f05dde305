package analysis

import (
	"fmt"

	"github.com/planforge/planforge/internal/model"
	"github.com/planforge/planforge/internal/solver"
)

// Scenario is one perturbation of the base plan for sensitivity analysis
type Scenario struct {
	Name string

	// ProfitMultipliers scales profit per unit by product name. Products
	// not listed keep their base profit.
	ProfitMultipliers map[string]float64

	// CapacityScale scales every resource capacity. Zero means unchanged.
	CapacityScale float64
}

// ScenarioResult pairs a scenario with its re-solved outcome
type ScenarioResult struct {
	Scenario Scenario
	Solution solver.Solution
}

// Apply returns a copy of the plan with the scenario's perturbations
func (s Scenario) Apply(plan model.Plan) model.Plan {
	out := plan
	out.Products = make([]model.Product, len(plan.Products))
	copy(out.Products, plan.Products)

	for i := range out.Products {
		if mult, ok := s.ProfitMultipliers[out.Products[i].Name]; ok {
			out.Products[i].ProfitPerUnit *= mult
		}
	}

	if s.CapacityScale != 0 {
		out.Resources.LaborHours *= s.CapacityScale
		out.Resources.MachineHours *= s.CapacityScale
		out.Resources.RawMaterial *= s.CapacityScale
	}

	return out
}

// ProfitScenarios builds the standard battery: the base case plus one
// scenario per product with its profit scaled by multiplier.
func ProfitScenarios(plan model.Plan, multiplier float64) []Scenario {
	scenarios := []Scenario{{Name: "Base Case"}}
	for _, prod := range plan.Products {
		scenarios = append(scenarios, Scenario{
			Name:              fmt.Sprintf("High Profit %s", prod.Name),
			ProfitMultipliers: map[string]float64{prod.Name: multiplier},
		})
	}
	return scenarios
}

// CapacityScenarios builds scenarios scaling all capacities down and up by
// the given fraction (e.g. 0.1 for ±10%).
func CapacityScenarios(plan model.Plan, fraction float64) []Scenario {
	return []Scenario{
		{Name: "Base Case"},
		{Name: fmt.Sprintf("Capacity -%.0f%%", fraction*100), CapacityScale: 1 - fraction},
		{Name: fmt.Sprintf("Capacity +%.0f%%", fraction*100), CapacityScale: 1 + fraction},
	}
}

// Sensitivity re-solves the plan under each scenario. Scenarios that turn
// out infeasible or unbounded are kept in the results with their status;
// only hard solver failures abort the run.
func Sensitivity(plan model.Plan, scenarios []Scenario) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, 0, len(scenarios))

	for _, sc := range scenarios {
		sol, err := solver.Solve(sc.Apply(plan))
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		results = append(results, ScenarioResult{Scenario: sc, Solution: sol})
	}

	return results, nil
}
