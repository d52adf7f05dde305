// ============================================================================
// PlanForge - Production Planning Optimization
// ============================================================================
//
// Package:     analysis
// Description: Derived figures over a solved plan: resource utilization,
//              constraint values, and profit contributions
// License:     MIT
// ============================================================================

package analysis

import (
	"fmt"
	"math"

	"github.com/planforge/planforge/internal/model"
	"github.com/planforge/planforge/internal/solver"
)

// bindingTol decides when a constraint counts as binding
const bindingTol = 1e-6

// ResourceUsage describes how much of one shared resource the plan consumes
type ResourceUsage struct {
	Name        string
	Used        float64
	Available   float64
	Utilization float64 // percent of available capacity
}

// ConstraintValue is the evaluated left-hand side of one model constraint
type ConstraintValue struct {
	Name    string
	LHS     float64
	Bound   float64
	Binding bool
}

// Usage computes per-resource consumption for an optimal solution
func Usage(plan model.Plan, sol solver.Solution) []ResourceUsage {
	caps := plan.Resources.Capacities()
	usage := make([]ResourceUsage, len(caps))

	for r := range caps {
		used := 0.0
		for i, prod := range plan.Products {
			used += sol.Quantities[i] * prod.Consumption()[r]
		}
		usage[r] = ResourceUsage{
			Name:        model.ResourceNames[r],
			Used:        used,
			Available:   caps[r],
			Utilization: used / caps[r] * 100,
		}
	}

	return usage
}

// MostConstrained returns the resource with the highest utilization
func MostConstrained(usage []ResourceUsage) ResourceUsage {
	best := usage[0]
	for _, u := range usage[1:] {
		if u.Utilization > best.Utilization {
			best = u
		}
	}
	return best
}

// Constraints evaluates every model constraint at the solution: resource
// limits, then demand caps, then production minimums.
func Constraints(plan model.Plan, sol solver.Solution) []ConstraintValue {
	var out []ConstraintValue

	for _, u := range Usage(plan, sol) {
		out = append(out, ConstraintValue{
			Name:    u.Name + " Limit",
			LHS:     u.Used,
			Bound:   u.Available,
			Binding: math.Abs(u.Used-u.Available) <= bindingTol,
		})
	}

	for i, prod := range plan.Products {
		if !prod.DemandCapped() {
			continue
		}
		out = append(out, ConstraintValue{
			Name:    fmt.Sprintf("Max Demand %s", prod.Name),
			LHS:     sol.Quantities[i],
			Bound:   prod.MaxDemand,
			Binding: math.Abs(sol.Quantities[i]-prod.MaxDemand) <= bindingTol,
		})
	}

	for i, prod := range plan.Products {
		out = append(out, ConstraintValue{
			Name:    fmt.Sprintf("Min Production %s", prod.Name),
			LHS:     sol.Quantities[i],
			Bound:   prod.MinProduction,
			Binding: math.Abs(sol.Quantities[i]-prod.MinProduction) <= bindingTol,
		})
	}

	return out
}

// ProfitContributions returns each product's share of the objective
func ProfitContributions(plan model.Plan, sol solver.Solution) []float64 {
	out := make([]float64, len(plan.Products))
	for i, prod := range plan.Products {
		out[i] = sol.Quantities[i] * prod.ProfitPerUnit
	}
	return out
}
