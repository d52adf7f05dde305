// ============================================================================
// PlanForge - Production Planning Optimization
// ============================================================================
//
// Package:     model
// Description: Production plan definition: products, resource capacities,
//              and validation
// License:     MIT
// ============================================================================

package model

import (
	"fmt"
)

// Product describes one product line in the plan. A MaxDemand of zero
// means demand is uncapped.
type Product struct {
	Name          string  `toml:"name" yaml:"name"`
	ProfitPerUnit float64 `toml:"profit_per_unit" yaml:"profit_per_unit"`
	LaborHours    float64 `toml:"labor_hours" yaml:"labor_hours"`
	MachineHours  float64 `toml:"machine_hours" yaml:"machine_hours"`
	RawMaterial   float64 `toml:"raw_material" yaml:"raw_material"`
	MinProduction float64 `toml:"min_production" yaml:"min_production"`
	MaxDemand     float64 `toml:"max_demand" yaml:"max_demand"`
}

// Resources holds the available capacity per shared resource
type Resources struct {
	LaborHours   float64 `toml:"labor_hours" yaml:"labor_hours"`
	MachineHours float64 `toml:"machine_hours" yaml:"machine_hours"`
	RawMaterial  float64 `toml:"raw_material" yaml:"raw_material"`
}

// Plan is a complete production-planning problem instance
type Plan struct {
	Name      string    `toml:"name" yaml:"name"`
	Products  []Product `toml:"products" yaml:"products"`
	Resources Resources `toml:"resources" yaml:"resources"`
}

// ResourceNames lists the shared resources in report order
var ResourceNames = []string{"Labor Hours", "Machine Hours", "Raw Material"}

// Consumption returns the product's per-unit draw on each shared resource,
// ordered as ResourceNames
func (p Product) Consumption() []float64 {
	return []float64{p.LaborHours, p.MachineHours, p.RawMaterial}
}

// DemandCapped reports whether the product has a demand ceiling
func (p Product) DemandCapped() bool {
	return p.MaxDemand > 0
}

// Capacities returns the available capacities ordered as ResourceNames
func (r Resources) Capacities() []float64 {
	return []float64{r.LaborHours, r.MachineHours, r.RawMaterial}
}

// Default returns the built-in three-product instance
func Default() Plan {
	return Plan{
		Name: "Production Planning",
		Products: []Product{
			{
				Name:          "Product A",
				ProfitPerUnit: 50,
				LaborHours:    2,
				MachineHours:  1.5,
				RawMaterial:   3,
				MinProduction: 20,
				MaxDemand:     100,
			},
			{
				Name:          "Product B",
				ProfitPerUnit: 75,
				LaborHours:    3,
				MachineHours:  2,
				RawMaterial:   4,
				MinProduction: 15,
				MaxDemand:     80,
			},
			{
				Name:          "Product C",
				ProfitPerUnit: 60,
				LaborHours:    2.5,
				MachineHours:  1.8,
				RawMaterial:   3.5,
				MinProduction: 25,
				MaxDemand:     120,
			},
		},
		Resources: Resources{
			LaborHours:   400,
			MachineHours: 300,
			RawMaterial:  1000,
		},
	}
}

// Validate checks the plan for values the solver cannot work with
func (p Plan) Validate() error {
	if len(p.Products) == 0 {
		return fmt.Errorf("plan %q has no products", p.Name)
	}

	seen := make(map[string]bool, len(p.Products))
	for _, prod := range p.Products {
		if prod.Name == "" {
			return fmt.Errorf("plan %q has a product without a name", p.Name)
		}
		if seen[prod.Name] {
			return fmt.Errorf("duplicate product %q", prod.Name)
		}
		seen[prod.Name] = true

		if prod.LaborHours < 0 || prod.MachineHours < 0 || prod.RawMaterial < 0 {
			return fmt.Errorf("product %q has negative resource consumption", prod.Name)
		}
		if prod.MinProduction < 0 {
			return fmt.Errorf("product %q has negative minimum production", prod.Name)
		}
		if prod.MaxDemand < 0 {
			return fmt.Errorf("product %q has negative max demand", prod.Name)
		}
		if prod.DemandCapped() && prod.MaxDemand < prod.MinProduction {
			return fmt.Errorf("product %q: max demand %.2f below minimum production %.2f",
				prod.Name, prod.MaxDemand, prod.MinProduction)
		}
	}

	for i, cap := range p.Resources.Capacities() {
		if cap <= 0 {
			return fmt.Errorf("capacity for %s must be positive, got %.2f", ResourceNames[i], cap)
		}
	}

	return nil
}
