package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	plan := Default()
	if err := plan.Validate(); err != nil {
		t.Fatalf("default plan invalid: %v", err)
	}
	if len(plan.Products) != 3 {
		t.Errorf("products = %d, want 3", len(plan.Products))
	}
	if plan.Resources.LaborHours != 400 {
		t.Errorf("labor capacity = %v, want 400", plan.Resources.LaborHours)
	}
}

func TestPlan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Plan)
		wantErr string
	}{
		{
			"valid", func(p *Plan) {}, "",
		},
		{
			"no products",
			func(p *Plan) { p.Products = nil },
			"no products",
		},
		{
			"unnamed product",
			func(p *Plan) { p.Products[0].Name = "" },
			"without a name",
		},
		{
			"duplicate product",
			func(p *Plan) { p.Products[1].Name = p.Products[0].Name },
			"duplicate",
		},
		{
			"negative consumption",
			func(p *Plan) { p.Products[2].MachineHours = -1 },
			"negative resource consumption",
		},
		{
			"max below min",
			func(p *Plan) { p.Products[0].MaxDemand = 10 },
			"below minimum production",
		},
		{
			"uncapped demand is allowed",
			func(p *Plan) { p.Products[0].MaxDemand = 0 },
			"",
		},
		{
			"negative max demand",
			func(p *Plan) { p.Products[0].MaxDemand = -5 },
			"negative max demand",
		},
		{
			"zero capacity",
			func(p *Plan) { p.Resources.RawMaterial = 0 },
			"must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Default()
			tt.mutate(&plan)

			err := plan.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestProduct_DemandCapped(t *testing.T) {
	if !(Product{MaxDemand: 100}).DemandCapped() {
		t.Error("MaxDemand 100 should be capped")
	}
	if (Product{MaxDemand: 0}).DemandCapped() {
		t.Error("MaxDemand 0 should be uncapped")
	}
}

func TestLoad_TOML(t *testing.T) {
	content := `
name = "small"

[resources]
labor_hours = 100.0
machine_hours = 80.0
raw_material = 200.0

[[products]]
name = "Widget"
profit_per_unit = 10.0
labor_hours = 1.0
machine_hours = 0.5
raw_material = 2.0
min_production = 0.0
max_demand = 50.0
`
	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	plan, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if plan.Name != "small" {
		t.Errorf("Name = %q, want small", plan.Name)
	}
	if len(plan.Products) != 1 || plan.Products[0].Name != "Widget" {
		t.Errorf("unexpected products: %+v", plan.Products)
	}
	if plan.Resources.MachineHours != 80 {
		t.Errorf("machine capacity = %v, want 80", plan.Resources.MachineHours)
	}
}

func TestLoad_YAML(t *testing.T) {
	content := `
resources:
  labor_hours: 100
  machine_hours: 80
  raw_material: 200
products:
  - name: Widget
    profit_per_unit: 10
    labor_hours: 1
    machine_hours: 0.5
    raw_material: 2
    max_demand: 50
`
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	plan, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// Name falls back to the file name
	if plan.Name != "plan" {
		t.Errorf("Name = %q, want plan", plan.Name)
	}
	if plan.Products[0].MaxDemand != 50 {
		t.Errorf("MaxDemand = %v, want 50", plan.Products[0].MaxDemand)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"unknown extension", "plan.ini", "unsupported plan file format"},
		{"missing file", "nope.toml", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(filepath.Join(t.TempDir(), tt.path))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		t.Setenv("PLANFORGE_PLAN", "")
		plan, err := Resolve("")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if len(plan.Products) != 3 {
			t.Errorf("expected built-in default plan, got %+v", plan)
		}
	})

	t.Run("env var", func(t *testing.T) {
		t.Setenv("PLANFORGE_PLAN", filepath.Join(t.TempDir(), "missing.toml"))
		if _, err := Resolve(""); err == nil {
			t.Error("expected error for missing env plan file")
		}
	})
}
