// ============================================================================
// PlanForge - Production Planning Optimization
// ============================================================================
//
// Package:     solver
// Description: Formulates the production plan as a standard-form LP and
//              delegates solving to the gonum simplex implementation
// License:     MIT
// ============================================================================

package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/planforge/planforge/internal/model"
)

// tolerance passed to lp.Simplex for optimality and feasibility checks
const tolerance = 1e-10

// Solve maximizes total profit over the plan's products subject to the
// shared resource capacities and the per-product production bounds.
//
// The simplex library solves min c'x subject to Ax = b, x >= 0, so the
// plan is rewritten before the call: each quantity is shifted by its
// minimum production so the shifted variable is non-negative, one slack
// variable is added per resource constraint and per demand bound, and the
// profit vector is negated. Products with uncapped demand contribute no
// demand row, so a plan where production is limited by nothing can come
// back unbounded.
//
// A plan that fails validation returns an error. A plan the library
// reports as infeasible or unbounded returns a Solution carrying that
// status and no error.
func Solve(plan model.Plan) (Solution, error) {
	if err := plan.Validate(); err != nil {
		return Solution{}, fmt.Errorf("cannot solve: %w", err)
	}

	n := len(plan.Products)
	caps := plan.Resources.Capacities()
	m := len(caps)

	capped := make([]int, 0, n)
	for j, prod := range plan.Products {
		if prod.DemandCapped() {
			capped = append(capped, j)
		}
	}

	rows := m + len(capped) // resource constraints plus demand bounds
	cols := n + rows

	// Objective: minimize negated profit of the shifted variables. Slack
	// columns carry zero cost.
	c := make([]float64, cols)
	for j, prod := range plan.Products {
		c[j] = -prod.ProfitPerUnit
	}

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)

	// Resource rows: sum_j cons_ij * y_j + s_i = cap_i - sum_j cons_ij * min_j
	for i := 0; i < m; i++ {
		rhs := caps[i]
		for j, prod := range plan.Products {
			cons := prod.Consumption()[i]
			a.Set(i, j, cons)
			rhs -= cons * prod.MinProduction
		}
		a.Set(i, n+i, 1)
		b[i] = rhs
	}

	// Demand rows, one per capped product: y_j + s = max_j - min_j
	for k, j := range capped {
		row := m + k
		prod := plan.Products[j]
		a.Set(row, j, 1)
		a.Set(row, n+row, 1)
		b[row] = prod.MaxDemand - prod.MinProduction
	}

	// Standard form wants non-negative right-hand sides; equality rows may
	// be negated freely. A negative resource RHS means the minimum
	// production alone exceeds capacity, which simplex will then report as
	// infeasible.
	for i := range b {
		if b[i] < 0 {
			b[i] = -b[i]
			for j := 0; j < cols; j++ {
				a.Set(i, j, -a.At(i, j))
			}
		}
	}

	optF, optX, err := lp.Simplex(c, a, b, tolerance, nil)
	if err != nil {
		return Solution{Status: classify(err), Err: err}, nil
	}

	quantities := make([]float64, n)
	shift := 0.0
	for j, prod := range plan.Products {
		quantities[j] = optX[j] + prod.MinProduction
		shift += prod.ProfitPerUnit * prod.MinProduction
	}

	return Solution{
		Status:     StatusOptimal,
		Objective:  -optF + shift,
		Quantities: quantities,
	}, nil
}

func classify(err error) Status {
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return StatusInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return StatusUnbounded
	default:
		return StatusError
	}
}
