// ============================================================================
// PlanForge - Production Planning Optimization
// ============================================================================
//
// Package:     solver
// Description: Solution and status types returned by the LP solver
// License:     MIT
// ============================================================================

package solver

// Status classifies the outcome reported by the simplex library
type Status int

const (
	// StatusOptimal means an optimal feasible solution was found
	StatusOptimal Status = iota

	// StatusInfeasible means the constraints admit no solution
	StatusInfeasible

	// StatusUnbounded means the objective can grow without limit
	StatusUnbounded

	// StatusError means the solver failed for another reason
	StatusError
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Solution holds the solver outcome for a plan. Quantities follow the
// plan's product order and are only meaningful for StatusOptimal.
type Solution struct {
	Status     Status
	Objective  float64
	Quantities []float64
	Err        error
}

// IsOptimal reports whether an optimal solution was found
func (s Solution) IsOptimal() bool {
	return s.Status == StatusOptimal
}
