package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/planforge/planforge/internal/model"
	"github.com/planforge/planforge/internal/solver"
)

func TestRender(t *testing.T) {
	plan := model.Default()
	sol, err := solver.Solve(plan)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	dir := filepath.Join(t.TempDir(), "charts")
	if err := Render(dir, plan, sol); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, name := range FileNames {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s not written: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestRender_NonOptimal(t *testing.T) {
	plan := model.Default()
	sol := solver.Solution{Status: solver.StatusUnbounded}

	if err := Render(t.TempDir(), plan, sol); err == nil {
		t.Error("expected error for non-optimal solution")
	}
}
