package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/planforge/planforge/internal/model"
)

func solvedModel(t *testing.T) Model {
	t.Helper()

	m := New(model.Default())
	msg := m.Init()()
	solved, ok := msg.(solvedMsg)
	if !ok {
		t.Fatalf("Init() produced %T, want solvedMsg", msg)
	}
	if solved.err != nil {
		t.Fatalf("solve failed: %v", solved.err)
	}

	updated, _ := m.Update(solved)
	return updated.(Model)
}

func TestModel_SolveAndView(t *testing.T) {
	m := solvedModel(t)

	if m.loading {
		t.Error("model still loading after solvedMsg")
	}
	if len(m.tables) != 3 {
		t.Fatalf("tables = %d, want 3", len(m.tables))
	}

	view := m.View()
	for _, want := range []string{"Production Planning", "Optimal: total profit", "9,937.50", "Plan", "Resources", "Scenarios"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_TabSwitching(t *testing.T) {
	m := solvedModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(Model).active != TabResources {
		t.Errorf("active = %v, want TabResources", next.(Model).active)
	}

	prev, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if prev.(Model).active != TabScenarios {
		t.Errorf("active = %v, want TabScenarios (wrap-around)", prev.(Model).active)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := solvedModel(t)

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			var msg tea.KeyMsg
			switch key {
			case "q":
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			}

			_, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
		})
	}
}

func TestModel_InfeasibleView(t *testing.T) {
	plan := model.Default()
	plan.Products[0].MinProduction = 500
	plan.Products[0].MaxDemand = 600

	m := New(plan)
	msg := m.Init()()
	updated, _ := m.Update(msg)

	view := updated.(Model).View()
	if !strings.Contains(view, "Infeasible") {
		t.Errorf("view missing infeasible status: %q", view)
	}
}
