// ============================================================================
// PlanForge - Production Planning Optimization
// ============================================================================
//
// Package:     tui
// Description: Bubbletea model for browsing a solved production plan
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/planforge/planforge/internal/analysis"
	"github.com/planforge/planforge/internal/model"
	"github.com/planforge/planforge/internal/report"
	"github.com/planforge/planforge/internal/solver"
)

// Tab identifies one of the result views
type Tab int

const (
	TabPlan Tab = iota
	TabResources
	TabScenarios
)

var tabNames = []string{"Plan", "Resources", "Scenarios"}

// solvedMsg carries the solve outcome into the update loop
type solvedMsg struct {
	solution  solver.Solution
	scenarios []analysis.ScenarioResult
	err       error
}

// Model is the bubbletea model for the results browser
type Model struct {
	plan model.Plan

	width   int
	height  int
	loading bool
	err     error

	solution  solver.Solution
	scenarios []analysis.ScenarioResult

	active Tab
	tables []table.Model
}

// New creates a results browser for the given plan
func New(plan model.Plan) Model {
	return Model{
		plan:    plan,
		loading: true,
	}
}

// Init kicks off the solve in the background
func (m Model) Init() tea.Cmd {
	plan := m.plan
	return func() tea.Msg {
		sol, err := solver.Solve(plan)
		if err != nil {
			return solvedMsg{err: err}
		}

		var scenarios []analysis.ScenarioResult
		if sol.IsOptimal() {
			scenarios, err = analysis.Sensitivity(plan, analysis.ProfitScenarios(plan, 1.5))
			if err != nil {
				return solvedMsg{err: err}
			}
		}

		return solvedMsg{solution: sol, scenarios: scenarios}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case solvedMsg:
		m.loading = false
		m.err = msg.err
		m.solution = msg.solution
		m.scenarios = msg.scenarios
		if msg.err == nil && m.solution.IsOptimal() {
			m.tables = m.buildTables()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.active = (m.active + 1) % Tab(len(tabNames))
			return m, nil
		case "shift+tab", "left", "h":
			m.active = (m.active + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
			return m, nil
		}
	}

	if len(m.tables) > 0 {
		var cmd tea.Cmd
		m.tables[m.active], cmd = m.tables[m.active].Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the browser
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.plan.Name))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("solving...\n")

	case m.err != nil:
		b.WriteString(statusErrorStyle.Render("solve failed: " + m.err.Error()))
		b.WriteString("\n")

	case !m.solution.IsOptimal():
		b.WriteString(statusErrorStyle.Render("No optimal solution: " + m.solution.Status.String()))
		b.WriteString("\n")

	default:
		b.WriteString(statusOKStyle.Render(
			fmt.Sprintf("Optimal: total profit $%s", report.FormatAmount(m.solution.Objective))))
		b.WriteString("\n\n")
		b.WriteString(m.renderTabs())
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(m.tables[m.active].View()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: switch view • up/down: scroll • q: quit"))
	return b.String()
}

func (m Model) renderTabs() string {
	rendered := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.active {
			rendered[i] = activeTabStyle.Render(name)
		} else {
			rendered[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) buildTables() []table.Model {
	contribs := analysis.ProfitContributions(m.plan, m.solution)
	planRows := make([]table.Row, len(m.plan.Products))
	for i, prod := range m.plan.Products {
		bounds := fmt.Sprintf("%.0f - %.0f", prod.MinProduction, prod.MaxDemand)
		if !prod.DemandCapped() {
			bounds = fmt.Sprintf("%.0f+", prod.MinProduction)
		}
		planRows[i] = table.Row{
			prod.Name,
			fmt.Sprintf("%.2f", m.solution.Quantities[i]),
			bounds,
			"$" + report.FormatAmount(contribs[i]),
		}
	}
	planTable := newTable(
		[]table.Column{
			{Title: "Product", Width: 16},
			{Title: "Quantity", Width: 10},
			{Title: "Bounds", Width: 12},
			{Title: "Profit", Width: 12},
		}, planRows)

	usage := analysis.Usage(m.plan, m.solution)
	resourceRows := make([]table.Row, len(usage))
	for i, u := range usage {
		resourceRows[i] = table.Row{
			u.Name,
			fmt.Sprintf("%.1f", u.Used),
			fmt.Sprintf("%.1f", u.Available),
			fmt.Sprintf("%.1f%%", u.Utilization),
		}
	}
	resourceTable := newTable(
		[]table.Column{
			{Title: "Resource", Width: 16},
			{Title: "Used", Width: 10},
			{Title: "Available", Width: 10},
			{Title: "Utilization", Width: 12},
		}, resourceRows)

	scenarioRows := make([]table.Row, len(m.scenarios))
	for i, res := range m.scenarios {
		objective := res.Solution.Status.String()
		if res.Solution.IsOptimal() {
			objective = "$" + report.FormatAmount(res.Solution.Objective)
		}
		scenarioRows[i] = table.Row{res.Scenario.Name, objective}
	}
	scenarioTable := newTable(
		[]table.Column{
			{Title: "Scenario", Width: 26},
			{Title: "Objective", Width: 16},
		}, scenarioRows)

	return []table.Model{planTable, resourceTable, scenarioTable}
}

func newTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(colorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorMuted).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(colorFg).
		Background(colorPrimary)
	t.SetStyles(styles)

	return t
}

// Run launches the results browser for the plan
func Run(plan model.Plan) error {
	_, err := tea.NewProgram(New(plan), tea.WithAltScreen()).Run()
	return err
}
