// Package tui is an interactive quick paycheck calculator. Results
// update live as the scenario fields change; there is no submit step.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/wagekit/wagekit/internal/calculation"
	"github.com/wagekit/wagekit/internal/domain"
	"github.com/wagekit/wagekit/internal/reference"
)

const (
	fieldRate = iota
	fieldHours
	fieldTips
	fieldState
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldRate:  "Hourly rate ($)",
	fieldHours: "Hours per week",
	fieldTips:  "Tips per hour ($)",
	fieldState: "State code",
}

// Model is the bubbletea model for the quick calculator.
type Model struct {
	store *reference.Store
	calc  *calculation.PayCalculator

	inputs     [fieldCount]textinput.Model
	focus      int
	employment domain.EmploymentType

	jurisdiction domain.JurisdictionTaxProfile
	result       domain.PayResult
	haveResult   bool
	errMsg       string
}

// NewModel creates the calculator model with sensible starting values.
func NewModel(store *reference.Store) Model {
	m := Model{
		store:      store,
		calc:       calculation.NewPayCalculator(calculation.NewFederalTaxCalculator(), store.ShiftDifferentials()),
		employment: domain.EmploymentW2,
	}

	defaults := [fieldCount]string{
		fieldRate:  "17.00",
		fieldHours: "40",
		fieldTips:  "0",
		fieldState: "TX",
	}
	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.SetValue(defaults[i])
		ti.CharLimit = 10
		ti.Width = 12
		m.inputs[i] = ti
	}
	m.inputs[fieldRate].Focus()
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "ctrl+t":
			m.employment = m.employment.Opposite()
			m.recompute()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recompute()
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *Model) recompute() {
	code := strings.ToUpper(strings.TrimSpace(m.inputs[fieldState].Value()))
	jurisdiction, err := m.store.Jurisdiction(code)
	if err != nil {
		m.haveResult = false
		m.errMsg = fmt.Sprintf("unknown state %q", code)
		return
	}

	scenario := domain.PayScenario{
		HourlyRate:     domain.ParseAmount(m.inputs[fieldRate].Value()),
		HoursPerWeek:   domain.ParseAmount(m.inputs[fieldHours].Value()),
		TipsPerHour:    domain.ParseAmount(m.inputs[fieldTips].Value()),
		StateCode:      code,
		EmploymentType: m.employment,
	}

	m.jurisdiction = jurisdiction
	m.result = m.calc.ComputePay(scenario, jurisdiction)
	m.haveResult = true
	m.errMsg = ""
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Quick Paycheck Calculator"))
	sb.WriteString("\n")

	for i := 0; i < fieldCount; i++ {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		sb.WriteString(label.Render(fieldLabels[i]))
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n")
	}

	sb.WriteString(labelStyle.Render("Employment type"))
	sb.WriteString(employmentName(m.employment))
	sb.WriteString("\n")

	if m.errMsg != "" {
		sb.WriteString(errStyle.Render(m.errMsg))
	} else if m.haveResult {
		sb.WriteString(m.resultView())
	}

	sb.WriteString(helpStyle.Render("tab: next field  ctrl+t: toggle w2/1099  esc: quit"))
	return sb.String()
}

func (m Model) resultView() string {
	r := m.result
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s  gross $%s / net %s weekly\n",
		m.jurisdiction.Code,
		r.WeeklyGross.StringFixed(2),
		valueStyle.Render("$"+r.WeeklyNet.StringFixed(2)))
	fmt.Fprintf(&sb, "monthly net  %s\n", valueStyle.Render("$"+r.MonthlyNet.StringFixed(2)))
	fmt.Fprintf(&sb, "yearly net   %s\n", valueStyle.Render("$"+r.YearlyNet.StringFixed(2)))
	fmt.Fprintf(&sb, "effective tax %s%%  effective hourly $%s\n",
		r.EffectiveTaxRate.Mul(decimal.NewFromInt(100)).StringFixed(1),
		r.EffectiveHourlyRate.StringFixed(2))

	delta := r.Comparison.YearlyNetDelta
	deltaStyle := deltaPositiveStyle
	sign := "+"
	if delta.LessThan(decimal.Zero) {
		deltaStyle = deltaNegativeStyle
		sign = "-"
	}
	fmt.Fprintf(&sb, "as %s: $%s/yr (%s)",
		employmentName(r.Comparison.AlternateType),
		r.Comparison.AlternateYearlyNet.StringFixed(2),
		deltaStyle.Render(sign+"$"+delta.Abs().StringFixed(2)+" now"))

	return resultBoxStyle.Render(sb.String()) + "\n"
}

func employmentName(et domain.EmploymentType) string {
	if et == domain.Employment1099 {
		return "1099"
	}
	return "W-2"
}

// Run starts the interactive calculator.
func Run(store *reference.Store) error {
	_, err := tea.NewProgram(NewModel(store), tea.WithAltScreen()).Run()
	return err
}
