// Package confirm provides a yes/no confirmation prompt.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cadence/internal/ui/styles"
)

// Result is sent when the prompt is answered.
type Result struct {
	Confirmed bool
	Context   any
}

// Model is a yes/no confirmation prompt.
type Model struct {
	title   string
	message string
	context any
	active  bool
}

// New creates an inactive confirmation model.
func New() Model {
	return Model{}
}

// Show activates the prompt. Context is passed back in the Result.
func (m *Model) Show(title, message string, context any) {
	m.title = title
	m.message = message
	m.context = context
	m.active = true
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

func (m *Model) answer(confirmed bool) tea.Cmd {
	r := Result{Confirmed: confirmed, Context: m.context}
	m.active = false
	m.context = nil
	return func() tea.Msg { return r }
}

// Update handles keys while the prompt is shown. Other keys are swallowed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "enter", "y", "Y":
		cmd := m.answer(true)
		return m, cmd
	case "esc", "n", "N":
		cmd := m.answer(false)
		return m, cmd
	}
	return m, nil
}

// View renders the prompt, or "" when inactive.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	st := styles.T().S()
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.T().Accent).Render(m.title)
	return title + "  " + m.message + "\n" + st.Subtle.Render("enter/y: confirm  esc/n: cancel")
}
