// Package textinput provides the single-line prompt used to name playlists.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cadence/internal/ui/styles"
)

const charLimit = 80

// Result is sent when the prompt is confirmed or canceled.
type Result struct {
	Text     string
	Context  any  // passed through from Start
	Canceled bool // true if the user pressed Escape
}

// Model is a titled text prompt.
type Model struct {
	input   textinput.Model
	title   string
	context any
	active  bool
}

// New creates an inactive prompt.
func New() Model {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = charLimit
	return Model{input: in}
}

// Start activates the prompt with a title and optional initial text.
func (m *Model) Start(title, initial string, context any) tea.Cmd {
	m.title = title
	m.context = context
	m.active = true
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Active reports whether the prompt is capturing input.
func (m Model) Active() bool {
	return m.active
}

func (m *Model) finish(r Result) tea.Cmd {
	m.active = false
	m.context = nil
	m.input.Blur()
	m.input.Reset()
	return func() tea.Msg { return r }
}

// Update handles input while the prompt is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			cmd := m.finish(Result{Canceled: true, Context: m.context})
			return m, cmd
		case tea.KeyEnter:
			cmd := m.finish(Result{Text: strings.TrimSpace(m.input.Value()), Context: m.context})
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt, or "" when inactive.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	st := styles.T().S()
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.T().Accent).Render(m.title)
	hint := st.Subtle.Render("enter: confirm  esc: cancel")
	return title + "\n" + m.input.View() + "\n" + hint
}
