// Package styles holds the color palette and shared lipgloss styles.
package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Accent    lipgloss.Color // focused borders, current song
	Secondary lipgloss.Color // mode flags

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Error lipgloss.Color

	once   sync.Once
	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style // current song
	Cursor  lipgloss.Style
	Flag    lipgloss.Style // active shuffle/repeat indicator
	Error   lipgloss.Style

	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
}

var defaultTheme = Theme{
	Accent:    lipgloss.Color("#7dd3fc"),
	Secondary: lipgloss.Color("#fbbf24"),

	FgBase:   lipgloss.Color("#d4d4d4"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5c5c5c"),

	BgCursor: lipgloss.Color("#2e2e2e"),

	Border:      lipgloss.Color("#5c5c5c"),
	BorderFocus: lipgloss.Color("#7dd3fc"),

	Error: lipgloss.Color("#f87171"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	t.once.Do(func() { t.styles = t.build() })
	return t.styles
}

func (t *Theme) build() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	panel := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder())

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Playing: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Cursor:  lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase),
		Flag:    lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(t.Error),

		Panel:        panel.BorderForeground(t.Border),
		PanelFocused: panel.BorderForeground(t.BorderFocus),
	}
}

// PanelStyle returns the panel style for the focus state.
func PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return T().S().PanelFocused
	}
	return T().S().Panel
}
