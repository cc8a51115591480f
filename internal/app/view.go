package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/cadence/internal/icons"
	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/library"
	"github.com/llehouerou/cadence/internal/ui/playerbar"
	"github.com/llehouerou/cadence/internal/ui/render"
	"github.com/llehouerou/cadence/internal/ui/styles"
)

const (
	minSidebarWidth = 20
	maxSidebarWidth = 34
	headerHeight    = 1
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	footer := m.footerView()
	bodyHeight := max(m.Height-headerHeight-playerbar.Height-lipgloss.Height(footer), 3)

	sideWidth := clamp(m.Width/3, minSidebarWidth, maxSidebarWidth)
	mainWidth := max(m.Width-sideWidth, 10)

	sidebar := m.panel(m.sidebarLines(sideWidth-2, bodyHeight-2), sideWidth, bodyHeight, m.Focus == FocusSidebar)
	var main string
	if m.ShowHelp {
		main = m.panel(helpLines(mainWidth-2), mainWidth, bodyHeight, false)
	} else {
		main = m.panel(m.songLines(mainWidth-2, bodyHeight-2), mainWidth, bodyHeight, m.Focus == FocusSongs)
	}

	song, ok := m.engine.CurrentSong()
	bar := playerbar.Render(playerbar.NewState(m.engine.State(), song, ok), m.Width)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main),
		bar,
		footer,
	)
}

func (m Model) panel(lines []string, width, height int, focused bool) string {
	return styles.PanelStyle(focused).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Render(strings.Join(lines, "\n"))
}

func (m Model) headerView() string {
	st := styles.T().S()
	scope := "Library"
	if p, ok := m.activePlaylist(); ok {
		scope = p.Name
	}
	left := st.Title.Render("cadence") + st.Muted.Render(" · "+scope)
	right := ""
	if m.Status != "" {
		right = st.Muted.Render(m.Status)
	}
	return render.Row(left, right, m.Width)
}

func (m Model) footerView() string {
	if m.confirm.Active() {
		return m.confirm.View()
	}
	if m.prompt.Active() {
		return m.prompt.View()
	}
	return styles.T().S().Subtle.Render(render.Truncate(
		"space play/pause · n/p next/prev · enter play · a add · c new playlist · ? help · q quit", m.Width))
}

func (m Model) sidebarLines(width, height int) []string {
	st := styles.T().S()
	active := m.engine.State().ActiveScope
	lib := m.engine.Library()

	lines := make([]string, 0, m.sidebarLen())
	lines = append(lines, m.sidebarRow(
		icons.Library()+" All songs", humanize.Comma(int64(lib.Len())), active.IsLibrary(), m.SideCursor == 0, width))

	now := m.now()
	for i, p := range m.store.Playlists() {
		right := fmt.Sprintf("%d", len(p.Songs(lib)))
		if width >= 28 {
			right = st.Subtle.Render(humanize.RelTime(p.CreatedAt, now, "ago", "from now")) + " " + right
		}
		isActive := !active.IsLibrary() && active.PlaylistID() == p.ID
		lines = append(lines, m.sidebarRow(p.CoverGlyph+" "+p.Name, right, isActive, m.SideCursor == i+1, width))
	}
	return window(lines, m.SideCursor, height)
}

func (m Model) sidebarRow(label, right string, active, cursor bool, width int) string {
	st := styles.T().S()
	marker := "  "
	if active {
		marker = "● "
	}
	row := render.Row(marker+label, right, width)
	switch {
	case cursor && m.Focus == FocusSidebar:
		return st.Cursor.Render(row)
	case active:
		return st.Playing.Render(row)
	default:
		return row
	}
}

func (m Model) songLines(width, height int) []string {
	st := styles.T().S()
	songs := m.visibleSongs()
	if len(songs) == 0 {
		msg := "No songs"
		if _, ok := m.activePlaylist(); ok {
			msg = "Empty playlist: highlight it in the sidebar and press a on a song"
		}
		return []string{st.Muted.Render(render.Truncate(msg, width))}
	}

	var currentID int
	hasCurrent := false
	if cur := m.engine.State().CurrentSongID; cur != nil {
		currentID, hasCurrent = *cur, true
	}

	lines := make([]string, len(songs))
	for i, s := range songs {
		isCurrent := hasCurrent && s.ID == currentID
		lines[i] = m.songRow(s, isCurrent, i == m.SongCursor, width)
	}
	return window(lines, m.SongCursor, height)
}

func (m Model) songRow(s library.Song, current, cursor bool, width int) string {
	st := styles.T().S()
	marker := "  "
	if current {
		marker = "▶ "
	}
	label := marker + s.CoverGlyph + " " + s.Title
	if s.Artist != "" {
		label += " — " + s.Artist
	}
	if s.Album != "" {
		label += " · " + s.Album
	}
	row := render.Row(label, s.DurationLabel, width)
	switch {
	case cursor && m.Focus == FocusSongs:
		return st.Cursor.Render(row)
	case current:
		return st.Playing.Render(row)
	default:
		return row
	}
}

func helpLines(width int) []string {
	st := styles.T().S()
	var lines []string
	for _, ctx := range []string{"playback", "navigator", "playlist", "global"} {
		lines = append(lines, st.Title.Render(ctx))
		for _, b := range keymap.ByContext(ctx) {
			keys := make([]string, len(b.Keys))
			for i, k := range b.Keys {
				if k == " " {
					k = "space"
				}
				keys[i] = k
			}
			lines = append(lines, render.Fit("  "+strings.Join(keys, "/"), 16)+render.Truncate(b.Description, max(width-16, 0)))
		}
	}
	return lines
}

// window returns the slice of lines of at most height that keeps cursor visible.
func window(lines []string, cursor, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) <= height {
		return lines
	}
	start := clamp(cursor-height+1, 0, len(lines)-height)
	return lines[start : start+height]
}
