package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"github.com/llehouerou/cadence/internal/errmsg"
	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/playback"
	"github.com/llehouerou/cadence/internal/transport"
	"github.com/llehouerou/cadence/internal/ui/confirm"
	"github.com/llehouerou/cadence/internal/ui/textinput"
)

var errUnplayable = errors.New("cannot play this file")

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case TransportEventMsg:
		if msg.Closed {
			m.log.Debug().Msg("transport event channel closed")
			return m, nil
		}
		m.engine.HandleEvent(msg.Event)
		if msg.Event.Kind == transport.EventFailed && !m.engine.State().IsPlaying {
			song, _ := m.engine.CurrentSong()
			err := msg.Event.Err
			if err == nil {
				err = errUnplayable
			}
			m.Status = errmsg.FormatWith(errmsg.OpPlaybackStart, song.Title, err)
		}
		return m, waitForTransport(m.events)

	case StderrMsg:
		m.log.Warn().Str("line", msg.Line).Msg("captured stderr")
		m.Status = msg.Line
		return m, waitForStderr(m.stderr)

	case CommandMsg:
		m.engine.Apply(playback.Command(msg))
		return m, nil

	case textinput.Result:
		return m.handlePromptResult(msg), nil

	case confirm.Result:
		return m.handleConfirmResult(msg), nil

	case tea.KeyMsg:
		if m.confirm.Active() {
			var cmd tea.Cmd
			m.confirm, cmd = m.confirm.Update(msg)
			return m, cmd
		}
		if m.prompt.Active() {
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	if m.prompt.Active() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg.String())
	if action == "" {
		return m, nil
	}
	m.Status = ""

	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionSwitchFocus:
		if m.Focus == FocusSidebar {
			m.Focus = FocusSongs
		} else {
			m.Focus = FocusSidebar
		}
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp

	case keymap.ActionPlayPause:
		m.engine.TogglePlayPause()
	case keymap.ActionNextTrack:
		m.engine.Next()
	case keymap.ActionPrevTrack:
		m.engine.Previous()
	case keymap.ActionSeekForward:
		m.engine.SeekBy(seekStep)
	case keymap.ActionSeekBack:
		m.engine.SeekBy(-seekStep)
	case keymap.ActionVolumeUp:
		m.engine.SetVolume(m.engine.State().Volume + volumeStep)
	case keymap.ActionVolumeDown:
		m.engine.SetVolume(m.engine.State().Volume - volumeStep)
	case keymap.ActionToggleMute:
		m.engine.ToggleMute()
	case keymap.ActionToggleShuffle:
		m.engine.ToggleShuffle()
	case keymap.ActionCycleRepeat:
		m.engine.CycleRepeatMode()

	case keymap.ActionMoveUp:
		m.moveCursor(-1)
	case keymap.ActionMoveDown:
		m.moveCursor(1)
	case keymap.ActionJumpStart:
		m.moveCursor(-len(m.visibleSongs()) - m.sidebarLen())
	case keymap.ActionJumpEnd:
		m.moveCursor(len(m.visibleSongs()) + m.sidebarLen())
	case keymap.ActionSelect:
		m.activate()

	case keymap.ActionAddToPlaylist:
		m.addSelectedSong()
	case keymap.ActionRemoveFromPlaylist:
		m.removeSelectedSong()
	case keymap.ActionNewPlaylist:
		return m, m.prompt.Start("New playlist", "", promptCreate{})
	case keymap.ActionRenamePlaylist:
		if p, ok := m.highlightedPlaylist(); ok {
			return m, m.prompt.Start("Rename playlist", p.Name, promptRename{id: p.ID})
		}
		m.Status = "Highlight a playlist to rename it"
	case keymap.ActionDeletePlaylist:
		if p, ok := m.highlightedPlaylist(); ok {
			m.confirm.Show("Delete playlist", "Delete \""+p.Name+"\"?", confirmDelete{id: p.ID, name: p.Name})
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.Focus == FocusSidebar {
		m.SideCursor = clamp(m.SideCursor+delta, 0, m.sidebarLen()-1)
		return
	}
	m.SongCursor = clamp(m.SongCursor+delta, 0, max(len(m.visibleSongs())-1, 0))
}

// activate plays the highlighted song, or selects the highlighted scope
// when the sidebar has focus.
func (m *Model) activate() {
	if m.Focus == FocusSongs {
		if song, ok := m.selectedSong(); ok {
			m.engine.PlaySong(song)
		}
		return
	}
	if p, ok := m.highlightedPlaylist(); ok {
		m.ctl.SelectPlaylist(p.ID)
	} else {
		m.ctl.SelectLibrary()
	}
	m.SongCursor = 0
	m.Focus = FocusSongs
}

func (m *Model) addSelectedSong() {
	song, ok := m.selectedSong()
	if !ok {
		return
	}
	p, ok := m.highlightedPlaylist()
	if !ok {
		m.Status = "Highlight a playlist in the sidebar first"
		return
	}
	if m.ctl.AddSong(p.ID, song.ID) {
		m.Status = "Added to " + p.Name
	} else {
		m.Status = "Already in " + p.Name
	}
}

func (m *Model) removeSelectedSong() {
	p, ok := m.activePlaylist()
	if !ok {
		return
	}
	song, ok := m.selectedSong()
	if !ok {
		return
	}
	if m.ctl.RemoveSong(p.ID, song.ID) {
		m.Status = "Removed from " + p.Name
		m.clampCursors()
	}
}

func (m Model) handlePromptResult(r textinput.Result) Model {
	if r.Canceled {
		return m
	}
	switch ctx := r.Context.(type) {
	case promptCreate:
		if p, ok := m.ctl.CreatePlaylist(r.Text, ""); ok {
			m.SideCursor = m.sidebarLen() - 1
			m.Status = "Created " + p.Name
		}
	case promptRename:
		if m.ctl.RenamePlaylist(ctx.id, r.Text) {
			m.Status = "Renamed to " + r.Text
		}
	}
	return m
}

func (m Model) handleConfirmResult(r confirm.Result) Model {
	ctx, ok := r.Context.(confirmDelete)
	if !ok || !r.Confirmed {
		return m
	}
	if m.ctl.DeletePlaylist(ctx.id) {
		m.Status = "Deleted " + ctx.name
	}
	m.clampCursors()
	return m
}
