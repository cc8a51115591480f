package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/library"
	"github.com/llehouerou/cadence/internal/playback"
	"github.com/llehouerou/cadence/internal/playlists"
	"github.com/llehouerou/cadence/internal/transport"
	"github.com/llehouerou/cadence/internal/ui/confirm"
	"github.com/llehouerou/cadence/internal/ui/textinput"
)

// FocusTarget is the pane receiving navigation keys.
type FocusTarget int

const (
	FocusSidebar FocusTarget = iota
	FocusSongs
)

const (
	seekStep   = 5.0  // seconds
	volumeStep = 0.05 // fraction of full volume
)

// Deps are the collaborators the model drives.
type Deps struct {
	Engine *playback.Engine
	Store  *playlists.Store
	Events <-chan transport.Event
	Stderr <-chan string // captured C library output, may be nil
	Logger zerolog.Logger
}

// Model is the root application model.
//
// The sidebar lists the library followed by every playlist; its cursor
// index 0 is the library and i is playlist i-1. The songs pane shows the
// songs of the active scope, in playlist order for playlists.
type Model struct {
	ctl    Controller
	engine *playback.Engine
	store  *playlists.Store
	events <-chan transport.Event
	stderr <-chan string
	keys   *keymap.Resolver
	log    zerolog.Logger

	prompt     textinput.Model
	confirm    confirm.Model
	Focus      FocusTarget
	SideCursor int
	SongCursor int
	ShowHelp   bool
	Status     string
	Width      int
	Height     int

	now func() time.Time
}

// New creates the application model.
func New(d Deps) Model {
	return Model{
		ctl:     Controller{Engine: d.Engine, Store: d.Store},
		engine:  d.Engine,
		store:   d.Store,
		events:  d.Events,
		stderr:  d.Stderr,
		keys:    keymap.NewResolver(keymap.All),
		log:     d.Logger.With().Str("component", "app").Logger(),
		prompt:  textinput.New(),
		confirm: confirm.New(),
		Focus:   FocusSongs,
		now:     time.Now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForTransport(m.events), waitForStderr(m.stderr))
}

// highlightedPlaylist returns the playlist under the sidebar cursor.
func (m Model) highlightedPlaylist() (playlists.Playlist, bool) {
	items := m.store.Playlists()
	i := m.SideCursor - 1
	if i < 0 || i >= len(items) {
		return playlists.Playlist{}, false
	}
	return items[i], true
}

// activePlaylist returns the playlist that is the active scope, if any.
func (m Model) activePlaylist() (playlists.Playlist, bool) {
	scope := m.engine.State().ActiveScope
	if scope.IsLibrary() {
		return playlists.Playlist{}, false
	}
	return m.store.Get(scope.PlaylistID())
}

// visibleSongs lists the songs pane content.
func (m Model) visibleSongs() []library.Song {
	lib := m.engine.Library()
	if p, ok := m.activePlaylist(); ok {
		return p.Songs(lib)
	}
	if !m.engine.State().ActiveScope.IsLibrary() {
		return nil
	}
	return lib.Songs()
}

// selectedSong returns the song under the songs pane cursor.
func (m Model) selectedSong() (library.Song, bool) {
	songs := m.visibleSongs()
	if m.SongCursor < 0 || m.SongCursor >= len(songs) {
		return library.Song{}, false
	}
	return songs[m.SongCursor], true
}

func (m Model) sidebarLen() int {
	return len(m.store.Playlists()) + 1
}

// clampCursors keeps both cursors within their lists after a mutation.
func (m *Model) clampCursors() {
	m.SideCursor = clamp(m.SideCursor, 0, m.sidebarLen()-1)
	m.SongCursor = clamp(m.SongCursor, 0, max(len(m.visibleSongs())-1, 0))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
