package app

import (
	"github.com/llehouerou/cadence/internal/playback"
	"github.com/llehouerou/cadence/internal/playlists"
	"github.com/llehouerou/cadence/internal/queue"
)

// Controller applies user actions that touch both the playlist store and the
// engine, keeping the two consistent.
type Controller struct {
	Engine *playback.Engine
	Store  *playlists.Store
}

// CreatePlaylist creates a playlist; blank names are ignored.
func (c Controller) CreatePlaylist(name, description string) (playlists.Playlist, bool) {
	return c.Store.Create(name, description)
}

// RenamePlaylist renames a playlist; blank names and unknown IDs are ignored.
func (c Controller) RenamePlaylist(id, name string) bool {
	return c.Store.Rename(id, name)
}

// DeletePlaylist removes a playlist and, when it was the active scope,
// returns navigation to the whole library.
func (c Controller) DeletePlaylist(id string) bool {
	deleted := c.Store.Delete(id)
	c.Engine.ClearScopeIf(id)
	return deleted
}

// AddSong adds a song to a playlist unless it is already a member. Unlike
// Store.AddSong, which stores any ID, it refuses songs missing from the
// library so the UI cannot create dangling entries.
func (c Controller) AddSong(playlistID string, songID int) bool {
	if !c.Engine.Library().Contains(songID) {
		return false
	}
	return c.Store.AddSong(playlistID, songID)
}

// RemoveSong removes a song from a playlist.
func (c Controller) RemoveSong(playlistID string, songID int) bool {
	return c.Store.RemoveSong(playlistID, songID)
}

// SelectPlaylist makes a playlist the navigation scope. Unknown IDs fall
// back to the library.
func (c Controller) SelectPlaylist(id string) {
	if _, ok := c.Store.Get(id); !ok {
		c.Engine.SelectScope(queue.LibraryScope)
		return
	}
	c.Engine.SelectScope(queue.PlaylistScope(id))
}

// SelectLibrary makes the whole library the navigation scope.
func (c Controller) SelectLibrary() {
	c.Engine.SelectScope(queue.LibraryScope)
}
