// Package playlists owns the user playlist collection and its persistence.
package playlists

import (
	"slices"
	"time"

	"github.com/llehouerou/cadence/internal/library"
)

// CoverGlyphs is the fixed set a new playlist's cover is drawn from.
var CoverGlyphs = []string{"🎵", "🎸", "🎹", "🎤", "🎧", "🎼", "🎺", "🎻"}

// Playlist is a user-curated, ordered set of song IDs.
// SongIDs never contains duplicates. IDs that no longer exist in the
// library are kept and skipped by readers.
type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CoverGlyph  string    `json:"cover"`
	SongIDs     []int     `json:"songIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Has reports whether songID is a member of the playlist.
func (p Playlist) Has(songID int) bool {
	return slices.Contains(p.SongIDs, songID)
}

// Songs returns the member songs in playlist order, skipping stale IDs.
// Playback order is the library's, see queue.Resolve; this order is for display.
func (p Playlist) Songs(lib *library.Library) []library.Song {
	songs := make([]library.Song, 0, len(p.SongIDs))
	for _, id := range p.SongIDs {
		if s, ok := lib.Song(id); ok {
			songs = append(songs, s)
		}
	}
	return songs
}

// Find returns the playlist with the given ID from a snapshot.
func Find(items []Playlist, id string) (Playlist, bool) {
	for _, p := range items {
		if p.ID == id {
			return p, true
		}
	}
	return Playlist{}, false
}
