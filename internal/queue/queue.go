// Package queue derives the ordered list of songs eligible for next/previous
// navigation from the library and the selected playlist.
package queue

import (
	"math/rand/v2"

	"github.com/llehouerou/cadence/internal/library"
	"github.com/llehouerou/cadence/internal/playlists"
)

// Scope selects the navigation context: the whole library (the zero value)
// or the playlist with the given ID.
type Scope string

// LibraryScope navigates the entire library.
const LibraryScope Scope = ""

// PlaylistScope returns the scope for a playlist ID.
func PlaylistScope(id string) Scope {
	return Scope(id)
}

// IsLibrary reports whether the scope is the whole library.
func (s Scope) IsLibrary() bool {
	return s == LibraryScope
}

// PlaylistID returns the playlist ID, empty for the library scope.
func (s Scope) PlaylistID() string {
	return string(s)
}

// Resolve returns the songs eligible for navigation under scope.
//
// The library scope yields every song in library order. A playlist scope
// yields the library songs that are members of the playlist, still in
// library order: the playlist's own order only matters for display. An
// unknown playlist yields an empty queue. Resolve has no side effects.
func Resolve(scope Scope, songs []library.Song, lists []playlists.Playlist) []library.Song {
	if scope.IsLibrary() {
		out := make([]library.Song, len(songs))
		copy(out, songs)
		return out
	}

	p, ok := playlists.Find(lists, scope.PlaylistID())
	if !ok {
		return []library.Song{}
	}

	members := make(map[int]struct{}, len(p.SongIDs))
	for _, id := range p.SongIDs {
		members[id] = struct{}{}
	}

	out := make([]library.Song, 0, len(p.SongIDs))
	for _, s := range songs {
		if _, ok := members[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out
}

// IndexOf returns the position of the song with the given ID, or -1.
func IndexOf(q []library.Song, id int) int {
	for i, s := range q {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// NextIndex returns the index after i, wrapping to 0 past the end.
// An absent current (i == -1) starts at the first song.
func NextIndex(i, n int) int {
	if n <= 0 {
		return -1
	}
	return (i + 1) % n
}

// PrevIndex returns the index before i, wrapping to the last song.
// An absent current (i == -1) lands on the second to last song, the same
// arithmetic as for a present one.
func PrevIndex(i, n int) int {
	if n <= 0 {
		return -1
	}
	return ((i-1)%n + n) % n
}

// PickRandom returns a uniformly random index in [0, n), retrying until it
// differs from exclude whenever n > 1. With n == 1 the only index is returned.
func PickRandom(rnd *rand.Rand, n, exclude int) int {
	if n <= 0 {
		return -1
	}
	for {
		i := rnd.IntN(n)
		if i != exclude || n == 1 {
			return i
		}
	}
}
