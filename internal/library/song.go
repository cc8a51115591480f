// Package library holds the read-only song collection the engine navigates.
package library

// Song is an immutable library entry. Identity is ID.
type Song struct {
	ID            int
	Title         string
	Artist        string
	Album         string
	Genre         string
	DurationLabel string
	CoverGlyph    string
	AudioRef      string // locator handed to the transport (a file path for local playback)
}

// Library is an ordered, read-only collection of songs.
// The stored order is the canonical navigation order.
type Library struct {
	songs []Song
	index map[int]int // song ID -> position
}

// New creates a library from songs in the given order.
// Later duplicates of an ID are dropped.
func New(songs ...Song) *Library {
	l := &Library{
		songs: make([]Song, 0, len(songs)),
		index: make(map[int]int, len(songs)),
	}
	for _, s := range songs {
		if _, dup := l.index[s.ID]; dup {
			continue
		}
		l.index[s.ID] = len(l.songs)
		l.songs = append(l.songs, s)
	}
	return l
}

// Songs returns a copy of all songs in library order.
func (l *Library) Songs() []Song {
	result := make([]Song, len(l.songs))
	copy(result, l.songs)
	return result
}

// Song returns the song with the given ID.
func (l *Library) Song(id int) (Song, bool) {
	i, ok := l.index[id]
	if !ok {
		return Song{}, false
	}
	return l.songs[i], true
}

// Contains reports whether a song with the given ID exists.
func (l *Library) Contains(id int) bool {
	_, ok := l.index[id]
	return ok
}

// Len returns the number of songs.
func (l *Library) Len() int {
	return len(l.songs)
}

// IsEmpty returns true if the library has no songs.
func (l *Library) IsEmpty() bool {
	return len(l.songs) == 0
}
