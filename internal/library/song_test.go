package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_KeepsOrder(t *testing.T) {
	lib := New(
		Song{ID: 3, Title: "C"},
		Song{ID: 1, Title: "A"},
		Song{ID: 2, Title: "B"},
	)

	songs := lib.Songs()
	require.Len(t, songs, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{songs[0].ID, songs[1].ID, songs[2].ID})
}

func TestNew_DropsDuplicateIDs(t *testing.T) {
	lib := New(
		Song{ID: 1, Title: "first"},
		Song{ID: 1, Title: "second"},
	)

	assert.Equal(t, 1, lib.Len())
	s, ok := lib.Song(1)
	require.True(t, ok)
	assert.Equal(t, "first", s.Title)
}

func TestLibrary_Song(t *testing.T) {
	lib := New(Song{ID: 7, Title: "Seven"})

	s, ok := lib.Song(7)
	assert.True(t, ok)
	assert.Equal(t, "Seven", s.Title)

	_, ok = lib.Song(8)
	assert.False(t, ok)
	assert.False(t, lib.Contains(8))
	assert.True(t, lib.Contains(7))
}

func TestLibrary_SongsReturnsCopy(t *testing.T) {
	lib := New(Song{ID: 1, Title: "A"})

	songs := lib.Songs()
	songs[0].Title = "changed"

	s, _ := lib.Song(1)
	assert.Equal(t, "A", s.Title)
}

func TestLibrary_Empty(t *testing.T) {
	lib := New()
	assert.True(t, lib.IsEmpty())
	assert.Empty(t, lib.Songs())
}
