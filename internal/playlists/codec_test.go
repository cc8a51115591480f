package playlists

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	items := []Playlist{
		{
			ID:          "1700000000000",
			Name:        "Focus",
			Description: "no lyrics",
			CoverGlyph:  "🎹",
			SongIDs:     []int{3, 1},
			CreatedAt:   time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC),
		},
		{
			ID:         "1700000000001",
			Name:       "Empty",
			CoverGlyph: "🎧",
			SongIDs:    []int{},
			CreatedAt:  time.Date(2024, 2, 29, 8, 0, 0, 123_000_000, time.UTC),
		},
	}

	data, err := Encode(items)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestDecode_BrowserSnapshot(t *testing.T) {
	data := []byte(`[{"id":"1712345678901","name":"Chill","description":"","cover":"🎼",` +
		`"songIds":[2,5],"createdAt":"2024-04-05T19:34:38.901Z"}]`)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "Chill", got[0].Name)
	assert.Equal(t, "🎼", got[0].CoverGlyph)
	assert.Equal(t, []int{2, 5}, got[0].SongIDs)
	want := time.Date(2024, 4, 5, 19, 34, 38, 901_000_000, time.UTC)
	assert.True(t, got[0].CreatedAt.Equal(want), "CreatedAt = %v, want %v", got[0].CreatedAt, want)
}

func TestDecode_Sanitizes(t *testing.T) {
	data := []byte(`[{"id":"","name":"no id"},{"id":"7","name":"dupes","songIds":[1,2,1,3,2]}]`)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []int{1, 2, 3}, got[0].SongIDs)
}

func TestDecode_Corrupt(t *testing.T) {
	for _, in := range []string{"", "{", `{"id":"1"}`, `[{"createdAt":"yesterday"}]`} {
		_, err := Decode([]byte(in))
		assert.Error(t, err, "Decode(%q)", in)
	}
}

func TestEncode_NilIsEmptyArray(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
