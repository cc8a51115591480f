package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("not really audio"), 0o600))
}

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/a/song.mp3", true},
		{"/a/song.MP3", true},
		{"/a/song.flac", true},
		{"/a/song.wav", true},
		{"/a/cover.jpg", false},
		{"/a/notes", false},
	}
	for _, tt := range tests {
		if got := IsMusicFile(tt.path); got != tt.want {
			t.Errorf("IsMusicFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestScan_SkipsNonMusicFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.mp3"))
	writeFile(t, filepath.Join(dir, "a.flac"))
	writeFile(t, filepath.Join(dir, "cover.jpg"))
	writeFile(t, filepath.Join(dir, "sub", "c.wav"))

	lib, err := Scan([]string{dir})
	require.NoError(t, err)
	require.Equal(t, 3, lib.Len())

	// Untagged files share empty artist/album, so path order decides.
	songs := lib.Songs()
	assert.Equal(t, "a", songs[0].Title)
	assert.Equal(t, "b", songs[1].Title)
	assert.Equal(t, "c", songs[2].Title)
	for i, s := range songs {
		assert.Equal(t, i+1, s.ID)
		assert.Equal(t, "0:00", s.DurationLabel)
		assert.Equal(t, DefaultCoverGlyph, s.CoverGlyph)
	}
	assert.Equal(t, filepath.Join(dir, "a.flac"), songs[0].AudioRef)
}

func TestScan_OverlappingSourcesListedOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sub", "x.mp3"))

	lib, err := Scan([]string{dir, filepath.Join(dir, "sub")})
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Len())
}

func TestScan_MissingSource(t *testing.T) {
	_, err := Scan([]string{filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func TestScan_NoSources(t *testing.T) {
	lib, err := Scan(nil)
	require.NoError(t, err)
	assert.True(t, lib.IsEmpty())
}
