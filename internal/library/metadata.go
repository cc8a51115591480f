package library

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dhowden/tag"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
)

// IsMusicFile returns true if the file extension is one the local transport can decode.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV:
		return true
	default:
		return false
	}
}

// trackInfo is the raw metadata read from a file before an ID is assigned.
type trackInfo struct {
	path     string
	title    string
	artist   string
	album    string
	genre    string
	track    int
	duration time.Duration
}

// readTrackInfo reads tags and decodes the stream header for the duration.
// Files without tags fall back to the file name as title.
func readTrackInfo(path string) (*trackInfo, error) {
	info := &trackInfo{
		path:  path,
		title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if m, err := tag.ReadFrom(f); err == nil {
		if m.Title() != "" {
			info.title = m.Title()
		}
		info.artist = m.Artist()
		info.album = m.Album()
		info.genre = m.Genre()
		info.track, _ = m.Track()
	}

	// Duration is best effort: an undecodable file is still listed.
	if d, err := audioDuration(path); err == nil {
		info.duration = d
	}
	return info, nil
}

func audioDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extFLAC:
		streamer, format, err = flac.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return 0, errors.Newf("unsupported format: %s", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return 0, err
	}
	// Closing the streamer closes the underlying file.
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

func (t *trackInfo) song(id int) Song {
	label := "0:00"
	if t.duration > 0 {
		label = FormatDuration(t.duration)
	}
	return Song{
		ID:            id,
		Title:         t.title,
		Artist:        t.artist,
		Album:         t.album,
		Genre:         t.genre,
		DurationLabel: label,
		CoverGlyph:    GlyphForGenre(t.genre),
		AudioRef:      t.path,
	}
}
