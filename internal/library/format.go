package library

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DefaultCoverGlyph is used when no genre-specific glyph applies.
const DefaultCoverGlyph = "🎵"

// genreGlyphs is checked in order; the first matching keyword wins.
var genreGlyphs = []struct {
	keyword string
	glyph   string
}{
	{"classical", "🎻"},
	{"soundtrack", "🎼"},
	{"electronic", "🎧"},
	{"piano", "🎹"},
	{"jazz", "🎷"},
	{"blues", "🎺"},
	{"metal", "🤘"},
	{"rock", "🎸"},
	{"pop", "🎤"},
}

// FormatDuration formats d as m:ss. Negative durations render as 0:00.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatSeconds formats a position expressed in seconds as m:ss.
// NaN and infinities render as 0:00.
func FormatSeconds(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "0:00"
	}
	return FormatDuration(time.Duration(seconds * float64(time.Second)))
}

// GlyphForGenre picks a cover glyph from the genre name.
// Matching is case-insensitive on substrings, so "Hard Rock" maps like "rock".
func GlyphForGenre(genre string) string {
	g := strings.ToLower(strings.TrimSpace(genre))
	if g == "" {
		return DefaultCoverGlyph
	}
	for _, e := range genreGlyphs {
		if strings.Contains(g, e.keyword) {
			return e.glyph
		}
	}
	return DefaultCoverGlyph
}
