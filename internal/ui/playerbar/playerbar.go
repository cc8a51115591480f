// Package playerbar renders the now-playing bar at the bottom of the screen.
package playerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cadence/internal/icons"
	"github.com/llehouerou/cadence/internal/library"
	"github.com/llehouerou/cadence/internal/playback"
	"github.com/llehouerou/cadence/internal/ui/render"
	"github.com/llehouerou/cadence/internal/ui/styles"
)

// Height is the rendered height: top border, content, bottom border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	HasSong  bool
	Playing  bool
	Cover    string
	Title    string
	Artist   string
	Position float64
	Duration float64
	Volume   float64
	Muted    bool
	Shuffle  bool
	Repeat   playback.RepeatMode
}

// NewState builds the bar state from the engine state and current song.
func NewState(st playback.State, song library.Song, hasSong bool) State {
	s := State{
		HasSong:  hasSong,
		Playing:  st.IsPlaying,
		Position: st.Position,
		Duration: st.Duration,
		Volume:   st.Volume,
		Muted:    st.Muted,
		Shuffle:  st.Shuffle,
		Repeat:   st.Repeat,
	}
	if hasSong {
		s.Cover = song.CoverGlyph
		s.Title = song.Title
		s.Artist = song.Artist
	}
	return s
}

// Render returns the player bar for the given total width.
func Render(s State, width int) string {
	inner := max(width-4, 0) // border + padding

	right := strings.Join([]string{modes(s), volume(s), times(s)}, "  ")
	rightWidth := lipgloss.Width(right)

	var left string
	if s.HasSong {
		status := icons.Play()
		if !s.Playing {
			status = icons.Pause()
		}
		text := s.Title
		if s.Artist != "" {
			text += " · " + s.Artist
		}
		if s.Cover != "" {
			text = s.Cover + " " + text
		}
		textWidth := max(inner-rightWidth-lipgloss.Width(status)-2, 0)
		left = status + " " + render.Truncate(text, textWidth)

		if bar := inner - rightWidth - lipgloss.Width(left) - 2; bar >= 8 {
			left += " " + progress(s.Position, s.Duration, bar)
		}
	} else {
		left = styles.T().S().Muted.Render("Nothing playing")
	}

	content := render.Row(left, right, inner)
	return styles.T().S().Panel.Padding(0, 1).Width(max(width-2, 0)).Render(content)
}

func progress(pos, dur float64, width int) string {
	var ratio float64
	if dur > 0 {
		ratio = max(0, min(pos/dur, 1))
	}
	filled := int(float64(width) * ratio)
	st := styles.T().S()
	return st.Playing.Render(strings.Repeat("━", filled)) +
		st.Subtle.Render(strings.Repeat("─", width-filled))
}

func times(s State) string {
	if !s.HasSong {
		return ""
	}
	return styles.T().S().Muted.Render(
		library.FormatSeconds(s.Position) + " / " + library.FormatSeconds(s.Duration))
}

func volume(s State) string {
	return styles.T().S().Muted.Render(fmt.Sprintf("%s %3d%%", icons.Volume(s.Muted), int(s.Volume*100+0.5)))
}

func modes(s State) string {
	st := styles.T().S()
	shuffle := st.Subtle.Render(icons.Shuffle())
	if s.Shuffle {
		shuffle = st.Flag.Render(icons.Shuffle())
	}
	glyph := icons.Repeat(s.Repeat == playback.RepeatOne)
	repeat := st.Subtle.Render(glyph)
	if s.Repeat != playback.RepeatOff {
		repeat = st.Flag.Render(glyph)
	}
	return shuffle + " " + repeat
}
