package playback

import (
	"strings"

	"github.com/llehouerou/cadence/internal/queue"
)

// RepeatMode defines the repeat behavior.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "off"
	case RepeatAll:
		return "all"
	case RepeatOne:
		return "one"
	default:
		return "unknown"
	}
}

// Next returns the mode that follows m in the off, all, one cycle.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatOff
	}
}

// ParseRepeatMode parses a mode name, case-insensitively.
func ParseRepeatMode(s string) (RepeatMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return RepeatOff, true
	case "all", "playlist":
		return RepeatAll, true
	case "one", "track":
		return RepeatOne, true
	default:
		return RepeatOff, false
	}
}

// State is a snapshot of the session's playback state.
type State struct {
	CurrentSongID *int
	IsPlaying     bool
	Position      float64 // seconds
	Duration      float64 // seconds, 0 until the transport reports it
	Volume        float64 // 0.0 to 1.0
	Muted         bool
	Shuffle       bool
	Repeat        RepeatMode
	ActiveScope   queue.Scope
}

// HasCurrent reports whether a song is selected.
func (s State) HasCurrent() bool {
	return s.CurrentSongID != nil
}

// EffectiveVolume is the level sent to the transport.
func (s State) EffectiveVolume() float64 {
	if s.Muted {
		return 0
	}
	return s.Volume
}

func (s State) clone() State {
	if s.CurrentSongID != nil {
		id := *s.CurrentSongID
		s.CurrentSongID = &id
	}
	return s
}
