package playback

import "github.com/llehouerou/cadence/internal/library"

// TrackChange is emitted whenever a song is issued to the transport,
// including a repeat-one replay of the same song.
type TrackChange struct {
	Song library.Song
}

// StatusChange is emitted when IsPlaying flips.
type StatusChange struct {
	Playing bool
}

// PositionChange is emitted on an explicit seek or restart, not on
// transport position ticks.
type PositionChange struct {
	Position float64
}

// DurationChange is emitted when the transport reports the track length.
type DurationChange struct {
	Duration float64
}

// ModeChange is emitted when repeat or shuffle mode changes.
type ModeChange struct {
	Repeat  RepeatMode
	Shuffle bool
}

// VolumeChange is emitted when the volume or mute flag changes.
type VolumeChange struct {
	Volume float64
	Muted  bool
}
