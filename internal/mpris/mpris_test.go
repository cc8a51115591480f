//go:build linux

package mpris

import (
	"testing"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cadence/internal/library"
	"github.com/llehouerou/cadence/internal/playback"
)

func newTestPlayer() (*playerAdapter, *mirror, *[]playback.Command) {
	var posted []playback.Command
	m, _ := newTestMirror()
	return &playerAdapter{
		mirror: m,
		post:   func(c playback.Command) { posted = append(posted, c) },
	}, m, &posted
}

func TestPlayerAdapter_PostsCommands(t *testing.T) {
	p, _, posted := newTestPlayer()

	require.NoError(t, p.Next())
	require.NoError(t, p.Previous())
	require.NoError(t, p.PlayPause())
	require.NoError(t, p.Play())
	require.NoError(t, p.Pause())
	require.NoError(t, p.Stop())
	require.NoError(t, p.Seek(types.Microseconds(-5_000_000)))
	require.NoError(t, p.SetPosition("/ignored", types.Microseconds(90_500_000)))
	require.NoError(t, p.SetVolume(0.25))
	require.NoError(t, p.SetShuffle(true))
	require.NoError(t, p.SetLoopStatus(types.LoopStatusTrack))

	want := []playback.Command{
		{Kind: playback.CmdNext},
		{Kind: playback.CmdPrevious},
		{Kind: playback.CmdToggle},
		{Kind: playback.CmdPlay},
		{Kind: playback.CmdPause},
		{Kind: playback.CmdPause},
		{Kind: playback.CmdSeekBy, Seconds: -5},
		{Kind: playback.CmdSeekTo, Seconds: 90.5},
		{Kind: playback.CmdSetVolume, Volume: 0.25},
		{Kind: playback.CmdSetShuffle, Shuffle: true},
		{Kind: playback.CmdSetRepeat, Repeat: playback.RepeatOne},
	}
	assert.Equal(t, want, *posted)
}

func TestPlayerAdapter_PlaybackStatus(t *testing.T) {
	p, m, _ := newTestPlayer()

	status, _ := p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusStopped, status)

	m.onTrack(playback.TrackChange{Song: library.Song{ID: 1}})
	m.onStatus(playback.StatusChange{Playing: true})
	status, _ = p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPlaying, status)

	m.onStatus(playback.StatusChange{Playing: false})
	status, _ = p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPaused, status)
}

func TestPlayerAdapter_Metadata(t *testing.T) {
	p, m, _ := newTestPlayer()

	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Empty(t, meta.Title)

	m.onTrack(playback.TrackChange{Song: library.Song{ID: 12, Title: "Song", Artist: "Band", Album: "Record"}})
	m.onDuration(playback.DurationChange{Duration: 61.5})

	meta, err = p.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "Song", meta.Title)
	assert.Equal(t, []string{"Band"}, meta.Artist)
	assert.Equal(t, "Record", meta.Album)
	assert.Equal(t, types.Microseconds(61_500_000), meta.Length)
	assert.Equal(t, "/org/mpris/MediaPlayer2/cadence/track/12", string(meta.TrackId))
}

func TestPlayerAdapter_ModesAndVolume(t *testing.T) {
	p, m, _ := newTestPlayer()

	loop, _ := p.LoopStatus()
	assert.Equal(t, types.LoopStatusNone, loop)

	m.onMode(playback.ModeChange{Repeat: playback.RepeatAll, Shuffle: true})
	loop, _ = p.LoopStatus()
	assert.Equal(t, types.LoopStatusPlaylist, loop)
	shuffle, _ := p.Shuffle()
	assert.True(t, shuffle)

	m.onVolume(playback.VolumeChange{Volume: 0.4, Muted: true})
	v, _ := p.Volume()
	assert.Zero(t, v)
	m.onVolume(playback.VolumeChange{Volume: 0.4})
	v, _ = p.Volume()
	assert.InDelta(t, 0.4, v, 1e-9)
}
