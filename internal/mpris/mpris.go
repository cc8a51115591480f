//go:build linux

// Package mpris exposes the player on the session bus as an MPRIS
// MediaPlayer2 so desktop media keys and widgets can control it.
package mpris

import (
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog"

	"github.com/llehouerou/cadence/internal/playback"
)

// Poster forwards a command to the goroutine that owns the engine.
type Poster func(playback.Command)

// Adapter connects the playback engine to MPRIS over D-Bus.
//
// D-Bus calls arrive on their own goroutines. Commands are posted back to
// the UI loop; property reads are served from a mirror of the engine state.
type Adapter struct {
	server *server.Server
	mirror *mirror
	done   chan struct{}
}

// New creates and starts a new MPRIS adapter. It must be called on the
// goroutine that owns engine.
func New(engine *playback.Engine, post Poster, log zerolog.Logger) (*Adapter, error) {
	song, ok := engine.CurrentSong()
	a := &Adapter{
		mirror: newMirror(engine.State(), song, ok),
		done:   make(chan struct{}),
	}

	log = log.With().Str("component", "mpris").Logger()
	a.server = server.NewServer("cadence", &rootAdapter{}, &playerAdapter{mirror: a.mirror, post: post})

	go a.mirror.follow(engine.Subscribe(), a.done)

	// Start the server in background
	go func() {
		if err := a.server.Listen(); err != nil {
			log.Warn().Err(err).Msg("mpris server stopped")
		}
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	close(a.done)
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // The terminal owns the lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Cadence", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and the
// optional loop status and shuffle interfaces.
type playerAdapter struct {
	mirror *mirror
	post   Poster
}

func (p *playerAdapter) cmd(kind playback.CommandKind) error {
	p.post(playback.Command{Kind: kind})
	return nil
}

func (p *playerAdapter) Next() error      { return p.cmd(playback.CmdNext) }
func (p *playerAdapter) Previous() error  { return p.cmd(playback.CmdPrevious) }
func (p *playerAdapter) Pause() error     { return p.cmd(playback.CmdPause) }
func (p *playerAdapter) PlayPause() error { return p.cmd(playback.CmdToggle) }
func (p *playerAdapter) Play() error      { return p.cmd(playback.CmdPlay) }

// Stop pauses; the engine has no stopped state.
func (p *playerAdapter) Stop() error { return p.cmd(playback.CmdPause) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.post(playback.Command{Kind: playback.CmdSeekBy, Seconds: microsToSeconds(offset)})
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.post(playback.Command{Kind: playback.CmdSeekTo, Seconds: microsToSeconds(position)})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s := p.mirror.get()
	switch {
	case !s.HasSong:
		return types.PlaybackStatusStopped, nil
	case s.Playing:
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.mirror.get()
	if !s.HasSong {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(s.Song.ID)),
		Length:  secondsToMicros(s.Duration),
		Title:   s.Song.Title,
		Album:   s.Song.Album,
		Artist:  nonEmpty(s.Song.Artist),
		ArtUrl:  artURL(s.Song.AudioRef),
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	s := p.mirror.get()
	if s.Muted {
		return 0, nil
	}
	return s.Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.post(playback.Command{Kind: playback.CmdSetVolume, Volume: v})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return int64(secondsToMicros(p.mirror.Position())), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.mirror.get().HasSong, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.mirror.get().HasSong, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.mirror.get().HasSong, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	switch p.mirror.get().Repeat {
	case playback.RepeatOne:
		return types.LoopStatusTrack, nil
	case playback.RepeatAll:
		return types.LoopStatusPlaylist, nil
	default:
		return types.LoopStatusNone, nil
	}
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	mode := playback.RepeatOff
	switch status {
	case types.LoopStatusTrack:
		mode = playback.RepeatOne
	case types.LoopStatusPlaylist:
		mode = playback.RepeatAll
	case types.LoopStatusNone:
	}
	p.post(playback.Command{Kind: playback.CmdSetRepeat, Repeat: mode})
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.mirror.get().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	p.post(playback.Command{Kind: playback.CmdSetShuffle, Shuffle: shuffle})
	return nil
}

func formatTrackID(songID int) string {
	return fmt.Sprintf("/org/mpris/MediaPlayer2/cadence/track/%d", songID)
}

func microsToSeconds(us types.Microseconds) float64 {
	return (time.Duration(us) * time.Microsecond).Seconds()
}

func secondsToMicros(s float64) types.Microseconds {
	return types.Microseconds(time.Duration(s * float64(time.Second)).Microseconds())
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
