// Package playback implements the session's playback engine: transport
// state, navigation under shuffle and repeat, and transport event handling.
package playback

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/cadence/internal/library"
	"github.com/llehouerou/cadence/internal/playlists"
	"github.com/llehouerou/cadence/internal/queue"
	"github.com/llehouerou/cadence/internal/transport"
)

const (
	DefaultVolume           = 0.7
	DefaultRestartThreshold = 3.0 // seconds
)

// PlaylistSource supplies the current playlist collection.
// *playlists.Store satisfies it.
type PlaylistSource interface {
	Playlists() []playlists.Playlist
}

// Options configures an Engine.
type Options struct {
	Volume           float64
	RestartThreshold float64 // Previous restarts the song past this position
	Rand             *rand.Rand
	Logger           zerolog.Logger
}

// DefaultOptions returns the session start defaults.
func DefaultOptions() Options {
	return Options{
		Volume:           DefaultVolume,
		RestartThreshold: DefaultRestartThreshold,
		Logger:           zerolog.Nop(),
	}
}

// Engine owns the playback state for a session.
//
// It is not safe for concurrent use: every method, HandleEvent included,
// runs on the UI loop. Navigation never fails; operations that have nothing
// to act on are no-ops.
type Engine struct {
	lib       *library.Library
	lists     PlaylistSource
	transport transport.Transport
	log       zerolog.Logger
	rnd       *rand.Rand
	restartAt float64

	state   State
	current library.Song
	token   transport.Token

	subs   []*Subscription
	closed bool
}

// New creates an engine driving t. The initial volume is applied to the
// transport immediately.
func New(lib *library.Library, lists PlaylistSource, t transport.Transport, opts Options) *Engine {
	if lib == nil {
		lib = library.New()
	}
	if opts.RestartThreshold <= 0 {
		opts.RestartThreshold = DefaultRestartThreshold
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1|1)) //nolint:gosec // shuffle only
	}
	e := &Engine{
		lib:       lib,
		lists:     lists,
		transport: t,
		log:       opts.Logger.With().Str("component", "playback").Logger(),
		rnd:       opts.Rand,
		restartAt: opts.RestartThreshold,
		state: State{
			Volume: clampVolume(opts.Volume),
			Repeat: RepeatOff,
		},
	}
	e.transport.SetVolume(e.state.EffectiveVolume())
	return e
}

// State returns a copy of the current playback state.
func (e *Engine) State() State {
	return e.state.clone()
}

// CurrentSong returns the song last issued to the transport.
func (e *Engine) CurrentSong() (library.Song, bool) {
	if e.state.CurrentSongID == nil {
		return library.Song{}, false
	}
	return e.current, true
}

// Library returns the song library the engine navigates.
func (e *Engine) Library() *library.Library {
	return e.lib
}

// Queue resolves the songs eligible for next/previous under the active scope.
func (e *Engine) Queue() []library.Song {
	var lists []playlists.Playlist
	if e.lists != nil {
		lists = e.lists.Playlists()
	}
	return queue.Resolve(e.state.ActiveScope, e.lib.Songs(), lists)
}

// SelectScope changes the navigation context. The current song is kept.
func (e *Engine) SelectScope(scope queue.Scope) {
	e.state.ActiveScope = scope
}

// ClearScopeIf resets the scope to the whole library when the given playlist
// is the active scope. Call it after deleting a playlist.
func (e *Engine) ClearScopeIf(playlistID string) bool {
	if e.state.ActiveScope.IsLibrary() || e.state.ActiveScope.PlaylistID() != playlistID {
		return false
	}
	e.state.ActiveScope = queue.LibraryScope
	return true
}

// PlaySong loads song and starts it from the beginning. The song does not
// need to be part of the resolved queue.
func (e *Engine) PlaySong(song library.Song) {
	e.token++
	id := song.ID
	e.current = song
	e.state.CurrentSongID = &id
	e.state.Position = 0
	e.state.Duration = 0

	e.transport.Load(song.AudioRef, e.token)
	e.transport.Play()

	e.log.Debug().Int("song", song.ID).Uint64("token", uint64(e.token)).Msg("play song")
	e.notifyTrack(song)
	e.setPlaying(true)
}

// TogglePlayPause flips between playing and paused.
func (e *Engine) TogglePlayPause() {
	if e.state.CurrentSongID == nil {
		return
	}
	if e.state.IsPlaying {
		e.transport.Pause()
	} else {
		e.transport.Play()
	}
	e.setPlaying(!e.state.IsPlaying)
}

// Play resumes a paused song.
func (e *Engine) Play() {
	if e.state.CurrentSongID != nil && !e.state.IsPlaying {
		e.TogglePlayPause()
	}
}

// Pause pauses a playing song.
func (e *Engine) Pause() {
	if e.state.CurrentSongID != nil && e.state.IsPlaying {
		e.TogglePlayPause()
	}
}

// Next advances to the following song of the resolved queue, or to a random
// other song when shuffling. The queue wraps whatever the repeat mode.
func (e *Engine) Next() {
	if e.state.CurrentSongID == nil {
		return
	}
	q := e.Queue()
	if len(q) == 0 {
		return
	}

	i := queue.IndexOf(q, *e.state.CurrentSongID)
	var target int
	if e.state.Shuffle {
		target = queue.PickRandom(e.rnd, len(q), i)
	} else {
		target = queue.NextIndex(i, len(q))
	}
	e.PlaySong(q[target])
}

// Previous restarts the current song once it has played past the restart
// threshold, and otherwise steps back one song in the resolved queue.
func (e *Engine) Previous() {
	if e.state.CurrentSongID == nil {
		return
	}
	if e.state.Position > e.restartAt {
		e.restart()
		return
	}
	q := e.Queue()
	if len(q) == 0 {
		return
	}

	i := queue.IndexOf(q, *e.state.CurrentSongID)
	e.PlaySong(q[queue.PrevIndex(i, len(q))])
}

func (e *Engine) restart() {
	e.state.Position = 0
	e.transport.SetPosition(0)
	e.notifyPosition(0)
}

// Seek moves to seconds. The position is updated before the transport
// confirms it; range checks are left to the caller. Non-finite values and
// seeks with no current song are ignored.
func (e *Engine) Seek(seconds float64) {
	if e.state.CurrentSongID == nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return
	}
	e.state.Position = seconds
	e.transport.SetPosition(seconds)
	e.notifyPosition(seconds)
}

// SeekBy moves relative to the current position, clamped to the song.
func (e *Engine) SeekBy(delta float64) {
	target := max(0, e.state.Position+delta)
	if e.state.Duration > 0 {
		target = min(target, e.state.Duration)
	}
	e.Seek(target)
}

// SetVolume sets the volume, clamped to [0, 1], and unmutes.
func (e *Engine) SetVolume(v float64) {
	if math.IsNaN(v) {
		return
	}
	e.state.Volume = clampVolume(v)
	e.state.Muted = false
	e.applyVolume()
}

// ToggleMute flips the mute flag. The volume level is kept.
func (e *Engine) ToggleMute() {
	e.state.Muted = !e.state.Muted
	e.applyVolume()
}

// ToggleShuffle flips shuffle. Playback is not affected.
func (e *Engine) ToggleShuffle() {
	e.SetShuffle(!e.state.Shuffle)
}

// SetShuffle enables or disables shuffle.
func (e *Engine) SetShuffle(enabled bool) {
	if e.state.Shuffle == enabled {
		return
	}
	e.state.Shuffle = enabled
	e.notifyMode()
}

// CycleRepeatMode advances off, all, one, off.
func (e *Engine) CycleRepeatMode() RepeatMode {
	e.SetRepeatMode(e.state.Repeat.Next())
	return e.state.Repeat
}

// SetRepeatMode sets the repeat mode.
func (e *Engine) SetRepeatMode(mode RepeatMode) {
	if e.state.Repeat == mode {
		return
	}
	e.state.Repeat = mode
	e.notifyMode()
}

// HandleEvent applies a transport event. Events carrying a token other than
// the one of the last Load are stale and dropped.
func (e *Engine) HandleEvent(ev transport.Event) {
	if ev.Token != e.token || e.state.CurrentSongID == nil {
		e.log.Debug().
			Stringer("kind", ev.Kind).
			Uint64("token", uint64(ev.Token)).
			Uint64("current", uint64(e.token)).
			Msg("dropping stale transport event")
		return
	}

	switch ev.Kind {
	case transport.EventTimeUpdate:
		if isFinite(ev.Seconds) {
			e.state.Position = ev.Seconds
		}
	case transport.EventDurationKnown:
		if isFinite(ev.Seconds) && ev.Seconds >= 0 {
			e.state.Duration = ev.Seconds
			e.notifyDuration(ev.Seconds)
		}
	case transport.EventPlayed:
		e.setPlaying(true)
	case transport.EventPaused:
		e.setPlaying(false)
	case transport.EventEnded:
		e.onEnded()
	case transport.EventFailed:
		e.log.Warn().Err(ev.Err).Int("song", e.current.ID).Str("ref", e.current.AudioRef).Msg("transport failed")
		e.setPlaying(false)
	}
}

func (e *Engine) onEnded() {
	e.setPlaying(false)
	if e.state.Repeat == RepeatOne {
		e.PlaySong(e.current)
		return
	}
	e.Next()
}

// Subscribe creates a new event subscription.
func (e *Engine) Subscribe() *Subscription {
	sub := newSubscription()
	if e.closed {
		sub.close()
		return sub
	}
	e.subs = append(e.subs, sub)
	return sub
}

// Close ends all subscriptions. The transport is owned by the caller.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	for _, sub := range e.subs {
		sub.close()
	}
	e.subs = nil
}

func (e *Engine) setPlaying(playing bool) {
	if e.state.IsPlaying == playing {
		return
	}
	e.state.IsPlaying = playing
	for _, sub := range e.subs {
		send(sub.statusCh, StatusChange{Playing: playing})
	}
}

func (e *Engine) applyVolume() {
	e.transport.SetVolume(e.state.EffectiveVolume())
	for _, sub := range e.subs {
		send(sub.volumeCh, VolumeChange{Volume: e.state.Volume, Muted: e.state.Muted})
	}
}

func (e *Engine) notifyTrack(song library.Song) {
	for _, sub := range e.subs {
		send(sub.trackCh, TrackChange{Song: song})
	}
}

func (e *Engine) notifyPosition(pos float64) {
	for _, sub := range e.subs {
		send(sub.positionCh, PositionChange{Position: pos})
	}
}

func (e *Engine) notifyDuration(d float64) {
	for _, sub := range e.subs {
		send(sub.durationCh, DurationChange{Duration: d})
	}
}

func (e *Engine) notifyMode() {
	for _, sub := range e.subs {
		send(sub.modeCh, ModeChange{Repeat: e.state.Repeat, Shuffle: e.state.Shuffle})
	}
}

func clampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultVolume
	}
	return max(0, min(v, 1))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
