package mpris

import (
	"sync"
	"time"

	"github.com/llehouerou/cadence/internal/library"
	"github.com/llehouerou/cadence/internal/playback"
)

// snapshot is the part of the engine state exposed over D-Bus.
type snapshot struct {
	Song     library.Song
	HasSong  bool
	Playing  bool
	Duration float64
	Volume   float64
	Muted    bool
	Repeat   playback.RepeatMode
	Shuffle  bool
}

// mirror keeps a copy of the engine state for the D-Bus goroutines, which
// must not call into the engine. It is fed from an engine subscription.
type mirror struct {
	mu       sync.RWMutex
	snap     snapshot
	position float64   // seconds at anchor
	anchor   time.Time // when position was last known
	now      func() time.Time
}

func newMirror(st playback.State, song library.Song, hasSong bool) *mirror {
	m := &mirror{now: time.Now}
	m.snap = snapshot{
		Song:     song,
		HasSong:  hasSong,
		Playing:  st.IsPlaying,
		Duration: st.Duration,
		Volume:   st.Volume,
		Muted:    st.Muted,
		Repeat:   st.Repeat,
		Shuffle:  st.Shuffle,
	}
	m.position = st.Position
	m.anchor = m.now()
	return m
}

func (m *mirror) get() snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// Position extrapolates from the last known position while playing.
func (m *mirror) Position() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pos := m.position
	if m.snap.Playing {
		pos += m.now().Sub(m.anchor).Seconds()
	}
	if m.snap.Duration > 0 {
		pos = min(pos, m.snap.Duration)
	}
	return pos
}

// setPositionLocked re-anchors the position clock.
func (m *mirror) setPositionLocked(pos float64) {
	m.position = pos
	m.anchor = m.now()
}

func (m *mirror) onTrack(e playback.TrackChange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap.Song = e.Song
	m.snap.HasSong = true
	m.snap.Duration = 0
	m.setPositionLocked(0)
}

func (m *mirror) onStatus(e playback.StatusChange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap.Playing && !e.Playing {
		// Freeze the extrapolated position.
		m.position += m.now().Sub(m.anchor).Seconds()
	}
	m.snap.Playing = e.Playing
	m.anchor = m.now()
}

func (m *mirror) onPosition(e playback.PositionChange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setPositionLocked(e.Position)
}

func (m *mirror) onDuration(e playback.DurationChange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap.Duration = e.Duration
}

func (m *mirror) onMode(e playback.ModeChange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap.Repeat = e.Repeat
	m.snap.Shuffle = e.Shuffle
}

func (m *mirror) onVolume(e playback.VolumeChange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap.Volume = e.Volume
	m.snap.Muted = e.Muted
}

// follow applies subscription events until the subscription or done closes.
// The engine emits a track change before the status, position and duration
// events that follow it, so pending track changes are applied first.
func (m *mirror) follow(sub *playback.Subscription, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-sub.Done:
			return
		case e := <-sub.TrackChanged:
			m.onTrack(e)
		case e := <-sub.StatusChanged:
			m.flushTracks(sub)
			m.onStatus(e)
		case e := <-sub.PositionChanged:
			m.flushTracks(sub)
			m.onPosition(e)
		case e := <-sub.DurationChanged:
			m.flushTracks(sub)
			m.onDuration(e)
		case e := <-sub.ModeChanged:
			m.onMode(e)
		case e := <-sub.VolumeChanged:
			m.onVolume(e)
		}
	}
}

func (m *mirror) flushTracks(sub *playback.Subscription) {
	for {
		select {
		case e := <-sub.TrackChanged:
			m.onTrack(e)
		default:
			return
		}
	}
}

// artURL returns the file:// URL of the cover image next to audioRef, if any.
func artURL(audioRef string) string {
	if path := library.CoverArtPath(audioRef); path != "" {
		return "file://" + path
	}
	return ""
}
