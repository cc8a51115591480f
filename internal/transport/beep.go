package transport

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const (
	outputSampleRate = beep.SampleRate(44100)
	resampleQuality  = 4
	tickInterval     = 250 * time.Millisecond
	eventBufferSize  = 64
)

// Beep plays local files through the system speaker.
//
// The speaker callback and the position ticker run on their own goroutines;
// all shared fields are guarded by mu and stream fields additionally by the
// speaker lock while audio is being pulled.
type Beep struct {
	mu       sync.Mutex
	token    Token
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	level    float64
	playing  bool
	ended    bool

	speakerReady bool
	events       chan Event
	done         chan struct{}
	closeOnce    sync.Once
}

// NewBeep creates a speaker transport. The speaker itself is initialized on
// the first Load so that a session without playback never opens the device.
func NewBeep() *Beep {
	b := &Beep{
		level:  1,
		events: make(chan Event, eventBufferSize),
		done:   make(chan struct{}),
	}
	go b.tickLoop()
	return b
}

func (b *Beep) Events() <-chan Event { return b.events }

// Load stops the current track and prepares ref paused at position 0.
func (b *Beep) Load(ref string, token Token) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopLocked()
	b.token = token

	streamer, format, err := decode(ref)
	if err != nil {
		b.emit(Event{Kind: EventFailed, Token: token, Err: err})
		return
	}

	if !b.speakerReady {
		if err := speaker.Init(outputSampleRate, outputSampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			b.emit(Event{Kind: EventFailed, Token: token, Err: errors.Wrap(err, "init speaker")})
			return
		}
		b.speakerReady = true
	}

	b.streamer = streamer
	b.format = format
	b.ended = false
	b.ctrl = &beep.Ctrl{Streamer: streamer, Paused: true}

	var s beep.Streamer = b.ctrl
	if format.SampleRate != outputSampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, outputSampleRate, s)
	}
	b.volume = &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   levelToVolume(b.level),
		Silent:   b.level <= 0,
	}

	b.emit(Event{Kind: EventDurationKnown, Token: token, Seconds: format.SampleRate.D(streamer.Len()).Seconds()})
	b.startLocked()
}

// startLocked hands the current stream to the speaker followed by the end callback.
func (b *Beep) startLocked() {
	token := b.token
	speaker.Play(beep.Seq(b.volume, beep.Callback(func() {
		// Runs under the speaker lock; b.mu must not be taken here.
		go b.finish(token)
	})))
}

func (b *Beep) finish(token Token) {
	b.mu.Lock()
	if b.token == token {
		b.ended = true
		b.playing = false
	}
	b.mu.Unlock()
	b.emit(Event{Kind: EventEnded, Token: token})
}

func (b *Beep) Play() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctrl == nil {
		return
	}
	if b.ended {
		// The sequence finished; rewind and hand it to the speaker again.
		speaker.Lock()
		_ = b.streamer.Seek(0)
		speaker.Unlock()
		b.ended = false
		b.startLocked()
	}
	speaker.Lock()
	b.ctrl.Paused = false
	speaker.Unlock()
	b.playing = true
	b.emit(Event{Kind: EventPlayed, Token: b.token})
}

func (b *Beep) Pause() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctrl == nil {
		return
	}
	speaker.Lock()
	b.ctrl.Paused = true
	speaker.Unlock()
	b.playing = false
	b.emit(Event{Kind: EventPaused, Token: b.token})
}

// SetPosition seeks within the current track, clamped to its bounds.
func (b *Beep) SetPosition(seconds float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.streamer == nil || math.IsNaN(seconds) {
		return
	}

	pos := b.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	pos = max(0, min(pos, b.streamer.Len()-1))

	speaker.Lock()
	err := b.streamer.Seek(pos)
	speaker.Unlock()
	if err != nil {
		b.emit(Event{Kind: EventFailed, Token: b.token, Err: errors.Wrap(err, "seek")})
		return
	}
	b.emit(Event{Kind: EventTimeUpdate, Token: b.token, Seconds: b.format.SampleRate.D(pos).Seconds()})
}

// SetVolume sets the output level (0.0 to 1.0).
func (b *Beep) SetVolume(level float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = max(0, min(level, 1))
	if b.volume == nil {
		return
	}
	speaker.Lock()
	b.volume.Volume = levelToVolume(b.level)
	b.volume.Silent = b.level <= 0
	speaker.Unlock()
}

// Close stops playback and the ticker. Pending events are discarded.
func (b *Beep) Close() error {
	b.closeOnce.Do(func() {
		close(b.done)
		b.mu.Lock()
		b.stopLocked()
		b.mu.Unlock()
	})
	return nil
}

func (b *Beep) stopLocked() {
	if b.speakerReady {
		speaker.Clear()
	}
	if b.streamer != nil {
		b.streamer.Close()
		b.streamer = nil
	}
	b.ctrl = nil
	b.volume = nil
	b.playing = false
	b.ended = false
}

// tickLoop reports the position of a playing track at a fixed interval.
func (b *Beep) tickLoop() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-b.done:
			return
		case <-ticker.C:
			b.mu.Lock()
			if b.playing && b.streamer != nil {
				speaker.Lock()
				pos := b.format.SampleRate.D(b.streamer.Position())
				speaker.Unlock()
				b.emitTick(Event{Kind: EventTimeUpdate, Token: b.token, Seconds: pos.Seconds()})
			}
			b.mu.Unlock()
		}
	}
}

// emit delivers lifecycle events. When the buffer is full the send is moved
// off the caller so a command issued from the consumer never blocks on itself.
func (b *Beep) emit(e Event) {
	select {
	case b.events <- e:
	default:
		go func() {
			select {
			case b.events <- e:
			case <-b.done:
			}
		}()
	}
}

// emitTick drops position updates when the consumer lags; the next tick supersedes them.
func (b *Beep) emitTick(e Event) {
	select {
	case b.events <- e:
	default:
	}
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, errors.Wrap(err, "open")
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, errors.Newf("unsupported format: %s", ext)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	return streamer, format, nil
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale where Volume is in "decibels" with base 2.
// Volume = 0 means no change, -1 = half volume, -2 = quarter, etc.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}

// Verify Beep implements Transport at compile time.
var _ Transport = (*Beep)(nil)
