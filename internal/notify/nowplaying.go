package notify

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/llehouerou/cadence/internal/library"
	"github.com/llehouerou/cadence/internal/playback"
)

// nowPlayingTimeout is how long a track notification stays up, in ms.
const nowPlayingTimeout = 5000

// NowPlaying posts a desktop notification whenever the current song
// changes. Each notification replaces the previous one.
type NowPlaying struct {
	notifier Notifier
	log      zerolog.Logger
	done     chan struct{}
	once     sync.Once

	mu      sync.Mutex // guards lastID and stopped
	lastID  uint32
	stopped bool
}

// NewNowPlaying creates a track-change notifier.
func NewNowPlaying(n Notifier, log zerolog.Logger) *NowPlaying {
	return &NowPlaying{
		notifier: n,
		log:      log.With().Str("component", "notify").Logger(),
		done:     make(chan struct{}),
	}
}

// Run shows a notification for every track change on sub. It blocks until
// the subscription ends or Stop is called.
func (p *NowPlaying) Run(sub *playback.Subscription) {
	for {
		select {
		case <-p.done:
			return
		case <-sub.Done:
			return
		case e := <-sub.TrackChanged:
			p.show(e.Song)
		}
	}
}

// Stop ends Run and dismisses the last notification. Nothing is posted
// once Stop returns, even if Run is still draining an event.
func (p *NowPlaying) Stop() {
	p.once.Do(func() {
		close(p.done)
		p.mu.Lock()
		defer p.mu.Unlock()
		p.stopped = true
		if p.lastID != 0 {
			_ = p.notifier.Close(p.lastID)
		}
	})
}

func (p *NowPlaying) show(song library.Song) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	id, err := p.notifier.Notify(trackNotification(song, p.lastID))
	if err != nil {
		p.log.Debug().Err(err).Int("song", song.ID).Msg("track notification failed")
		return
	}
	p.lastID = id
}

func trackNotification(song library.Song, replaces uint32) Notification {
	body := song.Artist
	if song.Album != "" {
		if body != "" {
			body += " - "
		}
		body += song.Album
	}
	icon := library.CoverArtPath(song.AudioRef)
	if icon == "" {
		icon = "audio-x-generic"
	}
	return Notification{
		Title:      song.Title,
		Body:       body,
		Icon:       icon,
		Timeout:    nowPlayingTimeout,
		ReplacesID: replaces,
		Transient:  true,
	}
}
