package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	TrackChanged    <-chan TrackChange
	StatusChanged   <-chan StatusChange
	PositionChanged <-chan PositionChange
	DurationChanged <-chan DurationChange
	ModeChanged     <-chan ModeChange
	VolumeChanged   <-chan VolumeChange
	Done            <-chan struct{}

	trackCh    chan TrackChange
	statusCh   chan StatusChange
	positionCh chan PositionChange
	durationCh chan DurationChange
	modeCh     chan ModeChange
	volumeCh   chan VolumeChange
	doneCh     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		trackCh:    make(chan TrackChange, eventBufferSize),
		statusCh:   make(chan StatusChange, eventBufferSize),
		positionCh: make(chan PositionChange, eventBufferSize),
		durationCh: make(chan DurationChange, eventBufferSize),
		modeCh:     make(chan ModeChange, eventBufferSize),
		volumeCh:   make(chan VolumeChange, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.TrackChanged = s.trackCh
	s.StatusChanged = s.statusCh
	s.PositionChanged = s.positionCh
	s.DurationChanged = s.durationCh
	s.ModeChanged = s.modeCh
	s.VolumeChanged = s.volumeCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// send delivers e without blocking; it is dropped if the buffer is full.
func send[T any](ch chan T, e T) {
	select {
	case ch <- e:
	default:
	}
}
