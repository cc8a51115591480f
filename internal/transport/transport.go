// Package transport defines the media transport the playback engine drives,
// with a beep-backed implementation for local files and a test double.
package transport

// Token identifies one Load. Every event carries the token of the load it
// pertains to so the engine can discard events for a track it already left.
type Token uint64

// EventKind enumerates transport lifecycle events.
type EventKind int

const (
	EventTimeUpdate    EventKind = iota // Position advanced (Seconds)
	EventDurationKnown                  // Duration decoded (Seconds)
	EventEnded                          // Reached the end of the track
	EventPlayed                         // Output started or resumed
	EventPaused                         // Output paused
	EventFailed                         // Load or decode failed (Err)
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventTimeUpdate:
		return "time_update"
	case EventDurationKnown:
		return "duration_known"
	case EventEnded:
		return "ended"
	case EventPlayed:
		return "played"
	case EventPaused:
		return "paused"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is a transport notification.
type Event struct {
	Kind    EventKind
	Token   Token
	Seconds float64
	Err     error
}

// Transport is the decode/output capability.
//
// Commands return immediately; their outcome is reported through Events.
// Events may arrive in any order relative to later commands.
type Transport interface {
	Load(ref string, token Token)
	Play()
	Pause()
	SetPosition(seconds float64)
	SetVolume(level float64)
	Events() <-chan Event
	Close() error
}
