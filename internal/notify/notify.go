// Package notify posts now-playing desktop notifications over D-Bus.
package notify

// Notification is one desktop notification.
type Notification struct {
	Title      string // summary line
	Body       string
	Icon       string // image path or themed icon name
	Timeout    int32  // ms; -1 lets the server decide
	ReplacesID uint32 // id of a notification to update in place
	Transient  bool   // skip the notification history
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns its id. A notifier without a
	// notification server returns 0 and no error.
	Notify(n Notification) (uint32, error)
	// Close dismisses a notification.
	Close(id uint32) error
}

// nopNotifier is used when no notification server is reachable.
type nopNotifier struct{}

func (nopNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (nopNotifier) Close(uint32) error { return nil }
