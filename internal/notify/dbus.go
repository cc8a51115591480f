//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	notifyDest      = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyInterface = "org.freedesktop.Notifications"

	appName    = "Cadence"
	urgencyLow = byte(0)
)

type dbusNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without one, notifications are
// silently dropped.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nopNotifier{}, nil //nolint:nilerr // no session bus, nothing to show
	}
	return &dbusNotifier{obj: conn.Object(notifyDest, notifyPath)}, nil
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	call := n.obj.Call(
		notifyInterface+".Notify",
		0,
		appName,
		notif.ReplacesID,
		notif.Icon,
		notif.Title,
		notif.Body,
		[]string{},
		trackHints(notif),
		notif.Timeout,
	)
	if call.Err != nil {
		return 0, call.Err
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	return n.obj.Call(notifyInterface+".CloseNotification", 0, id).Err
}

// trackHints marks the notification as quiet: the player is already
// making sound.
func trackHints(notif Notification) map[string]dbus.Variant {
	hints := map[string]dbus.Variant{
		"urgency":        dbus.MakeVariant(urgencyLow),
		"desktop-entry":  dbus.MakeVariant("cadence"),
		"suppress-sound": dbus.MakeVariant(true),
	}
	if notif.Transient {
		hints["transient"] = dbus.MakeVariant(true)
	}
	return hints
}
