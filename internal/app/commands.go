package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cadence/internal/transport"
)

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// waitForTransport delivers the next transport event. It is re-issued
// after every event so the mailbox is drained one message at a time.
func waitForTransport(ch <-chan transport.Event) tea.Cmd {
	return waitForChannel(ch, func(e transport.Event, ok bool) tea.Msg {
		return TransportEventMsg{Event: e, Closed: !ok}
	})
}

// waitForStderr delivers the next captured stderr line. A closed channel
// ends the wait.
func waitForStderr(ch <-chan string) tea.Cmd {
	return waitForChannel(ch, func(line string, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	})
}
