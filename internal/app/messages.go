// Package app contains the terminal UI: the bubbletea model, its messages
// and the controller that ties the playlist store to the playback engine.
package app

import (
	"github.com/llehouerou/cadence/internal/playback"
	"github.com/llehouerou/cadence/internal/transport"
)

// TransportEventMsg carries one transport event into the Update loop.
// Closed is set once the transport's event channel is closed.
type TransportEventMsg struct {
	Event  transport.Event
	Closed bool
}

// StderrMsg carries a line written to stderr by a C library.
type StderrMsg struct {
	Line string
}

// CommandMsg is a remote-control command posted with tea.Program.Send.
type CommandMsg playback.Command

// promptCreate and promptRename identify what a name prompt is for.
type (
	promptCreate struct{}
	promptRename struct{ id string }
)

// confirmDelete identifies the playlist a delete confirmation is for.
type confirmDelete struct{ id, name string }
