// Package keymap defines key bindings and resolves key presses to actions.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionHelp        Action = "help"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionToggleMute    Action = "toggle_mute"
	ActionToggleShuffle Action = "toggle_shuffle"
	ActionCycleRepeat   Action = "cycle_repeat"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Selection/activation actions
	ActionSelect Action = "select" // enter: play song or select scope

	// Playlist management actions
	ActionAddToPlaylist      Action = "add_to_playlist"
	ActionRemoveFromPlaylist Action = "remove_from_playlist"
	ActionNewPlaylist        Action = "new_playlist"
	ActionRenamePlaylist     Action = "rename_playlist"
	ActionDeletePlaylist     Action = "delete_playlist"
)
