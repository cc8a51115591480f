package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "navigator", "playlist"
}

// All contains all key bindings for dispatch and help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Switch pane", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"n"}, "Next song", "playback"},
	{ActionPrevTrack, []string{"p"}, "Previous song / restart", "playback"},
	{ActionSeekForward, []string{"right"}, "Seek +5s", "playback"},
	{ActionSeekBack, []string{"left"}, "Seek -5s", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionToggleMute, []string{"m"}, "Mute", "playback"},
	{ActionToggleShuffle, []string{"s"}, "Shuffle", "playback"},
	{ActionCycleRepeat, []string{"r"}, "Cycle repeat", "playback"},

	// Navigator
	{ActionMoveUp, []string{"k", "up"}, "Move up", "navigator"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "navigator"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "navigator"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "navigator"},
	{ActionSelect, []string{"enter"}, "Play song / select playlist", "navigator"},

	// Playlists
	{ActionAddToPlaylist, []string{"a"}, "Add song to highlighted playlist", "playlist"},
	{ActionRemoveFromPlaylist, []string{"x"}, "Remove song from playlist", "playlist"},
	{ActionNewPlaylist, []string{"c"}, "New playlist", "playlist"},
	{ActionRenamePlaylist, []string{"R"}, "Rename playlist", "playlist"},
	{ActionDeletePlaylist, []string{"D"}, "Delete playlist", "playlist"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range All {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}
