package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByContext(t *testing.T) {
	for _, ctx := range []string{"global", "playback", "navigator", "playlist"} {
		assert.NotEmpty(t, ByContext(ctx), ctx)
	}
	assert.Empty(t, ByContext("unknown"))
}

func TestAll_NoKeyBoundTwice(t *testing.T) {
	seen := map[string]Action{}
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestResolver(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionMoveUp, []string{"k", "up", "k"}, "Move up", "navigator"},
	})

	assert.Equal(t, ActionQuit, r.Resolve("ctrl+c"))
	assert.Equal(t, ActionPlayPause, r.Resolve(" "))
	assert.Equal(t, Action(""), r.Resolve("z"))
	assert.Equal(t, []string{"k", "up"}, r.KeysFor(ActionMoveUp))
	assert.Nil(t, r.KeysFor(ActionHelp))
}

func TestResolver_DefaultBindings(t *testing.T) {
	r := NewResolver(All)
	tests := map[string]Action{
		" ":     ActionPlayPause,
		"n":     ActionNextTrack,
		"p":     ActionPrevTrack,
		"left":  ActionSeekBack,
		"right": ActionSeekForward,
		"+":     ActionVolumeUp,
		"-":     ActionVolumeDown,
		"m":     ActionToggleMute,
		"s":     ActionToggleShuffle,
		"r":     ActionCycleRepeat,
		"enter": ActionSelect,
		"a":     ActionAddToPlaylist,
		"x":     ActionRemoveFromPlaylist,
		"c":     ActionNewPlaylist,
		"R":     ActionRenamePlaylist,
		"D":     ActionDeletePlaylist,
		"tab":   ActionSwitchFocus,
		"q":     ActionQuit,
	}
	for key, want := range tests {
		assert.Equal(t, want, r.Resolve(key), "key %q", key)
	}
}
