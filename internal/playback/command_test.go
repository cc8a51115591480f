package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	e, tr := newTestEngine(t, nil)
	e.PlaySong(songA)

	e.Apply(Command{Kind: CmdNext})
	assert.Equal(t, 2, currentID(t, e))

	e.Apply(Command{Kind: CmdPrevious})
	assert.Equal(t, 1, currentID(t, e))

	e.Apply(Command{Kind: CmdPause})
	assert.False(t, e.State().IsPlaying)
	e.Apply(Command{Kind: CmdPlay})
	assert.True(t, e.State().IsPlaying)
	e.Apply(Command{Kind: CmdToggle})
	assert.False(t, e.State().IsPlaying)

	e.Apply(Command{Kind: CmdSeekTo, Seconds: 30})
	e.Apply(Command{Kind: CmdSeekBy, Seconds: 5})
	assert.Equal(t, []float64{30, 35}, tr.Positions())

	e.Apply(Command{Kind: CmdSetVolume, Volume: 0.25})
	assert.InDelta(t, 0.25, e.State().Volume, 1e-9)

	e.Apply(Command{Kind: CmdSetShuffle, Shuffle: true})
	assert.True(t, e.State().Shuffle)

	e.Apply(Command{Kind: CmdSetRepeat, Repeat: RepeatOne})
	assert.Equal(t, RepeatOne, e.State().Repeat)

	before := e.State()
	e.Apply(Command{Kind: CommandKind(99)})
	assert.Equal(t, before, e.State())
}
