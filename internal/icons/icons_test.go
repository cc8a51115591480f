package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init("") })

	tests := []struct {
		style string
		want  Icons
	}{
		{"nerd", nerdIcons},
		{"unicode", unicodeIcons},
		{"none", noneIcons},
		{"", unicodeIcons},
		{"bogus", unicodeIcons},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			assert.Equal(t, tt.want, current)
		})
	}
}

func TestAccessors(t *testing.T) {
	t.Cleanup(func() { Init("") })
	Init("none")

	assert.Equal(t, ">", Play())
	assert.Equal(t, "||", Pause())
	assert.Equal(t, "vol", Volume(false))
	assert.Equal(t, "mute", Volume(true))
	assert.Equal(t, "[S]", Shuffle())
	assert.Equal(t, "[R]", Repeat(false))
	assert.Equal(t, "[1]", Repeat(true))
	assert.Equal(t, "*", Library())
}

func TestStylesAreComplete(t *testing.T) {
	for name, set := range map[string]Icons{"nerd": nerdIcons, "unicode": unicodeIcons, "none": noneIcons} {
		for _, glyph := range []string{set.Play, set.Pause, set.Volume, set.Muted, set.Shuffle, set.RepeatAll, set.RepeatOne, set.Library} {
			assert.NotEmpty(t, glyph, name)
		}
	}
}
