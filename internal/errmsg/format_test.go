package errmsg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{"nil error returns empty string", OpLibraryScan, nil, ""},
		{"library scan", OpLibraryScan, errors.New("permission denied"), "Failed to scan library: permission denied"},
		{"config", OpConfigLoad, errors.New("bad toml"), "Failed to load config: bad toml"},
		{"playback", OpPlaybackStart, errors.New("no audio device"), "Failed to play: no audio device"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.op, tt.err))
		})
	}
}

func TestFormatWith(t *testing.T) {
	err := errors.New("unsupported format")

	assert.Equal(t, "Failed to play 'Blue': unsupported format", FormatWith(OpPlaybackStart, "Blue", err))
	assert.Equal(t, "Failed to play: unsupported format", FormatWith(OpPlaybackStart, "", err))
	assert.Empty(t, FormatWith(OpPlaybackStart, "Blue", nil))
}
