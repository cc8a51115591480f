package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cadence/internal/kv"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/music", filepath.Join(home, "music")},
		{"tilde with nested path", "~/music/library/albums", filepath.Join(home, "music", "library", "albums")},
		{"absolute path unchanged", "/usr/local/music", "/usr/local/music"},
		{"relative path unchanged", "music/albums", "music/albums"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join("cadence", "config.toml"), filepath.Join(filepath.Base(filepath.Dir(paths[0])), filepath.Base(paths[0])))
	assert.Equal(t, "config.toml", paths[1], "working directory config must come last")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFrom(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := writeConfig(t, `
library_sources = ["~/Music", "/srv/music"]
mpris = false
notifications = true
icons = "nerd"

[storage]
backend = " Redis "
key = "myPlaylists"
redis_addr = "localhost:6379"
redis_db = 2

[playback]
volume = 0.4
restart_threshold_seconds = 5

[log]
level = "debug"
file = "stderr"
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(home, "Music"), "/srv/music"}, cfg.LibrarySources)
	assert.False(t, cfg.MPRISEnabled())
	assert.True(t, cfg.Notifications)
	assert.Equal(t, "nerd", cfg.Icons)
	assert.Equal(t, "myPlaylists", cfg.StorageKey())
	assert.InDelta(t, 0.4, cfg.Volume(), 1e-9)
	assert.InDelta(t, 5.0, cfg.RestartThreshold(), 1e-9)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.File)

	opts := cfg.KVOptions()
	assert.Equal(t, kv.BackendRedis, opts.Backend)
	assert.Equal(t, "localhost:6379", opts.RedisAddr)
	assert.Equal(t, 2, opts.RedisDB)
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Empty(t, cfg.LibrarySources)
	assert.True(t, cfg.MPRISEnabled())
	assert.False(t, cfg.Notifications)
	assert.Equal(t, "musicPlaylists", cfg.StorageKey())
	assert.InDelta(t, 0.7, cfg.Volume(), 1e-9)
	assert.InDelta(t, 3.0, cfg.RestartThreshold(), 1e-9)
	assert.Empty(t, cfg.KVOptions().Backend)
}

func TestLoadFrom_ExplicitZeroVolumeKept(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, "[playback]\nvolume = 0.0\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.Volume())
}

func TestLoadFrom_VolumeClamped(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, "[playback]\nvolume = 4.0\n"))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cfg.Volume(), 1e-9)
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	_, err := LoadFrom(writeConfig(t, "library_sources = [unterminated"))
	require.Error(t, err)
}

func TestLoad_ReadsWorkingDirectoryConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`library_sources = ["/cwd/music"]`), 0o644))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.LibrarySources, "/cwd/music")
}
