package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/cadence/internal/kv"
	"github.com/llehouerou/cadence/internal/playlists"
)

const appName = "cadence"

type Config struct {
	LibrarySources []string `koanf:"library_sources"` // paths to scan for music library
	MPRIS          *bool    `koanf:"mpris"`           // expose the player on D-Bus (default: true)
	Notifications  bool     `koanf:"notifications"`   // desktop notification on track change
	Icons          string   `koanf:"icons"`           // "nerd", "unicode" (default), or "none"

	Storage  StorageConfig  `koanf:"storage"`
	Playback PlaybackConfig `koanf:"playback"`
	Log      LogConfig      `koanf:"log"`
}

// StorageConfig selects where the playlist collection is persisted.
type StorageConfig struct {
	Backend       string `koanf:"backend"` // "sqlite" (default), "redis", "postgres", "memory"
	Path          string `koanf:"path"`    // sqlite database file
	Key           string `koanf:"key"`     // key the snapshot is stored under
	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db"`
	PostgresDSN   string `koanf:"postgres_dsn"`
}

// PlaybackConfig holds session start defaults for the engine.
type PlaybackConfig struct {
	Volume                  *float64 `koanf:"volume"`                    // 0.0-1.0 (default: 0.7)
	RestartThresholdSeconds float64  `koanf:"restart_threshold_seconds"` // previous restarts past this (default: 3)
}

// LogConfig configures the log sink.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error"
	File  string `koanf:"file"`  // log file, "stderr" for console output
}

// Load reads the default config files in order of priority (last wins).
func Load() (*Config, error) {
	return load(getConfigPaths())
}

// LoadFrom reads a single explicit config file, which must exist.
func LoadFrom(path string) (*Config, error) {
	path = expandPath(path)
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	return load([]string{path})
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "load %s", path)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	// Expand ~ in library_sources
	for i, src := range cfg.LibrarySources {
		cfg.LibrarySources[i] = expandPath(src)
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if cfg.Storage.Path != "" {
		cfg.Storage.Path = expandPath(cfg.Storage.Path)
	}
	if cfg.Log.File != "" && cfg.Log.File != "stderr" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/cadence/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// MPRISEnabled returns true unless remote control was disabled.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// KVOptions returns the storage backend options.
func (c *Config) KVOptions() kv.Options {
	return kv.Options{
		Backend:       c.Storage.Backend,
		Path:          c.Storage.Path,
		RedisAddr:     c.Storage.RedisAddr,
		RedisPassword: c.Storage.RedisPassword,
		RedisDB:       c.Storage.RedisDB,
		PostgresDSN:   c.Storage.PostgresDSN,
	}
}

// StorageKey returns the key the playlist snapshot is stored under.
func (c *Config) StorageKey() string {
	if k := strings.TrimSpace(c.Storage.Key); k != "" {
		return k
	}
	return playlists.DefaultKey
}

// Volume returns the initial volume with the default applied.
func (c *Config) Volume() float64 {
	v := c.Playback.Volume
	if v == nil || math.IsNaN(*v) {
		return 0.7
	}
	return max(0, min(*v, 1))
}

// RestartThreshold returns the seconds after which previous restarts the
// current song.
func (c *Config) RestartThreshold() float64 {
	if t := c.Playback.RestartThresholdSeconds; t > 0 {
		return t
	}
	return 3
}
