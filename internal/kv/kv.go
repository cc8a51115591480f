// Package kv provides the durable key-value surface the playlist store persists into.
package kv

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kv: key not found")

// Store is a minimal durable key-value store.
// Values are opaque byte snapshots; each Set replaces the previous value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Backend       string
	Path          string // sqlite database file; empty means the XDG data location
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PostgresDSN   string
}

// Open creates the store for the configured backend.
// An empty backend means SQLite.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		return OpenSQLite(opts.Path)
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
	case BackendPostgres:
		return OpenPostgres(ctx, opts.PostgresDSN)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, errors.Newf("unknown storage backend: %q", opts.Backend)
	}
}
