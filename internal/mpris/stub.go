//go:build !linux

package mpris

import (
	"github.com/rs/zerolog"

	"github.com/llehouerou/cadence/internal/playback"
)

// Poster forwards a command to the goroutine that owns the engine.
type Poster func(playback.Command)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ *playback.Engine, _ Poster, _ zerolog.Logger) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
