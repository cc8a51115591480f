package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	r := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer r.Close()

	exerciseStore(t, r)
}

func TestRedis_UsesPrefix(t *testing.T) {
	mr := miniredis.RunT(t)

	r := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer r.Close()

	require.NoError(t, r.Set(context.Background(), "musicPlaylists", []byte("[]")))

	v, err := mr.Get("cadence:musicPlaylists")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := Open(context.Background(), Options{Backend: BackendRedis, RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestOpenRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := OpenRedis(context.Background(), addr, "", 0)
	assert.Error(t, err)
}
