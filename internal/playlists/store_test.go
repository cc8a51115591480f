package playlists

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cadence/internal/kv"
)

var testNow = time.Date(2025, 3, 14, 15, 9, 26, 535_000_000, time.UTC)

// newTestStore opens a store over an in-memory kv with a frozen clock.
func newTestStore(t *testing.T) (*Store, *kv.Memory) {
	t.Helper()
	mem := kv.NewMemory()
	s := Open(context.Background(), mem, "", zerolog.Nop())
	s.now = func() time.Time { return testNow }
	s.rnd = rand.New(rand.NewPCG(1, 2))
	return s, mem
}

// failingKV fails every operation.
type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingKV) Set(context.Context, string, []byte) error   { return errors.New("disk gone") }
func (failingKV) Close() error                                 { return nil }

func TestOpen_EmptyStorage(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, s.Playlists())
	assert.Equal(t, uint64(0), s.Revision())
}

func TestOpen_CorruptSnapshotYieldsEmpty(t *testing.T) {
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(context.Background(), DefaultKey, []byte("{not json")))

	s := Open(context.Background(), mem, DefaultKey, zerolog.Nop())
	assert.Empty(t, s.Playlists())
}

func TestOpen_StorageErrorYieldsEmpty(t *testing.T) {
	s := Open(context.Background(), failingKV{}, DefaultKey, zerolog.Nop())
	assert.Empty(t, s.Playlists())
}

func TestCreate(t *testing.T) {
	s, _ := newTestStore(t)

	p, ok := s.Create("  Road Trip  ", " summer ")
	require.True(t, ok)

	assert.Equal(t, "Road Trip", p.Name)
	assert.Equal(t, "summer", p.Description)
	assert.Equal(t, "1741964966535", p.ID)
	assert.Contains(t, CoverGlyphs, p.CoverGlyph)
	assert.Empty(t, p.SongIDs)
	assert.True(t, p.CreatedAt.Equal(testNow))
	assert.Len(t, s.Playlists(), 1)
	assert.Equal(t, uint64(1), s.Revision())
}

func TestCreate_BlankNameIsNoop(t *testing.T) {
	s, mem := newTestStore(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, ok := s.Create(name, "desc")
		assert.False(t, ok, "Create(%q)", name)
	}
	assert.Empty(t, s.Playlists())
	assert.Equal(t, uint64(0), s.Revision())

	_, err := mem.Get(context.Background(), DefaultKey)
	assert.ErrorIs(t, err, kv.ErrNotFound, "no-op must not persist")
}

func TestCreate_UniqueIDsWithinSameMillisecond(t *testing.T) {
	s, _ := newTestStore(t)

	a, _ := s.Create("a", "")
	b, _ := s.Create("b", "")
	c, _ := s.Create("c", "")

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, b.ID, c.ID)
	assert.Equal(t, []string{"a", "b", "c"}, names(s.Playlists()))
}

func TestCreate_IDsContinueAfterReload(t *testing.T) {
	s, mem := newTestStore(t)
	first, _ := s.Create("first", "")

	reopened := Open(context.Background(), mem, DefaultKey, zerolog.Nop())
	reopened.now = func() time.Time { return testNow }
	second, _ := reopened.Create("second", "")

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreate_DoesNotMutatePreviousSnapshot(t *testing.T) {
	s, _ := newTestStore(t)
	s.Create("a", "")
	before := s.Playlists()

	s.Create("b", "")

	assert.Len(t, before, 1)
	assert.Len(t, s.Playlists(), 2)
}

func TestDelete(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.Create("a", "")
	b, _ := s.Create("b", "")

	assert.True(t, s.Delete(a.ID))
	assert.Equal(t, []string{"b"}, names(s.Playlists()))

	assert.False(t, s.Delete("nope"))
	_, ok := s.Get(a.ID)
	assert.False(t, ok)
	_, ok = s.Get(b.ID)
	assert.True(t, ok)
}

func TestRename(t *testing.T) {
	s, _ := newTestStore(t)
	p, _ := s.Create("old", "desc")
	rev := s.Revision()

	assert.False(t, s.Rename(p.ID, "   "))
	assert.False(t, s.Rename("missing", "new"))
	assert.Equal(t, rev, s.Revision())

	assert.True(t, s.Rename(p.ID, " new "))
	got, _ := s.Get(p.ID)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, "desc", got.Description)
	assert.Equal(t, p.CoverGlyph, got.CoverGlyph)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
}

func TestAddSong_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	p, _ := s.Create("p", "")

	assert.True(t, s.AddSong(p.ID, 5))
	once, _ := s.Get(p.ID)
	rev := s.Revision()

	assert.False(t, s.AddSong(p.ID, 5))
	twice, _ := s.Get(p.ID)

	assert.Equal(t, once.SongIDs, twice.SongIDs)
	assert.Equal(t, []int{5}, twice.SongIDs)
	assert.Equal(t, rev, s.Revision())
}

func TestAddSong_AppendsInAdditionOrder(t *testing.T) {
	s, _ := newTestStore(t)
	p, _ := s.Create("p", "")

	s.AddSong(p.ID, 3)
	s.AddSong(p.ID, 1)
	s.AddSong(p.ID, 2)

	got, _ := s.Get(p.ID)
	assert.Equal(t, []int{3, 1, 2}, got.SongIDs)
}

func TestAddSong_UnknownPlaylist(t *testing.T) {
	s, _ := newTestStore(t)
	assert.False(t, s.AddSong("missing", 1))
}

func TestRemoveThenAdd_MovesToEnd(t *testing.T) {
	s, _ := newTestStore(t)
	p, _ := s.Create("p", "")
	s.AddSong(p.ID, 1)
	s.AddSong(p.ID, 2)
	s.AddSong(p.ID, 3)

	assert.True(t, s.RemoveSong(p.ID, 1))
	assert.True(t, s.AddSong(p.ID, 1))

	got, _ := s.Get(p.ID)
	assert.Equal(t, []int{2, 3, 1}, got.SongIDs)
}

func TestRemoveSong_Noops(t *testing.T) {
	s, _ := newTestStore(t)
	p, _ := s.Create("p", "")
	s.AddSong(p.ID, 1)
	rev := s.Revision()

	assert.False(t, s.RemoveSong(p.ID, 99))
	assert.False(t, s.RemoveSong("missing", 1))
	assert.Equal(t, rev, s.Revision())
}

func TestMutation_DoesNotAliasPreviousSongIDs(t *testing.T) {
	s, _ := newTestStore(t)
	p, _ := s.Create("p", "")
	s.AddSong(p.ID, 1)
	before, _ := s.Get(p.ID)

	s.AddSong(p.ID, 2)
	s.RemoveSong(p.ID, 1)

	assert.Equal(t, []int{1}, before.SongIDs)
}

func TestMutations_Persist(t *testing.T) {
	s, mem := newTestStore(t)
	p, _ := s.Create("Mix", "late night")
	s.AddSong(p.ID, 4)
	s.AddSong(p.ID, 2)
	s.Rename(p.ID, "Night Mix")

	reopened := Open(context.Background(), mem, DefaultKey, zerolog.Nop())

	require.Len(t, reopened.Playlists(), 1)
	got := reopened.Playlists()[0]
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Night Mix", got.Name)
	assert.Equal(t, "late night", got.Description)
	assert.Equal(t, []int{4, 2}, got.SongIDs)
	assert.True(t, got.CreatedAt.Equal(testNow))
}

func TestMutations_WriteFailureKeepsInMemoryState(t *testing.T) {
	s := Open(context.Background(), failingKV{}, DefaultKey, zerolog.Nop())

	p, ok := s.Create("still here", "")
	require.True(t, ok)
	assert.True(t, s.AddSong(p.ID, 1))

	got, _ := s.Get(p.ID)
	assert.Equal(t, []int{1}, got.SongIDs)
}

func names(items []Playlist) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Name
	}
	return out
}
