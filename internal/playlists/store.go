package playlists

import (
	"context"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/llehouerou/cadence/internal/kv"
)

// DefaultKey is the storage key the collection snapshot is written under.
const DefaultKey = "musicPlaylists"

// Store owns the playlist collection.
//
// Every mutation replaces the whole collection with a new slice and writes
// the snapshot to durable storage. Invalid input (blank names, unknown IDs,
// duplicate songs) is ignored and leaves both the snapshot and Revision
// untouched. Snapshots returned by Playlists must be treated as read-only.
type Store struct {
	kv  kv.Store
	key string
	log zerolog.Logger

	items    []Playlist
	revision uint64
	lastID   int64

	now func() time.Time
	rnd *rand.Rand
}

// Open loads the collection from storage.
// Missing or corrupt data yields an empty collection; the failure is logged.
func Open(ctx context.Context, store kv.Store, key string, log zerolog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{
		kv:    store,
		key:   key,
		log:   log.With().Str("component", "playlists").Logger(),
		items: []Playlist{},
		now:   time.Now,
		rnd:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)), //nolint:gosec // cover choice only
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, kv.ErrNotFound) {
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("load playlists")
		return
	}

	items, err := Decode(data)
	if err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt playlist snapshot")
		return
	}
	s.items = items
	for _, p := range items {
		if n, err := strconv.ParseInt(p.ID, 10, 64); err == nil && n > s.lastID {
			s.lastID = n
		}
	}
	s.log.Debug().Int("count", len(items)).Msg("playlists loaded")
}

// Playlists returns the current snapshot in creation order.
func (s *Store) Playlists() []Playlist {
	return s.items
}

// Revision increments on every effective mutation.
// Consumers compare it to detect changes without diffing.
func (s *Store) Revision() uint64 {
	return s.revision
}

// Get returns the playlist with the given ID.
func (s *Store) Get(id string) (Playlist, bool) {
	return Find(s.items, id)
}

// Create appends a new playlist and returns it.
// A name that is blank after trimming is rejected.
func (s *Store) Create(name, description string) (Playlist, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Playlist{}, false
	}

	p := Playlist{
		ID:          s.nextID(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CoverGlyph:  CoverGlyphs[s.rnd.IntN(len(CoverGlyphs))],
		SongIDs:     []int{},
		CreatedAt:   s.now().UTC().Truncate(time.Millisecond),
	}

	next := make([]Playlist, len(s.items), len(s.items)+1)
	copy(next, s.items)
	s.commit(append(next, p))
	return p, true
}

// Delete removes the playlist. Callers holding it as the active playback
// scope are responsible for resetting that scope.
func (s *Store) Delete(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.commit(slices.Concat(s.items[:i], s.items[i+1:]))
	return true
}

// Rename replaces the playlist name.
func (s *Store) Rename(id, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return s.update(id, func(p *Playlist) bool {
		if p.Name == name {
			return false
		}
		p.Name = name
		return true
	})
}

// AddSong appends songID to the playlist unless it is already a member.
func (s *Store) AddSong(id string, songID int) bool {
	return s.update(id, func(p *Playlist) bool {
		if p.Has(songID) {
			return false
		}
		p.SongIDs = append(slices.Clone(p.SongIDs), songID)
		return true
	})
}

// RemoveSong drops songID from the playlist.
func (s *Store) RemoveSong(id string, songID int) bool {
	return s.update(id, func(p *Playlist) bool {
		if !p.Has(songID) {
			return false
		}
		p.SongIDs = slices.DeleteFunc(slices.Clone(p.SongIDs), func(v int) bool { return v == songID })
		return true
	})
}

// update applies fn to a copy of the playlist and commits when fn reports a change.
func (s *Store) update(id string, fn func(p *Playlist) bool) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	p := s.items[i]
	if !fn(&p) {
		return false
	}
	next := slices.Clone(s.items)
	next[i] = p
	s.commit(next)
	return true
}

func (s *Store) commit(items []Playlist) {
	s.items = items
	s.revision++
	s.persist()
}

// persist writes the whole snapshot. Failures are logged and not retried.
func (s *Store) persist() {
	data, err := Encode(s.items)
	if err != nil {
		s.log.Error().Err(err).Msg("encode playlists")
		return
	}
	if err := s.kv.Set(context.Background(), s.key, data); err != nil {
		s.log.Error().Err(err).Msg("save playlists")
	}
}

// nextID stamps the current time in milliseconds, bumped past the last
// issued ID so two creations in the same millisecond stay distinct.
func (s *Store) nextID() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(p Playlist) bool { return p.ID == id })
}
