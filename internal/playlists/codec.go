package playlists

import (
	"encoding/json"
	"strings"
)

// Encode serializes a whole collection snapshot.
// CreatedAt is written as an RFC 3339 timestamp.
func Encode(items []Playlist) ([]byte, error) {
	if items == nil {
		items = []Playlist{}
	}
	return json.Marshal(items)
}

// Decode parses a snapshot written by Encode.
// Entries without an ID are dropped and duplicate song IDs collapsed so a
// hand-edited snapshot cannot break the store's invariants.
func Decode(data []byte) ([]Playlist, error) {
	var raw []Playlist
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	items := make([]Playlist, 0, len(raw))
	for _, p := range raw {
		if strings.TrimSpace(p.ID) == "" {
			continue
		}
		p.SongIDs = dedupe(p.SongIDs)
		items = append(items, p)
	}
	return items, nil
}

func dedupe(ids []int) []int {
	out := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
