package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

const numWorkers = 8

// Scan walks the source directories and builds a library from the music files found.
// Songs are ordered by artist, album, track number and path; IDs are assigned
// from 1 in that order so the same tree always yields the same IDs.
func Scan(sources []string) (*Library, error) {
	for _, src := range sources {
		if _, err := os.Stat(src); err != nil {
			return nil, errors.Wrapf(err, "library source %s", src)
		}
	}

	paths := discoverFiles(sources)
	infos := processFiles(paths)

	sort.SliceStable(infos, func(i, j int) bool {
		a, b := infos[i], infos[j]
		if c := compareFold(a.artist, b.artist); c != 0 {
			return c < 0
		}
		if c := compareFold(a.album, b.album); c != 0 {
			return c < 0
		}
		if a.track != b.track {
			return a.track < b.track
		}
		return a.path < b.path
	})

	songs := make([]Song, len(infos))
	for i, info := range infos {
		songs[i] = info.song(i + 1)
	}
	return New(songs...), nil
}

// discoverFiles walks the given source directories and returns all music files found.
// Duplicate paths (overlapping sources) are reported once.
func discoverFiles(sources []string) []string {
	seen := make(map[string]struct{})
	var files []string
	for _, src := range sources {
		_ = filepath.WalkDir(src, func(path string, d os.DirEntry, walkErr error) error {
			// Skip unreadable entries and keep scanning the rest of the tree
			if walkErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if d.IsDir() || !IsMusicFile(path) {
				return nil
			}
			if _, dup := seen[path]; dup {
				return nil
			}
			seen[path] = struct{}{}
			files = append(files, path)
			return nil
		})
	}
	return files
}

// processFiles reads metadata for the files in parallel.
// Files that cannot be opened are dropped.
func processFiles(paths []string) []*trackInfo {
	workCh := make(chan string, len(paths))
	resultCh := make(chan *trackInfo, len(paths))

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for path := range workCh {
				info, err := readTrackInfo(path)
				if err != nil {
					continue
				}
				resultCh <- info
			}
		})
	}

	for _, p := range paths {
		workCh <- p
	}
	close(workCh)
	wg.Wait()
	close(resultCh)

	infos := make([]*trackInfo, 0, len(paths))
	for info := range resultCh {
		infos = append(infos, info)
	}
	return infos
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
