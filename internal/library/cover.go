package library

import (
	"os"
	"path/filepath"
)

var (
	coverBases = []string{"cover", "folder", "album", "front"}
	coverExts  = []string{".jpg", ".png", ".jpeg"}
)

// CoverArtPath looks for an image next to a local audio file and returns
// its path, or "" when there is none. Earlier bases and extensions win.
func CoverArtPath(audioRef string) string {
	if audioRef == "" {
		return ""
	}
	dir := filepath.Dir(audioRef)
	for _, base := range coverBases {
		for _, ext := range coverExts {
			path := filepath.Join(dir, base+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}
