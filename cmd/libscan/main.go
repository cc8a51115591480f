// Command libscan scans music folders the way the player does and prints
// the resulting library, to check tags and ordering without the UI.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/cadence/internal/config"
	"github.com/llehouerou/cadence/internal/errmsg"
	"github.com/llehouerou/cadence/internal/library"
)

var (
	cli     = kingpin.New("libscan", "Scan music folders and list the songs found")
	sources = cli.Arg("folder", "Music folder to scan (default: library_sources from config)").Strings()
	genres  = cli.Flag("genres", "Print a per-genre count instead of the song list").Bool()
)

func main() {
	kingpin.MustParse(cli.Parse(os.Args[1:]))

	dirs := *sources
	if len(dirs) == 0 {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
			os.Exit(1)
		}
		dirs = cfg.LibrarySources
	}
	if len(dirs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no folder given and no library_sources configured")
		os.Exit(1)
	}

	start := time.Now()
	lib, err := library.Scan(dirs)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLibraryScan, err))
		os.Exit(1)
	}

	if *genres {
		printGenres(lib)
	} else {
		for _, s := range lib.Songs() {
			fmt.Printf("%5d  %s %s - %s [%s]\n", s.ID, s.CoverGlyph, s.Artist, s.Title, s.DurationLabel)
		}
	}
	fmt.Printf("\n%s songs from %s in %s\n",
		humanize.Comma(int64(lib.Len())), strings.Join(dirs, ", "), time.Since(start).Round(time.Millisecond))
}

func printGenres(lib *library.Library) {
	counts := make(map[string]int)
	var order []string
	for _, s := range lib.Songs() {
		g := s.Genre
		if g == "" {
			g = "(none)"
		}
		if counts[g] == 0 {
			order = append(order, g)
		}
		counts[g]++
	}
	for _, g := range order {
		fmt.Printf("%-24s %s %s\n", g, library.GlyphForGenre(g), humanize.Comma(int64(counts[g])))
	}
}
