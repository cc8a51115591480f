// Package main provides the cadence terminal player entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/cadence/internal/app"
	"github.com/llehouerou/cadence/internal/config"
	"github.com/llehouerou/cadence/internal/errmsg"
	"github.com/llehouerou/cadence/internal/icons"
	"github.com/llehouerou/cadence/internal/kv"
	"github.com/llehouerou/cadence/internal/library"
	"github.com/llehouerou/cadence/internal/logger"
	"github.com/llehouerou/cadence/internal/mpris"
	"github.com/llehouerou/cadence/internal/notify"
	"github.com/llehouerou/cadence/internal/playback"
	"github.com/llehouerou/cadence/internal/playlists"
	"github.com/llehouerou/cadence/internal/stderr"
	"github.com/llehouerou/cadence/internal/transport"
)

var (
	cli        = kingpin.New("cadence", "Terminal music player with playlists")
	configPath = cli.Flag("config", "Path to config file (default: XDG config, then ./config.toml)").Short('c').String()
	verbose    = cli.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = cli.Flag("logfile", `Path to log file, or "stderr"`).String()
	sources    = cli.Flag("library", "Music folder to scan (repeatable, overrides config)").Short('l').Strings()
	noMPRIS    = cli.Flag("no-mpris", "Do not register the MPRIS D-Bus service").Bool()
)

func main() {
	kingpin.MustParse(cli.Parse(os.Args[1:]))

	if err := run(); err != nil {
		zlog.Error().Err(err).Msg("cadence exited with error")
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

// run wires the application together. Keeping it separate from main lets
// the deferred cleanups run on every exit path.
func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logCfg := logger.Config{Level: cfg.Log.Level, File: cfg.Log.File}
	if *verbose {
		logCfg.Level = "debug"
	}
	if *logfile != "" {
		logCfg.File = *logfile
	}
	logCloser, err := logger.Init(logCfg)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	defer logCloser.Close()
	log := zlog.Logger

	if len(*sources) > 0 {
		cfg.LibrarySources = *sources
	}
	lib, err := library.Scan(cfg.LibrarySources)
	if err != nil {
		return errors.Wrap(err, "scan library")
	}
	log.Info().Int("songs", lib.Len()).Strs("sources", cfg.LibrarySources).Msg("library loaded")

	ctx := context.Background()
	store, err := kv.Open(ctx, cfg.KVOptions())
	if err != nil {
		return errors.Wrap(err, "open storage")
	}
	defer store.Close()
	lists := playlists.Open(ctx, store, cfg.StorageKey(), log)

	// Capture fd 2 before the audio backend starts so ALSA noise stays
	// out of the UI. Console logging owns stderr, so nothing is captured then.
	var stderrLines <-chan string
	if !strings.EqualFold(logCfg.File, logger.Stderr) {
		if capture, err := stderr.Start(); err != nil {
			log.Warn().Err(err).Msg("stderr capture unavailable")
		} else {
			defer capture.Stop()
			stderrLines = capture.Lines()
		}
	}

	tr := transport.NewBeep()
	defer tr.Close()

	opts := playback.DefaultOptions()
	opts.Volume = cfg.Volume()
	opts.RestartThreshold = cfg.RestartThreshold()
	opts.Logger = log
	engine := playback.New(lib, lists, tr, opts)
	defer engine.Close()

	icons.Init(cfg.Icons)
	model := app.New(app.Deps{
		Engine: engine,
		Store:  lists,
		Events: tr.Events(),
		Stderr: stderrLines,
		Logger: log,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if cfg.MPRISEnabled() && !*noMPRIS {
		post := func(c playback.Command) { p.Send(app.CommandMsg(c)) }
		adapter, err := mpris.New(engine, post, log)
		if err != nil {
			log.Warn().Err(err).Msg("MPRIS unavailable")
		} else {
			defer adapter.Close()
		}
	}

	if cfg.Notifications {
		notifier, err := notify.New()
		if err != nil {
			log.Warn().Err(err).Msg("desktop notifications unavailable")
		} else {
			np := notify.NewNowPlaying(notifier, log)
			go np.Run(engine.Subscribe())
			defer np.Stop()
		}
	}

	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run program")
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if *configPath != "" {
		cfg, err := config.LoadFrom(*configPath)
		return cfg, errors.Wrapf(err, "load config %s", *configPath)
	}
	cfg, err := config.Load()
	return cfg, errors.Wrap(err, "load config")
}
