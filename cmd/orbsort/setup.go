package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/orb-sort/internal/config"
	"github.com/vovakirdan/orb-sort/internal/core"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort/levels"
	"github.com/vovakirdan/orb-sort/internal/logging"
	"github.com/vovakirdan/orb-sort/internal/storage"
)

const defaultLogFile = "~/.orbsort/orbsort.log"

// env is what every command needs: logger, config and levels.
type env struct {
	logger   *log.Logger
	settings orbsort.Settings
	closeLog func() error
}

// setup builds the logger and loads config and levels.
// Interactive commands log to --log-file since Bubble Tea owns the terminal.
func setup(interactive bool) (*env, error) {
	opts := logging.Options{Level: flagLogLevel}
	if interactive {
		opts.File = flagLogFile
	}
	logger, closeLog, err := logging.New(opts)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrbSort(flagConfig, logger)
	if err != nil {
		closeLog()
		return nil, err
	}

	lvls, err := levels.All(levels.DefaultDir(), logger)
	if err != nil {
		logger.Warn("user levels unavailable, using embedded set", "error", err)
		if lvls, err = levels.Builtin(); err != nil {
			closeLog()
			return nil, err
		}
	}

	logger.Debug("setup complete", "levels", len(lvls), "capacity", cfg.Rules.Capacity)

	s := orbsort.Settings{
		Config: cfg,
		Levels: lvls,
		Logger: logger,
	}
	orbsort.Configure(s)

	return &env{logger: logger, settings: s, closeLog: closeLog}, nil
}

func (e *env) close() {
	//nolint:errcheck // Nothing useful to do on exit
	e.closeLog()
}

// openStore opens the score database. Playing works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newSeed returns the --seed value, or a time-based seed.
func newSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
