package orbsort

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orb-sort/internal/config"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort/engine"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort/levels"
	"github.com/vovakirdan/orb-sort/internal/logging"
)

// RandomLevelID names the board dealt from the board config section.
const RandomLevelID = "random"

// Settings configures the games created by the registry factories.
type Settings struct {
	Config  config.OrbSortConfig
	Levels  []levels.Level // Empty means the embedded set
	LevelID string         // Empty means board.shuffle or the default level
	Logger  *log.Logger
}

// Package-level settings, read by every Reset.
var (
	settingsMu sync.RWMutex
	settings   = Settings{Config: config.DefaultOrbSortConfig()}
)

// Configure replaces the package settings.
func Configure(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

// SetLevel selects the level played by the next Reset.
func SetLevel(id string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings.LevelID = id
}

// CurrentSettings returns a copy of the package settings.
func CurrentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// RandomLevel builds the shuffled level described by the config.
func RandomLevel(cfg config.OrbSortConfig) levels.Level {
	return levels.Level{
		ID:       RandomLevelID,
		Name:     "Random",
		Capacity: cfg.Rules.Capacity,
		Shuffle: &levels.Shuffle{
			Colors:     cfg.Board.Colors,
			EmptyTubes: cfg.Board.EmptyTubes,
		},
	}
}

// ResolveLevel picks the level named by the settings.
func ResolveLevel(s Settings) (levels.Level, error) {
	id := s.LevelID
	if id == "" && s.Config.Board.Shuffle {
		id = RandomLevelID
	}
	if id == RandomLevelID {
		return RandomLevel(s.Config), nil
	}
	if id == "" {
		id = levels.DefaultLevelID
	}

	lvls := s.Levels
	if len(lvls) == 0 {
		builtin, err := levels.Builtin()
		if err != nil {
			return levels.Level{}, err
		}
		lvls = builtin
	}
	return levels.Find(lvls, id)
}

// Rules returns the engine options for a variant playing a level.
// The classic variant ignores the configured rules.
func Rules(v Variant, cfg config.OrbSortConfig, lvl levels.Level) engine.Options {
	opts := engine.ClassicOptions()
	if v != VariantClassic {
		opts = engine.Options{
			BatchMoves:           cfg.Rules.BatchMoves,
			RequireFullTubeToWin: cfg.Rules.RequireFullTube,
		}
	}
	opts.Capacity = lvl.Capacity
	return opts
}

func (s Settings) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.Discard()
}
