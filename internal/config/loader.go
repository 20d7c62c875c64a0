package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/orb-sort/internal/logging"
)

// ConfigFile is the configuration file name searched in config directories.
const ConfigFile = "orbsort.yaml"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// LoadOrbSort loads orb sort configuration.
// Search order: customPath -> ~/.orbsort/configs/orbsort.yaml -> ./configs/orbsort.yaml -> embedded default
// A bad custom file is an error; a bad file further down is reported to
// logger (which may be nil) and skipped.
func LoadOrbSort(customPath string, logger *log.Logger) (OrbSortConfig, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return OrbSortConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return OrbSortConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parse(data)
		if err != nil {
			logger.Warn("ignoring config file", "path", path, "error", err)
			continue
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultOrbSortYAML)
	if err != nil {
		return DefaultOrbSortConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the hard-coded defaults, so a partial
// file only overrides the keys it names, then validates the result.
func parse(data []byte) (OrbSortConfig, error) {
	cfg := DefaultOrbSortConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return OrbSortConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return OrbSortConfig{}, err
	}
	return cfg, nil
}

// Validate enforces sane ranges.
func (c OrbSortConfig) Validate() error {
	switch {
	case c.Rules.Capacity < 1 || c.Rules.Capacity > 12:
		return fmt.Errorf("%w: rules.capacity %d outside [1, 12]", ErrInvalidConfig, c.Rules.Capacity)
	case c.Board.Colors < 1 || c.Board.Colors > 8:
		return fmt.Errorf("%w: board.colors %d outside [1, 8]", ErrInvalidConfig, c.Board.Colors)
	case c.Board.EmptyTubes < 0 || c.Board.EmptyTubes > 4:
		return fmt.Errorf("%w: board.empty_tubes %d outside [0, 4]", ErrInvalidConfig, c.Board.EmptyTubes)
	case c.Animation.LiftTicks < 0 || c.Animation.TravelTicks < 0 ||
		c.Animation.DropTicks < 0 || c.Animation.StaggerTicks < 0:
		return fmt.Errorf("%w: animation ticks must not be negative", ErrInvalidConfig)
	case c.Scoring.MovePenalty < 0 || c.Scoring.MinScore < 0:
		return fmt.Errorf("%w: scoring values must not be negative", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to a user config file.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns the per-user data directory (~/.orbsort).
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".orbsort")
}
