// Package levels provides level loading for orb sort.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/orb-sort/internal/games/orbsort/engine"
	"gopkg.in/yaml.v3"
)

// ErrNoBoard is returned for a level with neither tubes nor shuffle.
var ErrNoBoard = errors.New("levels: level has neither tubes nor shuffle")

// Shuffle describes a randomly dealt board.
type Shuffle struct {
	Colors     int
	EmptyTubes int
}

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Capacity int
	Tubes    engine.Layout // Fixed board; nil for shuffled levels
	Shuffle  *Shuffle
	Metadata map[string]string
	FilePath string // Empty for embedded levels
}

// yamlLevel represents the YAML structure for a level file.
type yamlLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Capacity int               `yaml:"capacity,omitempty"`
	Tubes    [][]string        `yaml:"tubes,omitempty"`
	Shuffle  *yamlShuffle      `yaml:"shuffle,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

type yamlShuffle struct {
	Colors     int `yaml:"colors"`
	EmptyTubes int `yaml:"empty_tubes"`
}

// Parse parses and validates a YAML level file.
func Parse(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, errors.New("levels: missing id")
	}

	capacity := yl.Capacity
	if capacity <= 0 {
		capacity = engine.DefaultCapacity
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Capacity: capacity,
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = yl.ID
	}

	if yl.Tubes != nil {
		level.Tubes = make(engine.Layout, len(yl.Tubes))
		for i, tube := range yl.Tubes {
			level.Tubes[i] = make([]engine.Color, 0, len(tube))
			for _, name := range tube {
				c, ok := engine.ParseColor(name)
				if !ok {
					return Level{}, fmt.Errorf("levels: %s: tube %d: unknown color %q", yl.ID, i, name)
				}
				level.Tubes[i] = append(level.Tubes[i], c)
			}
		}
	}
	if yl.Shuffle != nil {
		level.Shuffle = &Shuffle{Colors: yl.Shuffle.Colors, EmptyTubes: yl.Shuffle.EmptyTubes}
	}

	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

// Validate checks that the level describes exactly one board and that a
// fixed board conserves capacity tokens per color.
func (l Level) Validate() error {
	switch {
	case l.Tubes == nil && l.Shuffle == nil:
		return fmt.Errorf("%w: %s", ErrNoBoard, l.ID)
	case l.Tubes != nil && l.Shuffle != nil:
		return fmt.Errorf("levels: %s: tubes and shuffle are mutually exclusive", l.ID)
	}

	if l.Shuffle != nil {
		if l.Shuffle.Colors < 1 || l.Shuffle.Colors > int(engine.ColorCount) {
			return fmt.Errorf("levels: %s: shuffle colors %d outside [1, %d]", l.ID, l.Shuffle.Colors, engine.ColorCount)
		}
		if l.Shuffle.EmptyTubes < 0 {
			return fmt.Errorf("levels: %s: negative empty tube count", l.ID)
		}
		return nil
	}

	if err := l.Tubes.Validate(l.Capacity); err != nil {
		return fmt.Errorf("levels: %s: %w", l.ID, err)
	}
	if err := l.Tubes.CheckBalanced(l.Capacity); err != nil {
		return fmt.Errorf("levels: %s: %w", l.ID, err)
	}
	return nil
}

// Layout returns the board for a new round. Fixed levels always return a
// copy of the same layout; shuffled levels deal from rng.
func (l Level) Layout(rng *rand.Rand) (engine.Layout, error) {
	if l.Shuffle != nil {
		return engine.Shuffled(rng, l.Shuffle.Colors, l.Capacity, l.Shuffle.EmptyTubes)
	}
	if l.Tubes == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoBoard, l.ID)
	}
	return l.Tubes.Clone(), nil
}

// TubeCount returns the number of tubes on the board.
func (l Level) TubeCount() int {
	if l.Shuffle != nil {
		return l.Shuffle.Colors + l.Shuffle.EmptyTubes
	}
	return len(l.Tubes)
}

// ColorCount returns the number of distinct colors on the board.
func (l Level) ColorCount() int {
	if l.Shuffle != nil {
		return l.Shuffle.Colors
	}
	return len(l.Tubes.ColorCounts())
}

// Shuffled reports whether the board is dealt at random.
func (l Level) Shuffled() bool {
	return l.Shuffle != nil
}
