package config

import (
	_ "embed"
)

//go:embed defaults/orbsort.yaml
var defaultOrbSortYAML []byte

// DefaultOrbSortConfig returns the default orb sort configuration.
func DefaultOrbSortConfig() OrbSortConfig {
	return OrbSortConfig{
		Rules: RulesConfig{
			Capacity:        4,
			BatchMoves:      true,
			RequireFullTube: false,
		},
		Board: BoardConfig{
			Colors:     4,
			EmptyTubes: 2,
			Shuffle:    false,
		},
		Animation: AnimationConfig{
			LiftTicks:    4,
			TravelTicks:  8,
			DropTicks:    4,
			StaggerTicks: 3,
		},
		Scoring: ScoringConfig{
			Base:        1000,
			MovePenalty: 10,
			MinScore:    100,
		},
	}
}
