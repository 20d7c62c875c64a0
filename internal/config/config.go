// Package config provides YAML-based configuration loading for orb sort.
package config

// OrbSortConfig contains all configuration for the orb sort game.
type OrbSortConfig struct {
	Rules     RulesConfig     `yaml:"rules"`
	Board     BoardConfig     `yaml:"board"`
	Animation AnimationConfig `yaml:"animation"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// RulesConfig selects the rule variant.
type RulesConfig struct {
	Capacity        int  `yaml:"capacity"`          // Tokens per tube
	BatchMoves      bool `yaml:"batch_moves"`       // Move the whole top run instead of one token
	RequireFullTube bool `yaml:"require_full_tube"` // Sorted tubes must also be full to win
}

// BoardConfig describes the randomly dealt board.
type BoardConfig struct {
	Colors     int  `yaml:"colors"`
	EmptyTubes int  `yaml:"empty_tubes"`
	Shuffle    bool `yaml:"shuffle"` // Start on a dealt board instead of the default level
}

// AnimationConfig defines flight timing in ticks.
type AnimationConfig struct {
	LiftTicks    int `yaml:"lift_ticks"`    // Rise out of the source tube
	TravelTicks  int `yaml:"travel_ticks"`  // Move across to the target column
	DropTicks    int `yaml:"drop_ticks"`    // Fall into the target tube
	StaggerTicks int `yaml:"stagger_ticks"` // Delay between tokens of one batch
}

// ScoringConfig defines how a solved board is scored.
type ScoringConfig struct {
	Base        int `yaml:"base"`
	MovePenalty int `yaml:"move_penalty"`
	MinScore    int `yaml:"min_score"`
}

// Score returns the score for a board solved in the given number of moves.
func (s ScoringConfig) Score(moves int) int {
	return max(s.MinScore, s.Base-moves*s.MovePenalty)
}

// FlightTicks returns the ticks one token spends in flight.
func (a AnimationConfig) FlightTicks() int {
	return a.LiftTicks + a.TravelTicks + a.DropTicks
}
