package orbsort

import "github.com/vovakirdan/orb-sort/internal/games/orbsort/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StateWon         GameStateType = "won"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateError       GameStateType = "error"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Round    int
	Level    string
	Board    engine.Layout
	Selected int // -1 when nothing is selected
	Cursor   int
	Moves    int
	Flights  int // Orbs still in the air
	Score    int
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Round:    g.round,
		Level:    g.level.ID,
		Selected: -1,
		Cursor:   g.cursor,
		Flights:  len(g.flights),
		Score:    g.score,
	}

	if g.engine == nil {
		snap.State = StateError
		return snap
	}

	snap.Board = g.engine.Layout()
	snap.Moves = g.engine.Moves()
	if sel, ok := g.engine.Selection(); ok {
		snap.Selected = sel
	}

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.paused:
		snap.State = StatePaused
	case g.animating():
		snap.State = StateAnimating
	case g.won:
		snap.State = StateWon
	default:
		snap.State = StatePlaying
	}
	return snap
}
