// Package orbsort provides the orb sort puzzle game: colored orbs are
// moved between tubes until every tube holds a single color.
package orbsort

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orb-sort/internal/core"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort/engine"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort/levels"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort/solver"
	"github.com/vovakirdan/orb-sort/internal/registry"
)

// Variant selects the rule set.
type Variant string

const (
	// VariantBatch moves whole same-color runs and wins on sorted tubes.
	VariantBatch Variant = "orbsort"
	// VariantClassic moves one orb at a time and wins on full sorted tubes.
	VariantClassic Variant = "orbsort_classic"
)

const (
	hintSearchLimit = 50_000
	messageDuration = 120 // Ticks a status message stays visible
)

// Game implements the orb sort puzzle.
type Game struct {
	variant  Variant
	fixed    *Settings // Explicit settings; nil reads the package settings
	settings Settings
	logger   *log.Logger

	rng      *rand.Rand
	seed     int64
	tick     uint64
	tickRate int
	round    int

	level   levels.Level
	engine  *engine.Engine
	loadErr error

	cursor  int
	flights []Flight
	hint    *engine.Move

	message      string
	messageTicks int

	ticks    int // Unpaused ticks this round
	score    int
	won      bool
	paused   bool
	tooSmall bool

	// Screen dimensions
	screenW int
	screenH int
}

func init() {
	registry.Register(string(VariantBatch), func() registry.Game {
		return New(VariantBatch)
	})
	registry.Register(string(VariantClassic), func() registry.Game {
		return New(VariantClassic)
	})
}

// New creates a game that reads the package settings on every Reset.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// NewWithSettings creates a game bound to explicit settings.
func NewWithSettings(v Variant, s Settings) *Game {
	return &Game{variant: v, fixed: &s}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Orb Sort (Classic)"
	}
	return "Orb Sort"
}

// Description returns a one-line summary of the rules.
func (g *Game) Description() string {
	if g.variant == VariantClassic {
		return "Move one orb at a time; fill every tube with one color"
	}
	return "Pour same-color runs; sort every color into its own tube"
}

// Reset initializes the game for the configured level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.fixed != nil {
		g.settings = *g.fixed
	} else {
		g.settings = CurrentSettings()
	}
	g.logger = g.settings.logger().With("game", g.ID())

	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.round = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	level, err := ResolveLevel(g.settings)
	if err != nil {
		g.fail(fmt.Errorf("orbsort: %w", err))
		return
	}
	g.level = level
	g.startRound()
}

// startRound deals the current level again and clears round state.
func (g *Game) startRound() {
	g.round++
	g.cursor = 0
	g.flights = nil
	g.hint = nil
	g.message = ""
	g.messageTicks = 0
	g.ticks = 0
	g.score = 0
	g.won = false
	g.paused = false

	layout, err := g.level.Layout(g.rng)
	if err != nil {
		g.fail(fmt.Errorf("orbsort: level %s: %w", g.level.ID, err))
		return
	}
	eng, err := engine.NewWithLayout(Rules(g.variant, g.settings.Config, g.level), layout)
	if err != nil {
		g.fail(fmt.Errorf("orbsort: level %s: %w", g.level.ID, err))
		return
	}
	g.engine = eng
	g.loadErr = nil
	g.checkScreenSize()

	g.logger.Info("round started",
		"level", g.level.ID,
		"round", g.round,
		"tubes", eng.TubeCount(),
		"capacity", eng.Capacity(),
	)
	g.logBoard("initial board")
}

// fail records a setup error; the game renders it and ignores input.
func (g *Game) fail(err error) {
	g.engine = nil
	g.loadErr = err
	g.logger.Error("cannot start round", "error", err)
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW, minH := g.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts the game to a new screen size without restarting the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.engine != nil {
		g.checkScreenSize()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.advanceFlights()
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}
	if !g.won {
		g.ticks++
	}

	if in.Has(core.ActionDump) {
		g.logger.Info("board dump", "level", g.level.ID, "moves", g.engine.Moves(), "board", "\n"+g.engine.String())
	}

	// Any key restarts once the win banner is up
	if g.won {
		if !g.animating() && wantsRestart(in) {
			g.startRound()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		before := g.State()
		g.logger.Info("round restarted", "level", g.level.ID, "moves", before.Moves)
		g.startRound()
		return core.StepResult{State: before, Finished: before.Moves > 0}
	}

	if in.Has(core.ActionLeft) {
		g.moveCursor(-1)
	}
	if in.Has(core.ActionRight) {
		g.moveCursor(1)
	}
	if in.Has(core.ActionHint) {
		g.showHint()
	}

	// Selections wait until every orb has landed
	if g.animating() {
		return core.StepResult{State: g.State()}
	}

	if col, ok := in.Picked(); ok {
		if col >= g.engine.TubeCount() {
			return core.StepResult{State: g.State()}
		}
		g.cursor = col
		return g.selectTube(col)
	}
	if in.Has(core.ActionSelect) {
		return g.selectTube(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

// wantsRestart reports input that dismisses the win banner.
func wantsRestart(in core.InputFrame) bool {
	if _, ok := in.Picked(); ok {
		return true
	}
	for _, a := range []core.Action{
		core.ActionSelect, core.ActionRestart, core.ActionLeft, core.ActionRight, core.ActionHint,
	} {
		if in.Has(a) {
			return true
		}
	}
	return false
}

// moveCursor moves the tube cursor, wrapping at both ends.
func (g *Game) moveCursor(delta int) {
	n := g.engine.TubeCount()
	g.cursor = ((g.cursor+delta)%n + n) % n
}

// selectTube feeds a tube pick to the engine and reacts to the result.
func (g *Game) selectTube(i int) core.StepResult {
	res, err := g.engine.SelectTube(i)
	if err != nil {
		g.logger.Warn("tube selection failed", "tube", i, "error", err)
		return core.StepResult{State: g.State()}
	}

	switch res.Kind {
	case engine.ResultSelected:
		g.logger.Debug("tube selected", "tube", i)
	case engine.ResultDeselected:
		g.logger.Debug("tube deselected", "tube", i)
	case engine.ResultMoveRejected:
		g.logger.Debug("move rejected", "target", i, "reason", res.Reason)
		g.say(rejectMessage(res.Reason))
	case engine.ResultMoveExecuted:
		g.hint = nil
		g.launch(res.Move)
		g.logger.Debug("move", "move", res.Move.String(), "moves", g.engine.Moves())
		g.logBoard("board after move")

		if res.Won {
			g.won = true
			g.score = g.settings.Config.Scoring.Score(g.engine.Moves())
			g.message = ""
			g.logger.Info("board solved",
				"level", g.level.ID,
				"moves", g.engine.Moves(),
				"seconds", g.ticks/g.tickRate,
				"score", g.score,
			)
			return core.StepResult{State: g.State(), Finished: true}
		}
	}

	return core.StepResult{State: g.State()}
}

// showHint runs the solver from the current position.
func (g *Game) showHint() {
	move, ok, err := solver.Hint(g.engine.Tubes(), g.engine.Options(), solver.Limits{MaxStates: hintSearchLimit})
	switch {
	case errors.Is(err, solver.ErrUnsolvable):
		g.hint = nil
		g.say("No solution from here. Press R to restart")
	case err != nil:
		g.hint = nil
		g.say("No hint found")
	case ok:
		g.hint = &move
		g.say(fmt.Sprintf("Hint: tube %d → tube %d", move.Source+1, move.Target+1))
	}
	g.logger.Debug("hint requested", "found", ok, "error", err)
}

// say shows a status message for a while.
func (g *Game) say(msg string) {
	g.message = msg
	g.messageTicks = messageDuration
}

func rejectMessage(r engine.RejectReason) string {
	switch r {
	case engine.RejectTargetFull:
		return "That tube is full"
	case engine.RejectColorMismatch:
		return "Colors don't match"
	case engine.RejectSourceEmpty:
		return "Nothing to move"
	default:
		return "Can't move there"
	}
}

// logBoard writes the tube contents at debug level.
func (g *Game) logBoard(msg string) {
	g.logger.Debug(msg, "level", g.level.ID, "board", "\n"+g.engine.String())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	moves := 0
	if g.engine != nil {
		moves = g.engine.Moves()
	}
	return core.GameState{
		Score:    g.score,
		Moves:    moves,
		Ticks:    g.ticks,
		GameOver: g.won,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall,
	}
}

// LevelID returns the ID of the level being played.
func (g *Game) LevelID() string {
	return g.level.ID
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Seed returns the seed of the last Reset.
func (g *Game) Seed() int64 {
	return g.seed
}

// Err returns the setup error, if the level could not be loaded.
func (g *Game) Err() error {
	return g.loadErr
}
