package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orb-sort/internal/games/orbsort"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort/engine"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort/solver"
)

var (
	flagSolveLevel  string
	flagSolveSingle bool
	flagMaxStates   int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print an optimal solution for a level",
	Long: `Deal a level, search for the shortest solution and replay it through
the rules engine, printing every move and the final board.

Shuffled levels are dealt with --seed, so the same seed prints the same
board the game would deal on its first round.

Examples:
  orbsort solve
  orbsort solve --level 02_three_colors
  orbsort solve --level random --seed 7
  orbsort solve --single --max-states 2000000`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagSolveLevel, "level", "", "Level ID (default: the default level)")
	solveCmd.Flags().BoolVar(&flagSolveSingle, "single", false, "Classic rules: one orb per move, full tubes win")
	solveCmd.Flags().IntVar(&flagMaxStates, "max-states", solver.DefaultMaxStates, "Give up after expanding this many states")
}

func runSolve(_ *cobra.Command, _ []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.close()

	s := e.settings
	s.LevelID = flagSolveLevel
	level, err := orbsort.ResolveLevel(s)
	if err != nil {
		return err
	}

	variant := orbsort.VariantBatch
	if flagSolveSingle {
		variant = orbsort.VariantClassic
	}
	opts := orbsort.Rules(variant, s.Config, level)

	seed := newSeed()
	layout, err := level.Layout(rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("level %s: %w", level.ID, err)
	}
	eng, err := engine.NewWithLayout(opts, layout)
	if err != nil {
		return fmt.Errorf("level %s: %w", level.ID, err)
	}

	fmt.Printf("Level: %s (%s)", level.Name, level.ID)
	if level.Shuffled() {
		fmt.Printf(", seed %d", seed)
	}
	fmt.Println()
	fmt.Println()
	fmt.Print(eng.String())
	fmt.Println()

	e.logger.Debug("solving", "level", level.ID, "batch", opts.BatchMoves, "max_states", flagMaxStates)
	sol, err := solver.Solve(layout, opts, solver.Limits{MaxStates: flagMaxStates})
	switch {
	case errors.Is(err, solver.ErrUnsolvable):
		fmt.Println("No solution exists for this board.")
		return nil
	case errors.Is(err, solver.ErrSearchLimit):
		return fmt.Errorf("no solution found within %d states; raise --max-states", flagMaxStates)
	case err != nil:
		return err
	}

	if sol.Len() == 0 {
		fmt.Println("Already solved.")
		return nil
	}

	fmt.Printf("Solution: %d moves (%d states explored)\n", sol.Len(), sol.Explored)
	fmt.Println()
	for i, m := range sol.Moves {
		if err := replay(eng, m); err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
		fmt.Printf("  %3d. tube %d → tube %d  (%d × %s)\n", i+1, m.Source+1, m.Target+1, m.Count, m.Color)
	}

	fmt.Println()
	fmt.Print(eng.String())
	if !eng.IsWon() {
		return errors.New("replayed solution did not solve the board")
	}
	fmt.Println()
	fmt.Println("Solved.")
	return nil
}

// replay feeds a move to the engine as two tube selections.
func replay(eng *engine.Engine, m engine.Move) error {
	if _, err := eng.SelectTube(m.Source); err != nil {
		return err
	}
	res, err := eng.SelectTube(m.Target)
	if err != nil {
		return err
	}
	if res.Kind != engine.ResultMoveExecuted || res.Move != m {
		return fmt.Errorf("engine did %s, reason %s", res.Kind, res.Reason)
	}
	return nil
}
