package solver

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/orb-sort/internal/games/orbsort/engine"
)

const (
	R = engine.ColorRed
	B = engine.ColorBlue
	G = engine.ColorGreen
)

func TestSolveAlreadySolved(t *testing.T) {
	sol, err := Solve(engine.Layout{{R, R}, {B, B}, {}}, engine.Options{Capacity: 2, BatchMoves: true}, Limits{})

	require.NoError(t, err)
	assert.Equal(t, 0, sol.Len())
}

func TestSolveOneMove(t *testing.T) {
	opts := engine.DefaultOptions()
	sol, err := Solve(engine.Layout{{R, R, R, B}, {B, B, B}, {}}, opts, Limits{})

	require.NoError(t, err)
	require.Equal(t, 1, sol.Len())
	assert.Equal(t, engine.Move{Source: 0, Target: 1, Color: B, Count: 1}, sol.Moves[0])
}

func TestSolveOptimalLength(t *testing.T) {
	// Two tokens per color are swapped; three moves are needed.
	opts := engine.Options{Capacity: 2, BatchMoves: true, RequireFullTubeToWin: true}
	sol, err := Solve(engine.Layout{{R, B}, {B, R}, {}}, opts, Limits{})

	require.NoError(t, err)
	assert.Equal(t, 3, sol.Len())
}

func TestSolveUnsolvable(t *testing.T) {
	// No empty tube and no legal move.
	opts := engine.Options{Capacity: 2, BatchMoves: true}
	_, err := Solve(engine.Layout{{R, B}, {B, R}}, opts, Limits{})

	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestSolveSearchLimit(t *testing.T) {
	layout, err := engine.Shuffled(rand.New(rand.NewSource(3)), 6, 4, 2)
	require.NoError(t, err)

	_, err = Solve(layout, engine.DefaultOptions(), Limits{MaxStates: 1})

	assert.ErrorIs(t, err, ErrSearchLimit)
}

func TestSolveInvalidLayout(t *testing.T) {
	_, err := Solve(engine.Layout{{R, R, R}}, engine.Options{Capacity: 2}, Limits{})

	var layoutErr *engine.InvalidLayoutError
	assert.True(t, errors.As(err, &layoutErr))
}

func TestHint(t *testing.T) {
	opts := engine.DefaultOptions()
	tubes := engine.Layout{{R, R, R, B}, {B, B, B}, {}}.Tubes(opts.Capacity)

	move, ok, err := Hint(tubes, opts, Limits{})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, move.Source)
	assert.Equal(t, 1, move.Target)

	solved := engine.Layout{{R}, {}}.Tubes(opts.Capacity)
	_, ok, err = Hint(solved, opts, Limits{})
	require.NoError(t, err)
	assert.False(t, ok)
}

// Shuffled boards solved by the search must replay through the engine's
// selection state machine and end with each color in one full tube.
func TestSolutionsReplayThroughEngine(t *testing.T) {
	tests := []struct {
		name   string
		opts   engine.Options
		colors int
	}{
		{"batch", engine.DefaultOptions(), 4},
		{"classic", engine.ClassicOptions(), 3},
	}

	for _, tc := range tests {
		opts := tc.opts
		solved := 0
		for seed := int64(1); seed <= 8; seed++ {
			layout, err := engine.Shuffled(rand.New(rand.NewSource(seed)), tc.colors, engine.DefaultCapacity, 2)
			require.NoError(t, err)

			sol, err := Solve(layout, opts, Limits{MaxStates: 200_000})
			if errors.Is(err, ErrUnsolvable) || errors.Is(err, ErrSearchLimit) {
				continue
			}
			require.NoError(t, err, "seed %d", seed)
			solved++

			e, err := engine.NewWithLayout(opts, layout)
			require.NoError(t, err)

			var last engine.Result
			for _, m := range sol.Moves {
				_, err := e.SelectTube(m.Source)
				require.NoError(t, err)
				last, err = e.SelectTube(m.Target)
				require.NoError(t, err)
				require.Equal(t, engine.ResultMoveExecuted, last.Kind, "seed %d move %s", seed, m)
				assert.Equal(t, m, last.Move)
			}
			require.True(t, last.Won, "seed %d", seed)
			require.True(t, e.IsWon())

			full := 0
			for _, tube := range e.Tubes() {
				if tube.IsEmpty() {
					continue
				}
				assert.True(t, tube.IsFull())
				assert.True(t, tube.IsMonochrome())
				full++
			}
			assert.Equal(t, tc.colors, full)
		}
		assert.Positive(t, solved, "%s: no shuffled board was solved", tc.name)
	}
}
