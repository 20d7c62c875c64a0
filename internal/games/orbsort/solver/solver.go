// Package solver finds shortest move sequences for orb sort boards.
//
// The search is A* over board states. Tubes are interchangeable, so
// states are deduplicated by a canonical key built from the sorted tube
// contents. The heuristic counts, per color, how many extra tubes hold
// that color; one move can merge at most one such tube, so the heuristic
// never overestimates and returned solutions are optimal.
package solver

import (
	"container/heap"
	"errors"
	"sort"
	"strings"

	"github.com/vovakirdan/orb-sort/internal/games/orbsort/engine"
)

var (
	// ErrUnsolvable is returned when every reachable board was explored.
	ErrUnsolvable = errors.New("solver: board is unsolvable")
	// ErrSearchLimit is returned when Limits.MaxStates was reached first.
	ErrSearchLimit = errors.New("solver: search limit reached")
)

// DefaultMaxStates bounds the search when Limits.MaxStates is zero.
const DefaultMaxStates = 500_000

// Limits bounds a search.
type Limits struct {
	MaxStates int // Expanded states before giving up (0 = DefaultMaxStates)
}

// Solution is a move list that takes the board to a solved state.
type Solution struct {
	Moves    []engine.Move
	Explored int // States expanded during the search
}

// Len returns the number of moves.
func (s Solution) Len() int {
	return len(s.Moves)
}

// node is one search state.
type node struct {
	tubes  []engine.Tube
	parent *node
	move   engine.Move
	g      int // Moves from start
	h      int // Heuristic estimate to goal
	seq    int // Insertion order, for deterministic tie-breaks
	index  int // Heap index
}

// Solve searches for the shortest solution of layout under opts.
func Solve(layout engine.Layout, opts engine.Options, limits Limits) (Solution, error) {
	if err := layout.Validate(opts.Capacity); err != nil {
		return Solution{}, err
	}
	return SolveTubes(layout.Tubes(opts.Capacity), opts, limits)
}

// SolveTubes is Solve for a board already expressed as tubes,
// e.g. a mid-game position taken from Engine.Tubes.
func SolveTubes(tubes []engine.Tube, opts engine.Options, limits Limits) (Solution, error) {
	maxStates := limits.MaxStates
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}

	start := &node{tubes: tubes, h: estimate(tubes)}
	if engine.IsSolved(tubes, opts.RequireFullTubeToWin) {
		return Solution{}, nil
	}

	open := &frontier{}
	heap.Push(open, start)
	bestG := map[string]int{key(tubes): 0}
	closed := make(map[string]bool)
	seq := 0
	explored := 0

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)
		currentKey := key(current.tubes)
		if closed[currentKey] {
			continue
		}
		closed[currentKey] = true

		if engine.IsSolved(current.tubes, opts.RequireFullTubeToWin) {
			return Solution{Moves: current.path(), Explored: explored}, nil
		}

		explored++
		if explored > maxStates {
			return Solution{Explored: explored}, ErrSearchLimit
		}

		for s := range current.tubes {
			for t := range current.tubes {
				next, move, reason := engine.Step(current.tubes, opts, s, t)
				if reason != engine.RejectNone {
					continue
				}
				if wasted(current.tubes, move) {
					continue
				}

				nextKey := key(next)
				g := current.g + 1
				if closed[nextKey] {
					continue
				}
				if prev, ok := bestG[nextKey]; ok && prev <= g {
					continue
				}
				bestG[nextKey] = g

				seq++
				heap.Push(open, &node{
					tubes:  next,
					parent: current,
					move:   move,
					g:      g,
					h:      estimate(next),
					seq:    seq,
				})
			}
		}
	}

	return Solution{Explored: explored}, ErrUnsolvable
}

// Hint returns the first move of a shortest solution.
// ok is false when the board is already solved.
func Hint(tubes []engine.Tube, opts engine.Options, limits Limits) (move engine.Move, ok bool, err error) {
	sol, err := SolveTubes(tubes, opts, limits)
	if err != nil {
		return engine.Move{}, false, err
	}
	if sol.Len() == 0 {
		return engine.Move{}, false, nil
	}
	return sol.Moves[0], true, nil
}

// wasted reports moves that can never shorten a solution: emptying a
// monochrome tube into an empty tube just relabels tubes.
func wasted(tubes []engine.Tube, m engine.Move) bool {
	src, dst := tubes[m.Source], tubes[m.Target]
	return dst.IsEmpty() && src.IsMonochrome() && m.Count == src.Len()
}

// path walks parent links back to the start.
func (n *node) path() []engine.Move {
	var moves []engine.Move
	for cur := n; cur.parent != nil; cur = cur.parent {
		moves = append(moves, cur.move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

// estimate is the sum over colors of (tubes holding that color - 1).
func estimate(tubes []engine.Tube) int {
	holders := make(map[engine.Color]int)
	for _, t := range tubes {
		var seen [engine.ColorCount]bool
		for _, c := range t.Colors() {
			if !seen[c] {
				seen[c] = true
				holders[c]++
			}
		}
	}
	h := 0
	for _, n := range holders {
		h += n - 1
	}
	return h
}

// key builds an order-independent identifier for a board.
func key(tubes []engine.Tube) string {
	parts := make([]string, len(tubes))
	for i, t := range tubes {
		colors := t.Colors()
		b := make([]byte, len(colors))
		for j, c := range colors {
			b[j] = byte('a' + c)
		}
		parts[i] = string(b)
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// frontier is a min-heap ordered by f = g + h, then h, then insertion.
type frontier []*node

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	fi, fj := f[i].g+f[i].h, f[j].g+f[j].h
	if fi != fj {
		return fi < fj
	}
	if f[i].h != f[j].h {
		return f[i].h < f[j].h
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	n := x.(*node)
	n.index = len(*f)
	*f = append(*f, n)
}

func (f *frontier) Pop() any {
	old := *f
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*f = old[:len(old)-1]
	return n
}
