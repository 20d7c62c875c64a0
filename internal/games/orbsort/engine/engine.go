// Package engine implements the orb sort puzzle rules: tube contents,
// move legality, batched same-color moves and win detection.
// This package is UI-agnostic and deterministic. Callers must serialize
// access to an Engine; separate Engine values are independent.
package engine

import "fmt"

// DefaultCapacity is the observed tube capacity.
const DefaultCapacity = 4

// Options selects between the two rule variants.
type Options struct {
	Capacity int // Tokens per tube (C)

	// BatchMoves moves the whole top run that fits instead of one token.
	BatchMoves bool

	// RequireFullTubeToWin additionally requires every non-empty tube
	// to be at capacity for the puzzle to count as solved.
	RequireFullTubeToWin bool
}

// DefaultOptions returns batched moves with the monochrome win rule.
func DefaultOptions() Options {
	return Options{
		Capacity:             DefaultCapacity,
		BatchMoves:           true,
		RequireFullTubeToWin: false,
	}
}

// ClassicOptions returns single-token moves with the full-tube win rule.
func ClassicOptions() Options {
	return Options{
		Capacity:             DefaultCapacity,
		BatchMoves:           false,
		RequireFullTubeToWin: true,
	}
}

// Engine owns the puzzle state and is mutated only through its methods.
type Engine struct {
	opts     Options
	tubes    []Tube
	selected int // -1 when nothing is selected
	won      bool
	moves    int
	tokens   int
}

// New creates an engine with no tubes. Call Initialize before use.
func New(opts Options) (*Engine, error) {
	if opts.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity %d", ErrInvalidOptions, opts.Capacity)
	}
	return &Engine{opts: opts, selected: -1}, nil
}

// NewWithLayout is New followed by Initialize.
func NewWithLayout(opts Options, layout Layout) (*Engine, error) {
	e, err := New(opts)
	if err != nil {
		return nil, err
	}
	if err := e.Initialize(layout); err != nil {
		return nil, err
	}
	return e, nil
}

// Initialize (re)builds the board from layout, clearing selection,
// win state and move count. On error the previous state is kept.
func (e *Engine) Initialize(layout Layout) error {
	if err := layout.Validate(e.opts.Capacity); err != nil {
		return err
	}

	e.tubes = layout.Tubes(e.opts.Capacity)
	e.selected = -1
	e.won = false
	e.moves = 0
	e.tokens = layout.TokenCount()
	return nil
}

// SelectTube feeds one tube-selection input into the state machine.
// Returns *IndexOutOfRangeError for an index outside the board.
func (e *Engine) SelectTube(index int) (Result, error) {
	if index < 0 || index >= len(e.tubes) {
		return Result{Tube: -1}, &IndexOutOfRangeError{Index: index, Count: len(e.tubes)}
	}

	if e.won {
		return Result{Kind: ResultWon, Tube: -1}, nil
	}

	// Nothing selected yet: pick up from a non-empty tube
	if e.selected < 0 {
		if e.tubes[index].IsEmpty() {
			return Result{Kind: ResultNoOp, Tube: -1}, nil
		}
		e.selected = index
		return Result{Kind: ResultSelected, Tube: index}, nil
	}

	// Same tube again: put it back
	if e.selected == index {
		e.selected = -1
		return Result{Kind: ResultDeselected, Tube: index}, nil
	}

	// Different tube: attempt the move, selection is cleared either way
	source := e.selected
	e.selected = -1

	count, reason := e.CheckMove(source, index)
	if reason != RejectNone {
		return Result{Kind: ResultMoveRejected, Tube: -1, Reason: reason}, nil
	}

	move := e.apply(source, index, count)
	e.moves++
	e.won = e.CheckWin()

	return Result{Kind: ResultMoveExecuted, Tube: -1, Move: move, Won: e.won}, nil
}

// CheckMove reports how many tokens a move from source to target would
// relocate, or why it is illegal. It does not change state.
func (e *Engine) CheckMove(source, target int) (count int, reason RejectReason) {
	if source < 0 || source >= len(e.tubes) || target < 0 || target >= len(e.tubes) {
		return 0, RejectInvalidTube
	}
	if source == target {
		return 0, RejectSameTube
	}
	return checkMove(e.tubes[source], e.tubes[target], e.opts.BatchMoves)
}

// checkMove applies the legality and batching rules to a pair of tubes.
func checkMove(src, dst Tube, batch bool) (int, RejectReason) {
	color, ok := src.Top()
	if !ok {
		return 0, RejectSourceEmpty
	}
	if dst.IsFull() {
		return 0, RejectTargetFull
	}
	if top, ok := dst.Top(); ok && top != color {
		return 0, RejectColorMismatch
	}
	if !batch {
		return 1, RejectNone
	}
	return min(src.TopRun(), dst.Space()), RejectNone
}

// apply relocates count tokens atomically. Legality is checked by the caller.
func (e *Engine) apply(source, target, count int) Move {
	color, _ := e.tubes[source].Top()
	moved := e.tubes[source].pop(count)
	e.tubes[target].push(moved...)
	return Move{Source: source, Target: target, Color: color, Count: count}
}

// LegalMoves returns every legal move in (source, target) index order.
func (e *Engine) LegalMoves() []Move {
	var moves []Move
	for s := range e.tubes {
		color, ok := e.tubes[s].Top()
		if !ok {
			continue
		}
		for t := range e.tubes {
			if s == t {
				continue
			}
			if count, reason := e.CheckMove(s, t); reason == RejectNone {
				moves = append(moves, Move{Source: s, Target: t, Color: color, Count: count})
			}
		}
	}
	return moves
}

// CheckWin reports whether every tube is sorted: empty, or monochrome
// with no other tube holding that color (and full, when the options
// require it).
func (e *Engine) CheckWin() bool {
	return IsSolved(e.tubes, e.opts.RequireFullTubeToWin)
}

// IsSolved applies the win rule to an arbitrary set of tubes.
func IsSolved(tubes []Tube, requireFull bool) bool {
	seen := make(map[Color]bool, len(tubes))
	for _, t := range tubes {
		top, ok := t.Top()
		if !ok {
			continue
		}
		if !t.IsMonochrome() {
			return false
		}
		if requireFull && !t.IsFull() {
			return false
		}
		if seen[top] {
			return false
		}
		seen[top] = true
	}
	return true
}

// Tubes returns a deep copy of all tubes.
func (e *Engine) Tubes() []Tube {
	out := make([]Tube, len(e.tubes))
	for i, t := range e.tubes {
		out[i] = t.Clone()
	}
	return out
}

// Tube returns a copy of tube i. ok is false for an invalid index.
func (e *Engine) Tube(i int) (Tube, bool) {
	if i < 0 || i >= len(e.tubes) {
		return Tube{}, false
	}
	return e.tubes[i].Clone(), true
}

// TubeCount returns T, the number of tubes.
func (e *Engine) TubeCount() int {
	return len(e.tubes)
}

// Capacity returns C.
func (e *Engine) Capacity() int {
	return e.opts.Capacity
}

// Options returns the rule options the engine was built with.
func (e *Engine) Options() Options {
	return e.opts
}

// Selection returns the pending source tube, if any.
func (e *Engine) Selection() (int, bool) {
	return e.selected, e.selected >= 0
}

// IsWon returns true once the puzzle is solved. Only Initialize leaves
// this state.
func (e *Engine) IsWon() bool {
	return e.won
}

// Moves returns the number of executed moves since Initialize.
func (e *Engine) Moves() int {
	return e.moves
}

// TokenCount returns the number of tokens on the board.
// It never changes between Initialize calls.
func (e *Engine) TokenCount() int {
	return e.tokens
}

// Layout returns the current board as a Layout.
func (e *Engine) Layout() Layout {
	out := make(Layout, len(e.tubes))
	for i, t := range e.tubes {
		out[i] = t.Colors()
	}
	return out
}
