package engine

// Step applies a move from source to target to a set of tubes without an
// Engine and without selection bookkeeping. The input is left untouched;
// on success the returned slice shares every tube except the two that
// changed. Used by search code that explores many boards.
func Step(tubes []Tube, opts Options, source, target int) ([]Tube, Move, RejectReason) {
	if source < 0 || source >= len(tubes) || target < 0 || target >= len(tubes) {
		return nil, Move{}, RejectInvalidTube
	}
	if source == target {
		return nil, Move{}, RejectSameTube
	}

	count, reason := checkMove(tubes[source], tubes[target], opts.BatchMoves)
	if reason != RejectNone {
		return nil, Move{}, reason
	}

	next := make([]Tube, len(tubes))
	copy(next, tubes)
	next[source] = tubes[source].Clone()
	next[target] = tubes[target].Clone()

	color, _ := next[source].Top()
	next[target].push(next[source].pop(count)...)

	return next, Move{Source: source, Target: target, Color: color, Count: count}, RejectNone
}
