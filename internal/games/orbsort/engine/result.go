package engine

import "fmt"

// ResultKind tells the renderer what a SelectTube call did.
type ResultKind uint8

const (
	// ResultNoOp means nothing changed (empty tube picked with no selection).
	ResultNoOp ResultKind = iota
	// ResultSelected means a tube became the pending source.
	ResultSelected
	// ResultDeselected means the pending source was clicked again and cleared.
	ResultDeselected
	// ResultMoveExecuted means tokens were relocated.
	ResultMoveExecuted
	// ResultMoveRejected means the attempted move was illegal; nothing moved.
	ResultMoveRejected
	// ResultWon is returned for every call made after the puzzle was won.
	ResultWon
)

// String returns a human-readable name for the result kind.
func (k ResultKind) String() string {
	switch k {
	case ResultNoOp:
		return "NoOp"
	case ResultSelected:
		return "Selected"
	case ResultDeselected:
		return "Deselected"
	case ResultMoveExecuted:
		return "MoveExecuted"
	case ResultMoveRejected:
		return "MoveRejected"
	case ResultWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// RejectReason explains a rejected move.
type RejectReason uint8

const (
	RejectNone RejectReason = iota
	RejectTargetFull
	RejectColorMismatch
	RejectSourceEmpty
	RejectSameTube
	RejectInvalidTube
)

// String returns a human-readable name for the reason.
func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "None"
	case RejectTargetFull:
		return "TargetFull"
	case RejectColorMismatch:
		return "ColorMismatch"
	case RejectSourceEmpty:
		return "SourceEmpty"
	case RejectSameTube:
		return "SameTube"
	case RejectInvalidTube:
		return "InvalidTube"
	default:
		return "Unknown"
	}
}

// Move describes relocated tokens: Count tokens of Color went from
// Source to Target. The renderer animates exactly Count tokens.
type Move struct {
	Source int
	Target int
	Color  Color
	Count  int
}

// String formats the move as "s->t xN color".
func (m Move) String() string {
	return fmt.Sprintf("%d->%d x%d %s", m.Source, m.Target, m.Count, m.Color)
}

// Result is returned by every SelectTube call.
type Result struct {
	Kind   ResultKind
	Tube   int          // Selected/Deselected tube; -1 otherwise
	Move   Move         // Valid for ResultMoveExecuted
	Reason RejectReason // Valid for ResultMoveRejected
	Won    bool         // Set on the move that solved the puzzle
}
