package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions is returned by New for unusable engine options.
var ErrInvalidOptions = errors.New("engine: invalid options")

// IndexOutOfRangeError reports a tube index outside [0, Count).
// It signals a bug in the input adapter, not a gameplay outcome.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("engine: tube index %d out of range [0, %d)", e.Index, e.Count)
}

// InvalidLayoutError reports a layout that cannot be loaded.
// Tube is -1 when the problem is not specific to one tube.
type InvalidLayoutError struct {
	Tube   int
	Reason string
}

func (e *InvalidLayoutError) Error() string {
	if e.Tube < 0 {
		return fmt.Sprintf("engine: invalid layout: %s", e.Reason)
	}
	return fmt.Sprintf("engine: invalid layout: tube %d: %s", e.Tube, e.Reason)
}
