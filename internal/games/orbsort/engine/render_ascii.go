package engine

import (
	"fmt"
	"strings"
)

// emptySlot marks an unused tube position in ASCII output.
const emptySlot = '.'

// FormatTube renders one tube as "|RRB.|", bottom on the left.
func FormatTube(t Tube) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for i := range t.Cap() {
		if c, ok := t.At(i); ok {
			sb.WriteRune(c.Char())
		} else {
			sb.WriteRune(emptySlot)
		}
	}
	sb.WriteByte('|')
	return sb.String()
}

// FormatTubes renders one line per tube with its index, marking the
// selected tube with '*'. Pass selected = -1 for no marker.
func FormatTubes(tubes []Tube, selected int) string {
	var sb strings.Builder
	for i, t := range tubes {
		marker := ' '
		if i == selected {
			marker = '*'
		}
		fmt.Fprintf(&sb, "%2d%c%s %d/%d\n", i, marker, FormatTube(t), t.Len(), t.Cap())
	}
	return sb.String()
}

// String renders the engine state for logs and debugging.
func (e *Engine) String() string {
	return FormatTubes(e.tubes, e.selected)
}
