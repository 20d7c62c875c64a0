package engine

import (
	"fmt"
	"math/rand"
)

// Layout is an initial board description: one color list per tube,
// each listed bottom to top.
type Layout [][]Color

// Validate checks the layout against a tube capacity.
// Returns *InvalidLayoutError for an empty layout, an overfull tube
// or a color outside the palette.
func (l Layout) Validate(capacity int) error {
	if len(l) == 0 {
		return &InvalidLayoutError{Tube: -1, Reason: "no tubes"}
	}
	for i, tube := range l {
		if len(tube) > capacity {
			return &InvalidLayoutError{
				Tube:   i,
				Reason: fmt.Sprintf("%d tokens exceed capacity %d", len(tube), capacity),
			}
		}
		for _, c := range tube {
			if !c.Valid() {
				return &InvalidLayoutError{
					Tube:   i,
					Reason: fmt.Sprintf("unknown color %d", c),
				}
			}
		}
	}
	return nil
}

// CheckBalanced verifies that every color present appears exactly
// capacity times, which is what makes a layout winnable with full tubes.
func (l Layout) CheckBalanced(capacity int) error {
	for c, n := range l.ColorCounts() {
		if n != capacity {
			return &InvalidLayoutError{
				Tube:   -1,
				Reason: fmt.Sprintf("color %s has %d tokens, want %d", c, n, capacity),
			}
		}
	}
	return nil
}

// TokenCount returns the total number of tokens.
func (l Layout) TokenCount() int {
	total := 0
	for _, tube := range l {
		total += len(tube)
	}
	return total
}

// ColorCounts returns the number of tokens per color.
func (l Layout) ColorCounts() map[Color]int {
	counts := make(map[Color]int)
	for _, tube := range l {
		for _, c := range tube {
			counts[c]++
		}
	}
	return counts
}

// Clone creates a deep copy of the layout.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	for i, tube := range l {
		out[i] = append([]Color(nil), tube...)
	}
	return out
}

// maxShuffleAttempts bounds re-deals of a layout that came out already sorted.
const maxShuffleAttempts = 16

// Shuffled deals numColors*capacity tokens at random into numColors full
// tubes followed by emptyTubes empty tubes. The same rng state always
// yields the same layout.
func Shuffled(rng *rand.Rand, numColors, capacity, emptyTubes int) (Layout, error) {
	if numColors < 1 || numColors > int(ColorCount) {
		return nil, &InvalidLayoutError{
			Tube:   -1,
			Reason: fmt.Sprintf("color count %d outside [1, %d]", numColors, ColorCount),
		}
	}
	if capacity < 1 {
		return nil, &InvalidLayoutError{Tube: -1, Reason: fmt.Sprintf("capacity %d must be positive", capacity)}
	}
	if emptyTubes < 0 {
		return nil, &InvalidLayoutError{Tube: -1, Reason: fmt.Sprintf("empty tube count %d must not be negative", emptyTubes)}
	}

	tokens := make([]Color, 0, numColors*capacity)
	for _, c := range Palette(numColors) {
		for range capacity {
			tokens = append(tokens, c)
		}
	}

	var layout Layout
	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		rng.Shuffle(len(tokens), func(i, j int) {
			tokens[i], tokens[j] = tokens[j], tokens[i]
		})

		layout = make(Layout, 0, numColors+emptyTubes)
		for i := range numColors {
			layout = append(layout, append([]Color(nil), tokens[i*capacity:(i+1)*capacity]...))
		}
		for range emptyTubes {
			layout = append(layout, []Color{})
		}

		// A single color can only ever deal sorted.
		if numColors == 1 || !layoutSorted(layout) {
			break
		}
	}
	return layout, nil
}

// layoutSorted reports whether every tube of a freshly dealt layout is monochrome.
func layoutSorted(l Layout) bool {
	for _, tube := range l {
		for _, c := range tube {
			if c != tube[0] {
				return false
			}
		}
	}
	return true
}

// Tubes builds tubes of the given capacity from the layout.
// The layout is not validated.
func (l Layout) Tubes(capacity int) []Tube {
	tubes := make([]Tube, len(l))
	for i, colors := range l {
		tubes[i] = NewTube(capacity, colors...)
	}
	return tubes
}
