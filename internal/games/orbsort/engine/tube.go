package engine

// Tube is a fixed-capacity stack of tokens, stored bottom to top.
// The top is the last element.
type Tube struct {
	tokens   []Color
	capacity int
}

// NewTube creates a tube holding the given tokens (bottom to top).
// The token slice is copied.
func NewTube(capacity int, tokens ...Color) Tube {
	t := Tube{
		tokens:   make([]Color, len(tokens), max(capacity, len(tokens))),
		capacity: capacity,
	}
	copy(t.tokens, tokens)
	return t
}

// Len returns the number of tokens in the tube.
func (t Tube) Len() int {
	return len(t.tokens)
}

// Cap returns the tube capacity.
func (t Tube) Cap() int {
	return t.capacity
}

// Space returns how many more tokens fit.
func (t Tube) Space() int {
	return t.capacity - len(t.tokens)
}

// IsEmpty returns true if the tube holds no tokens.
func (t Tube) IsEmpty() bool {
	return len(t.tokens) == 0
}

// IsFull returns true if the tube is at capacity.
func (t Tube) IsFull() bool {
	return len(t.tokens) >= t.capacity
}

// Top returns the topmost token. ok is false for an empty tube.
func (t Tube) Top() (c Color, ok bool) {
	if len(t.tokens) == 0 {
		return 0, false
	}
	return t.tokens[len(t.tokens)-1], true
}

// At returns the token at stack position i (0 = bottom).
func (t Tube) At(i int) (Color, bool) {
	if i < 0 || i >= len(t.tokens) {
		return 0, false
	}
	return t.tokens[i], true
}

// TopRun returns the length of the maximal run of the top color.
// Returns 0 for an empty tube.
func (t Tube) TopRun() int {
	top, ok := t.Top()
	if !ok {
		return 0
	}
	run := 0
	for i := len(t.tokens) - 1; i >= 0 && t.tokens[i] == top; i-- {
		run++
	}
	return run
}

// IsMonochrome returns true if every token shares one color.
// An empty tube is monochrome.
func (t Tube) IsMonochrome() bool {
	return t.TopRun() == len(t.tokens)
}

// Contains reports whether any token in the tube has color c.
func (t Tube) Contains(c Color) bool {
	for _, tok := range t.tokens {
		if tok == c {
			return true
		}
	}
	return false
}

// Colors returns a copy of the tokens, bottom to top.
func (t Tube) Colors() []Color {
	out := make([]Color, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// Clone creates a deep copy of the tube.
func (t Tube) Clone() Tube {
	return NewTube(t.capacity, t.tokens...)
}

// push appends tokens on top. Caller guarantees capacity.
func (t *Tube) push(tokens ...Color) {
	t.tokens = append(t.tokens, tokens...)
}

// pop removes n tokens from the top and returns them bottom to top,
// so that pushing the result elsewhere keeps the former top on top.
func (t *Tube) pop(n int) []Color {
	cut := len(t.tokens) - n
	out := make([]Color, n)
	copy(out, t.tokens[cut:])
	t.tokens = t.tokens[:cut]
	return out
}
