// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Lerp interpolates between a and b at step of steps, rounding toward a.
// step is clamped to [0, steps]; steps <= 0 returns b.
func Lerp(a, b, step, steps int) int {
	if steps <= 0 {
		return b
	}
	step = Clamp(step, 0, steps)
	return a + (b-a)*step/steps
}

// Spread returns the left x of count items of width itemW laid out with
// gap columns between them and centered in total columns.
func Spread(count, itemW, gap, total int) []int {
	if count <= 0 {
		return nil
	}
	used := count*itemW + (count-1)*gap
	start := max(0, (total-used)/2)

	xs := make([]int, count)
	for i := range xs {
		xs[i] = start + i*(itemW+gap)
	}
	return xs
}
