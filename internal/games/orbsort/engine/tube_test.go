package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTubeBasics(t *testing.T) {
	tube := NewTube(4, ColorBlue, ColorRed, ColorRed)

	assert.Equal(t, 3, tube.Len())
	assert.Equal(t, 4, tube.Cap())
	assert.Equal(t, 1, tube.Space())
	assert.False(t, tube.IsEmpty())
	assert.False(t, tube.IsFull())

	top, ok := tube.Top()
	assert.True(t, ok)
	assert.Equal(t, ColorRed, top)
	assert.Equal(t, 2, tube.TopRun())
	assert.False(t, tube.IsMonochrome())
	assert.True(t, tube.Contains(ColorBlue))
	assert.False(t, tube.Contains(ColorGreen))

	bottom, ok := tube.At(0)
	assert.True(t, ok)
	assert.Equal(t, ColorBlue, bottom)
	_, ok = tube.At(3)
	assert.False(t, ok)
}

func TestEmptyTube(t *testing.T) {
	tube := NewTube(4)

	_, ok := tube.Top()
	assert.False(t, ok)
	assert.Equal(t, 0, tube.TopRun())
	assert.True(t, tube.IsEmpty())
	assert.True(t, tube.IsMonochrome())
}

func TestNewTubeCopiesInput(t *testing.T) {
	tokens := []Color{ColorRed, ColorBlue}
	tube := NewTube(4, tokens...)

	tokens[0] = ColorGreen

	c, _ := tube.At(0)
	assert.Equal(t, ColorRed, c)
}

func TestTubePushPop(t *testing.T) {
	tube := NewTube(4, ColorBlue, ColorRed, ColorGreen)

	moved := tube.pop(2)

	assert.Equal(t, []Color{ColorRed, ColorGreen}, moved)
	assert.Equal(t, []Color{ColorBlue}, tube.Colors())

	tube.push(moved...)
	assert.Equal(t, []Color{ColorBlue, ColorRed, ColorGreen}, tube.Colors())
}

func TestTubeCloneIsIndependent(t *testing.T) {
	orig := NewTube(4, ColorRed)
	clone := orig.Clone()

	clone.push(ColorRed)

	assert.Equal(t, 1, orig.Len())
	assert.Equal(t, 2, clone.Len())
}
