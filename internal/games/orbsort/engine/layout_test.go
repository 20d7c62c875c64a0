package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr bool
		tube    int
	}{
		{"valid", Layout{{A, B}, {}}, false, 0},
		{"no tubes", Layout{}, true, -1},
		{"overfull", Layout{{}, {A, A, A, A, A}}, true, 1},
		{"unknown color", Layout{{A, Color(42)}}, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.layout.Validate(4)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			var layoutErr *InvalidLayoutError
			require.True(t, errors.As(err, &layoutErr))
			assert.Equal(t, tc.tube, layoutErr.Tube)
		})
	}
}

func TestLayoutCheckBalanced(t *testing.T) {
	assert.NoError(t, Layout{{A, B}, {B, A}}.CheckBalanced(2))
	assert.Error(t, Layout{{A, A}, {B}}.CheckBalanced(2))
}

func TestShuffledDeterministic(t *testing.T) {
	l1, err := Shuffled(rand.New(rand.NewSource(42)), 4, 4, 2)
	require.NoError(t, err)
	l2, err := Shuffled(rand.New(rand.NewSource(42)), 4, 4, 2)
	require.NoError(t, err)

	assert.Equal(t, l1, l2)
}

func TestShuffledShape(t *testing.T) {
	layout, err := Shuffled(rand.New(rand.NewSource(1)), 5, 4, 2)
	require.NoError(t, err)

	require.Len(t, layout, 7)
	for i := range 5 {
		assert.Len(t, layout[i], 4)
	}
	assert.Empty(t, layout[5])
	assert.Empty(t, layout[6])
	assert.NoError(t, layout.CheckBalanced(4))
	assert.False(t, layoutSorted(layout))
}

func TestShuffledRejectsBadArgs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Shuffled(rng, 0, 4, 2)
	assert.Error(t, err)
	_, err = Shuffled(rng, int(ColorCount)+1, 4, 2)
	assert.Error(t, err)
	_, err = Shuffled(rng, 3, 0, 2)
	assert.ErrorContains(t, err, "capacity 0 must be positive")
	_, err = Shuffled(rng, 3, 4, -1)
	assert.ErrorContains(t, err, "empty tube count -1 must not be negative")

	layout, err := Shuffled(rng, 3, 4, 0)
	require.NoError(t, err)
	assert.Len(t, layout, 3)
}

func TestLayoutClone(t *testing.T) {
	l := Layout{{A, B}, {C}}
	c := l.Clone()

	c[0][0] = D

	assert.Equal(t, A, l[0][0])
}
