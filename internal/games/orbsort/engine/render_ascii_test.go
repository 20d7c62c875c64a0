package engine

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestFormatTube(t *testing.T) {
	assert.Equal(t, "|BRR.|", FormatTube(NewTube(4, B, A, A)))
	assert.Equal(t, "|....|", FormatTube(NewTube(4)))
}

func TestFormatTubesGolden(t *testing.T) {
	e := newEngine(t, DefaultOptions(), Layout{
		{A, B, C, D},
		{D, C, B, A},
		{A, A},
		{},
	})
	_, err := e.SelectTube(1)
	if err != nil {
		t.Fatal(err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "format_tubes", []byte(e.String()))
}
