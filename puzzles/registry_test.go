package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allPuzzles = []string{
	"bincount", "bucketize", "compress", "cumsum", "diag", "diff", "eye",
	"flatten", "flip", "heaviside", "linspace", "ones", "outer", "pad_to",
	"repeat", "roll", "scatter_add", "sequence_mask", "sum", "triu", "vstack",
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, allPuzzles, reg.Names(), "Names must list all puzzles in sorted order")
}

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()

	p, ok := reg.Get("roll")
	require.True(t, ok)
	assert.Equal(t, "roll", p.Name)
	assert.NotEmpty(t, p.Brief)
	assert.NotEmpty(t, p.Contract)

	_, ok = reg.Get("nope")
	assert.False(t, ok)
}

func TestRegistryRunAll(t *testing.T) {
	reg := NewRegistry()

	for _, name := range reg.Names() {
		demo, err := reg.Run(name)
		require.NoError(t, err, "puzzle %s", name)
		require.NotNil(t, demo.Output.Value, "puzzle %s output", name)
		assert.NotEmpty(t, demo.Output.Label, "puzzle %s output label", name)
		for _, in := range demo.Inputs {
			assert.NotNil(t, in.Value, "puzzle %s input %s", name, in.Label)
		}
	}
}

func TestRegistryRunUnknown(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Run("nope")
	assert.Error(t, err)
}
