package render

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/tensorkata/tensorkata/internal/tensor"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestTextVector(t *testing.T) {
	v, err := tensor.FromSlice([]int64{1, 22, 3}, tensor.Shape{3})
	require.NoError(t, err)

	g := newGoldie(t)
	g.Assert(t, "vector_int64", []byte(Text(v.Raw())))
}

func TestTextMatrix(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "matrix_eye", []byte(Text(tensor.Eye[int64](3).Raw())))
}

func TestTextFloatVector(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "vector_float64", []byte(Text(tensor.Linspace(0.0, 2.0, 5).Raw())))
}

func TestTextBoolMatrix(t *testing.T) {
	idx := tensor.Arange[int64](0, 2)
	mask := idx.ExpandDims(1).Le(idx.ExpandDims(0))

	g := newGoldie(t)
	g.Assert(t, "matrix_bool", []byte(Text(mask.Raw())))
}

func TestTextUnsupportedRankPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for 3D tensor")
		}
	}()

	Text(tensor.Zeros[int64](tensor.Shape{2, 2, 2}).Raw())
}
