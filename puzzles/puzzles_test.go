package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorkata/tensorkata/tensor"
)

func fromSlice[T tensor.DType](t *testing.T, data []T, shape tensor.Shape) *tensor.Tensor[T] {
	t.Helper()
	tt, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	return tt
}

func TestOnes(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		out := Ones(n)
		require.True(t, out.Shape().Equal(tensor.Shape{n}))
		for k, v := range out.Data() {
			assert.Equal(t, int64(1), v, "ones(%d)[%d]", n, k)
		}
	}
}

func TestSum(t *testing.T) {
	a := fromSlice(t, []int64{3, 1, 4, 1, 5}, tensor.Shape{5})

	out := Sum(a)
	require.True(t, out.Shape().Equal(tensor.Shape{1}))
	assert.Equal(t, int64(14), out.Item())
}

func TestOuter(t *testing.T) {
	a := fromSlice(t, []int64{1, 2, 3}, tensor.Shape{3})
	b := fromSlice(t, []int64{10, 20}, tensor.Shape{2})

	out := Outer(a, b)
	require.True(t, out.Shape().Equal(tensor.Shape{3, 2}))
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, a.At(i)*b.At(j), out.At(i, j))
		}
	}
}

func TestDiag(t *testing.T) {
	a := fromSlice(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, tensor.Shape{3, 3})

	out := Diag(a)
	require.True(t, out.Shape().Equal(tensor.Shape{3}))
	for k := 0; k < 3; k++ {
		assert.Equal(t, a.At(k, k), out.At(k), "diag[%d]", k)
	}
}

func TestEyeMatchesReference(t *testing.T) {
	for _, n := range []int{1, 3, 5} {
		assert.Equal(t, tensor.Eye[int64](n).Data(), Eye(n).Data(), "eye(%d)", n)
	}
}

func TestTriu(t *testing.T) {
	out := Triu(4)
	require.True(t, out.Shape().Equal(tensor.Shape{4, 4}))
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := int64(0)
			if j >= i {
				want = 1
			}
			assert.Equal(t, want, out.At(i, j), "triu[%d,%d]", i, j)
		}
	}
}

func TestCumSum(t *testing.T) {
	a := fromSlice(t, []int64{1, -2, 3, 10}, tensor.Shape{4})

	// The matmul formulation must agree with the direct prefix-sum.
	assert.Equal(t, a.CumSum().Data(), CumSum(a).Data())
}

func TestDiff(t *testing.T) {
	a := fromSlice(t, []int64{2, 5, 4, 9}, tensor.Shape{4})

	out := Diff(a)
	assert.Equal(t, []int64{2, 3, -1, 5}, out.Data())
}

func TestDiffSingle(t *testing.T) {
	a := fromSlice(t, []int64{7}, tensor.Shape{1})
	assert.Equal(t, []int64{7}, Diff(a).Data())
}

func TestVStackRowOrder(t *testing.T) {
	a := fromSlice(t, []int64{1, 2, 3}, tensor.Shape{3})
	b := fromSlice(t, []int64{4, 5, 6}, tensor.Shape{3})

	out := VStack(a, b)
	require.True(t, out.Shape().Equal(tensor.Shape{2, 3}))

	// Row 0 must be the first operand; this pins the ordering the source
	// commentary was unsure about.
	for j := 0; j < 3; j++ {
		assert.Equal(t, a.At(j), out.At(0, j), "row 0 col %d", j)
		assert.Equal(t, b.At(j), out.At(1, j), "row 1 col %d", j)
	}
}

func TestRoll(t *testing.T) {
	a := fromSlice(t, []int64{1, 2, 3, 4, 5}, tensor.Shape{5})

	out := Roll(a)
	assert.Equal(t, []int64{2, 3, 4, 5, 1}, out.Data())
}

func TestRollWraparound(t *testing.T) {
	n := 6
	a := tensor.Arange[int64](0, int64(n))

	out := Roll(a)
	for k := 0; k < n; k++ {
		assert.Equal(t, a.At((k+1)%n), out.At(k), "roll[%d]", k)
	}
	assert.Equal(t, a.At(0), out.At(n-1), "last element wraps to a[0]")
}

func TestFlip(t *testing.T) {
	a := fromSlice(t, []int64{1, 2, 3, 4, 5}, tensor.Shape{5})

	out := Flip(a)
	assert.Equal(t, []int64{5, 4, 3, 2, 1}, out.Data())

	// Flipping twice restores the input.
	assert.Equal(t, a.Data(), Flip(out).Data())
}

func TestCompress(t *testing.T) {
	g := fromSlice(t, []bool{true, false, true, false, true}, tensor.Shape{5})
	v := fromSlice(t, []int64{10, 20, 30, 40, 50}, tensor.Shape{5})

	assert.Equal(t, []int64{10, 30, 50, 0, 0}, Compress(g, v, 5).Data())
}

func TestCompressNoneSelected(t *testing.T) {
	g := fromSlice(t, []bool{false, false, false}, tensor.Shape{3})
	v := fromSlice(t, []int64{1, 2, 3}, tensor.Shape{3})

	assert.Equal(t, []int64{0, 0, 0}, Compress(g, v, 3).Data())
}

func TestPadTo(t *testing.T) {
	a := fromSlice(t, []int64{1, 2, 3}, tensor.Shape{3})

	assert.Equal(t, []int64{1, 2, 3, 0, 0}, PadTo(a, 5).Data(), "pad longer")
	assert.Equal(t, []int64{1, 2}, PadTo(a, 2).Data(), "truncate shorter")
	assert.Equal(t, []int64{1, 2, 3}, PadTo(a, 3).Data(), "same length")
}

func TestSequenceMask(t *testing.T) {
	values := fromSlice(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{2, 4})
	lengths := fromSlice(t, []int64{3, 2}, tensor.Shape{2})

	out := SequenceMask(values, lengths)
	assert.Equal(t, []int64{1, 2, 3, 0, 5, 6, 0, 0}, out.Data())
}

func TestBincount(t *testing.T) {
	a := fromSlice(t, []int64{0, 1, 1, 2, 2, 2, 4}, tensor.Shape{7})

	assert.Equal(t, []int64{1, 2, 3, 0, 1}, Bincount(a, 5).Data())
}

func TestScatterAdd(t *testing.T) {
	values := fromSlice(t, []int64{5, 1, 7, 2, 3}, tensor.Shape{5})
	link := fromSlice(t, []int64{0, 0, 1, 2, 2}, tensor.Shape{5})

	assert.Equal(t, []int64{6, 7, 5}, ScatterAdd(values, link, 3).Data())
}

func TestFlatten(t *testing.T) {
	a := fromSlice(t, []int64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	out := Flatten(a)
	require.True(t, out.Shape().Equal(tensor.Shape{6}))
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, out.Data())
}

func TestLinspace(t *testing.T) {
	out := Linspace(0.0, 2.0, 5)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, out.Data())
}

func TestLinspaceSingle(t *testing.T) {
	// n == 1 must return [start], not divide by zero.
	out := Linspace(7.0, 9.0, 1)
	assert.Equal(t, []float64{7}, out.Data())
}

func TestLinspaceMatchesReference(t *testing.T) {
	got := Linspace(1.0, 4.0, 7)
	want := tensor.Linspace(1.0, 4.0, 7)
	for k := 0; k < 7; k++ {
		assert.InDelta(t, want.At(k), got.At(k), 1e-12, "linspace[%d]", k)
	}
}

func TestHeaviside(t *testing.T) {
	a := fromSlice(t, []int64{-2, 0, 3, 0, -1}, tensor.Shape{5})
	b := fromSlice(t, []int64{7, 7, 7, 9, 9}, tensor.Shape{5})

	assert.Equal(t, []int64{0, 7, 1, 9, 0}, Heaviside(a, b).Data())
}

func TestRepeat(t *testing.T) {
	a := fromSlice(t, []int64{1, 2, 3}, tensor.Shape{3})

	out := Repeat(a, 4)
	require.True(t, out.Shape().Equal(tensor.Shape{4, 3}))
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, a.At(j), out.At(i, j), "repeat[%d,%d]", i, j)
		}
	}
}

func TestBucketize(t *testing.T) {
	v := fromSlice(t, []int64{1, 5, 10, 3}, tensor.Shape{4})
	b := fromSlice(t, []int64{2, 4, 8}, tensor.Shape{3})

	assert.Equal(t, []int64{0, 2, 3, 1}, Bucketize(v, b).Data())
}

func TestBucketizeBoundaryIsInclusive(t *testing.T) {
	v := fromSlice(t, []int64{2, 4, 8}, tensor.Shape{3})
	b := fromSlice(t, []int64{2, 4, 8}, tensor.Shape{3})

	// Elements equal to a boundary count it.
	assert.Equal(t, []int64{1, 2, 3}, Bucketize(v, b).Data())
}
