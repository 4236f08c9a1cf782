package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tensorkata/tensorkata/tensor"
)

func TestFloorDiv(t *testing.T) {
	a := fromSlice(t, []int64{7, -7, 7, -7, 6, -3}, tensor.Shape{6})
	b := fromSlice(t, []int64{2, 2, -2, -2, 3, 2}, tensor.Shape{6})

	// Floor division rounds toward negative infinity, unlike Go's /.
	assert.Equal(t, []int64{3, -4, -4, 3, 2, -2}, floorDiv(a, b).Data())
}

func TestFloorMod(t *testing.T) {
	a := fromSlice(t, []int64{7, -7, 7, -7, -1, 0}, tensor.Shape{6})
	b := fromSlice(t, []int64{3, 3, -3, -3, 5, 5}, tensor.Shape{6})

	// The floor modulus carries the sign of the divisor.
	assert.Equal(t, []int64{1, 2, -2, -1, 4, 0}, floorMod(a, b).Data())
}

func TestFloorModIdentity(t *testing.T) {
	// a == floorDiv(a,b)*b + floorMod(a,b) for every pair.
	a := fromSlice(t, []int64{13, -13, 5, -5, 0}, tensor.Shape{5})
	b := fromSlice(t, []int64{4, 4, -4, -4, 7}, tensor.Shape{5})

	recomposed := floorDiv(a, b).Mul(b).Add(floorMod(a, b))
	assert.Equal(t, a.Data(), recomposed.Data())
}
