// Copyright 2026 Tensorkata. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package puzzles

import (
	"github.com/tensorkata/tensorkata/tensor"
)

// indexes returns the index vector [0, 1, ..., n-1].
func indexes(n int) *tensor.Tensor[int64] {
	return tensor.Arange[int64](0, int64(n))
}

// col reshapes a 1D tensor into a column, making it broadcast down rows.
func col[T tensor.DType](t *tensor.Tensor[T]) *tensor.Tensor[T] {
	return t.ExpandDims(1)
}

// row reshapes a 1D tensor into a single-row matrix, making it broadcast
// across columns.
func row[T tensor.DType](t *tensor.Tensor[T]) *tensor.Tensor[T] {
	return t.ExpandDims(0)
}

// onesAs returns a length-n vector of ones with element type T.
func onesAs[T tensor.Num](n int) *tensor.Tensor[T] {
	return tensor.Cast[T](Ones(n))
}

// floorDiv computes element-wise floor division from truncating division.
// Truncation and flooring disagree exactly when the remainder is non-zero
// and has the opposite sign of the divisor, i.e. when remainder*b < 0.
func floorDiv[T tensor.Int](a, b *tensor.Tensor[T]) *tensor.Tensor[T] {
	zero := tensor.Scalar[T](0)
	q := a.Div(b)
	r := a.Sub(q.Mul(b))
	return q.Sub(tensor.Cast[T](r.Mul(b).Lt(zero)))
}

// floorMod computes the floor modulus a - floorDiv(a, b)*b, which always
// carries the sign of the divisor.
func floorMod[T tensor.Int](a, b *tensor.Tensor[T]) *tensor.Tensor[T] {
	return a.Sub(floorDiv(a, b).Mul(b))
}
