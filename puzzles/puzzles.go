// Copyright 2026 Tensorkata. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package puzzles

import (
	"github.com/tensorkata/tensorkata/tensor"
)

// Ones returns a length-n vector of ones, derived from an index comparison
// rather than a fill.
func Ones(n int) *tensor.Tensor[int64] {
	return tensor.Cast[int64](indexes(n).Ge(tensor.Scalar[int64](0)))
}

// Sum reduces a vector to a one-element vector holding its total, via a
// dot product with the ones vector.
func Sum[T tensor.Num](a *tensor.Tensor[T]) *tensor.Tensor[T] {
	n := a.NumElements()
	return row(onesAs[T](n)).MatMul(col(a)).Reshape(1)
}

// Outer returns the outer product of two vectors, shape (len(a), len(b)).
func Outer[T tensor.Num](a, b *tensor.Tensor[T]) *tensor.Tensor[T] {
	return col(a).Mul(row(b))
}

// Diag returns the main diagonal of a square matrix: out[k] = a[k,k].
// Flattened row-major, the diagonal sits at indices k*(n+1).
func Diag[T tensor.Num](a *tensor.Tensor[T]) *tensor.Tensor[T] {
	n := a.Shape()[0]
	flat := a.Reshape(n * n)
	return tensor.Take(flat, indexes(n).Mul(tensor.Scalar(int64(n+1))))
}

// Eye returns the n×n identity matrix as an equality mask over indices.
func Eye(n int) *tensor.Tensor[int64] {
	idx := indexes(n)
	return tensor.Cast[int64](col(idx).Eq(row(idx)))
}

// Triu returns the n×n upper-triangular ones matrix: out[i,j] = 1 iff j >= i.
func Triu(n int) *tensor.Tensor[int64] {
	idx := indexes(n)
	return tensor.Cast[int64](col(idx).Le(row(idx)))
}

// CumSum returns the prefix sums of a vector by multiplying with the
// upper-triangular mask: out[j] = sum of a[i] for i <= j.
func CumSum[T tensor.Num](a *tensor.Tensor[T]) *tensor.Tensor[T] {
	n := a.NumElements()
	idx := indexes(n)
	mask := tensor.Cast[T](col(idx).Le(row(idx)))
	return row(a).MatMul(mask).Reshape(n)
}

// Diff returns the same-length first difference of a vector, with the
// convention out[0] = a[0].
func Diff[T tensor.Num](a *tensor.Tensor[T]) *tensor.Tensor[T] {
	n := a.NumElements()
	idx := indexes(n)
	zero := tensor.Scalar[int64](0)
	prev := tensor.Take(a, idx.Sub(tensor.Scalar[int64](1)).Maximum(zero))
	return tensor.Where(idx.Eq(zero), a, a.Sub(prev))
}

// VStack stacks two equal-length vectors into a 2×n matrix, a on row 0 and
// b on row 1. The row selector is an explicit equality against zero, which
// pins the order the source commentary was unsure about.
func VStack[T tensor.Num](a, b *tensor.Tensor[T]) *tensor.Tensor[T] {
	rows := col(tensor.Arange[int64](0, 2))
	return tensor.Where(rows.Eq(tensor.Scalar[int64](0)), row(a), row(b))
}

// Roll cyclically shifts a vector left by one: out[k] = a[(k+1) mod n].
func Roll[T tensor.Num](a *tensor.Tensor[T]) *tensor.Tensor[T] {
	n := a.NumElements()
	idx := indexes(n)
	one := tensor.Scalar[int64](1)
	return tensor.Take(a, floorMod(idx.Add(one), tensor.Scalar(int64(n))))
}

// Flip reverses a vector: out[k] = a[n-1-k].
func Flip[T tensor.Num](a *tensor.Tensor[T]) *tensor.Tensor[T] {
	n := a.NumElements()
	return tensor.Take(a, tensor.Scalar(int64(n-1)).Sub(indexes(n)))
}

// Compress left-packs the values of v selected by the mask g into a
// length-n vector, zeros after. Each selected value lands at the count of
// selections before it, expressed as a scatter matrix.
func Compress[T tensor.Num](g *tensor.Tensor[bool], v *tensor.Tensor[T], n int) *tensor.Tensor[T] {
	one := tensor.Scalar[int64](1)
	pos := tensor.Cast[int64](g).CumSum().Sub(one)
	sel := col(pos).Eq(row(indexes(n)))
	mask := tensor.Cast[T](sel).Mul(tensor.Cast[T](col(g)))
	return row(v).MatMul(mask).Reshape(n)
}

// PadTo copies the first min(len(a), n) elements of a into a length-n
// vector, zero-padding the rest, via a rectangular identity.
func PadTo[T tensor.Num](a *tensor.Tensor[T], n int) *tensor.Tensor[T] {
	i := a.NumElements()
	ident := tensor.Cast[T](col(indexes(i)).Eq(row(indexes(n))))
	return row(a).MatMul(ident).Reshape(n)
}

// SequenceMask zeroes values[i,j] wherever j >= lengths[i].
func SequenceMask[T tensor.Num](values *tensor.Tensor[T], lengths *tensor.Tensor[int64]) *tensor.Tensor[T] {
	steps := values.Shape()[1]
	mask := row(indexes(steps)).Lt(col(lengths))
	return values.Mul(tensor.Cast[T](mask))
}

// Bincount counts occurrences of each value 0..m-1 in a.
func Bincount(a *tensor.Tensor[int64], m int) *tensor.Tensor[int64] {
	n := a.NumElements()
	hits := tensor.Cast[int64](col(a).Eq(row(indexes(m))))
	return row(Ones(n)).MatMul(hits).Reshape(m)
}

// ScatterAdd accumulates values into m buckets: out[j] = sum of values[k]
// where link[k] == j.
func ScatterAdd[T tensor.Num](values *tensor.Tensor[T], link *tensor.Tensor[int64], m int) *tensor.Tensor[T] {
	hits := tensor.Cast[T](col(link).Eq(row(indexes(m))))
	return row(values).MatMul(hits).Reshape(m)
}

// Flatten turns a matrix into a row-major vector.
func Flatten[T tensor.Num](a *tensor.Tensor[T]) *tensor.Tensor[T] {
	shape := a.Shape()
	return a.Reshape(shape[0] * shape[1])
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// The step divisor is max(n-1, 1), so n == 1 returns [start] instead of
// dividing by zero.
func Linspace[T tensor.Float](start, stop T, n int) *tensor.Tensor[T] {
	steps := tensor.Cast[T](indexes(n))
	span := tensor.Scalar(stop - start)
	denom := tensor.Scalar(T(max(n-1, 1)))
	return tensor.Scalar(start).Add(span.Mul(steps).Div(denom))
}

// Heaviside returns 0 where a < 0, b where a == 0, and 1 where a > 0.
func Heaviside[T tensor.Num](a, b *tensor.Tensor[T]) *tensor.Tensor[T] {
	zero := tensor.Scalar[T](0)
	return tensor.Where(a.Eq(zero), b, tensor.Cast[T](a.Gt(zero)))
}

// Repeat stacks d copies of a vector into a (d, len(a)) matrix via an
// outer product with ones.
func Repeat[T tensor.Num](a *tensor.Tensor[T], d int) *tensor.Tensor[T] {
	return col(onesAs[T](d)).Mul(row(a))
}

// Bucketize maps each element of v to the number of sorted boundaries
// less than or equal to it (right-closed convention).
func Bucketize[T tensor.Num](v, boundaries *tensor.Tensor[T]) *tensor.Tensor[int64] {
	m := boundaries.NumElements()
	hits := tensor.Cast[int64](col(v).Ge(row(boundaries)))
	return hits.MatMul(col(Ones(m))).Reshape(v.NumElements())
}
