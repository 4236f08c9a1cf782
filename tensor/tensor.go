// Copyright 2026 Tensorkata. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor operations in tensorkata.
//
// The package defines a compact dense tensor with NumPy-style broadcasting:
//   - Tensor[T]: generic type-safe tensor over float32/float64/int32/int64/bool
//   - RawTensor: low-level representation for advanced use cases
//   - Shape, DataType: core type definitions
//
// Example:
//
//	idx := tensor.Arange[int64](0, 5)
//	one := tensor.Scalar[int64](1)
//	shifted := idx.Add(one) // [1, 2, 3, 4, 5]
package tensor

import (
	"github.com/tensorkata/tensorkata/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64, bool.
type DType = tensor.DType

// Num is a constraint for numeric tensor data types.
type Num = tensor.Num

// Int is a constraint for integer tensor data types.
type Int = tensor.Int

// Float is a constraint for floating-point tensor data types.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2×3 matrix.
type Shape = tensor.Shape

// Tensor is a generic type-safe tensor.
//
// T is the element type (float32, float64, int32, int64, bool). All
// operations are pure: inputs are never modified and every operation
// allocates its result.
type Tensor[T DType] = tensor.Tensor[T]

// RawTensor is the low-level tensor representation.
type RawTensor = tensor.RawTensor

// Creation functions

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T DType](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// Scalar creates a single-element 1D tensor, convenient as a broadcast
// operand.
func Scalar[T DType](value T) *Tensor[T] {
	return tensor.Scalar(value)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
//
// Example:
//
//	x := tensor.Arange[int64](0, 10) // [0, 1, 2, ..., 9]
func Arange[T Num](start, end T) *Tensor[T] {
	return tensor.Arange(start, end)
}

// Linspace creates a 1D tensor of n evenly spaced values from start to stop
// inclusive. The degenerate case n == 1 returns [start].
func Linspace[T Float](start, stop T, n int) *Tensor[T] {
	return tensor.Linspace(start, stop, n)
}

// Eye creates an n×n identity matrix.
func Eye[T Num](n int) *Tensor[T] {
	return tensor.Eye[T](n)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	data := []float64{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Ones, or FromSlice instead.
func New[T DType](raw *RawTensor) *Tensor[T] {
	return tensor.New[T](raw)
}

// NewRaw creates a new raw tensor with the given shape and dtype.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// Selection and indexing

// Where selects elements from x or y based on condition, with broadcasting
// across all three operands.
//
// Example:
//
//	cond := tensor.Full[bool](tensor.Shape{3}, true)
//	x := tensor.Full[float64](tensor.Shape{3}, 1.0)
//	y := tensor.Full[float64](tensor.Shape{3}, 0.0)
//	result := tensor.Where(cond, x, y) // [1.0, 1.0, 1.0]
func Where[T DType](cond *Tensor[bool], x, y *Tensor[T]) *Tensor[T] {
	return tensor.Where(cond, x, y)
}

// Take selects entries along dimension 0 using an integer index vector.
// For a 1D tensor this is fancy indexing; for a 2D tensor it selects rows.
func Take[T DType, I Int](t *Tensor[T], index *Tensor[I]) *Tensor[T] {
	return tensor.Take(t, index)
}

// Manipulation

// Cat concatenates tensors along a dimension.
func Cat[T DType](tensors []*Tensor[T], dim int) *Tensor[T] {
	return tensor.Cat(tensors, dim)
}

// Cast converts a tensor to element type U. Bool inputs convert to 0 and 1;
// float-to-int conversion truncates toward zero.
func Cast[U Num, T DType](t *Tensor[T]) *Tensor[U] {
	return tensor.Cast[U](t)
}

// Utility functions

// BroadcastShapes computes the broadcast shape for two shapes following
// NumPy broadcasting rules. Returns the resulting shape, a flag indicating
// whether broadcasting is needed, and an error for incompatible shapes.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
