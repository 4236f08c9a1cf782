// Copyright 2026 Tensorkata. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package puzzles implements twenty-one classic array-programming exercises
// as closed-form tensor expressions.
//
// Every solution body is a composition of the tensor package's surface —
// index vectors, broadcasting arithmetic, comparisons, selection and matrix
// multiplication. None of them loops over elements; where an element-wise
// walk would be the obvious move, the expression reaches for a comparison
// mask and a matmul instead. That constraint is the whole point of the
// exercise set.
//
// Example:
//
//	a, _ := tensor.FromSlice([]int64{3, 1, 4, 1, 5}, tensor.Shape{5})
//	puzzles.Roll(a)  // [1, 4, 1, 5, 3]
//	puzzles.Flip(a)  // [5, 1, 4, 1, 3]
package puzzles
