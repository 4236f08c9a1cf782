// Copyright 2026 Tensorkata. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/tensorkata/tensorkata/tensor"
)

func TestPublicAPIRoundTrip(t *testing.T) {
	idx := tensor.Arange[int64](0, 4)
	one := tensor.Scalar[int64](1)

	shifted := idx.Add(one)
	want := []int64{1, 2, 3, 4}
	for i, v := range shifted.Data() {
		if v != want[i] {
			t.Errorf("shifted[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestPublicWhereTake(t *testing.T) {
	a, err := tensor.FromSlice([]int64{10, 20, 30}, tensor.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	cond := a.Gt(tensor.Scalar[int64](15))
	picked := tensor.Where(cond, a, tensor.Zeros[int64](tensor.Shape{3}))
	wantPicked := []int64{0, 20, 30}
	for i, v := range picked.Data() {
		if v != wantPicked[i] {
			t.Errorf("picked[%d] = %d, want %d", i, v, wantPicked[i])
		}
	}

	rev, err := tensor.FromSlice([]int64{2, 1, 0}, tensor.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	flipped := tensor.Take(a, rev)
	wantFlipped := []int64{30, 20, 10}
	for i, v := range flipped.Data() {
		if v != wantFlipped[i] {
			t.Errorf("flipped[%d] = %d, want %d", i, v, wantFlipped[i])
		}
	}
}

func TestPublicCatCast(t *testing.T) {
	a := tensor.Ones[int64](tensor.Shape{2})
	b := tensor.Zeros[int64](tensor.Shape{1})

	joined := tensor.Cat([]*tensor.Tensor[int64]{a, b}, 0)
	if !joined.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("cat shape = %v, want [3]", joined.Shape())
	}

	asFloat := tensor.Cast[float64](joined)
	if asFloat.DType() != tensor.Float64 {
		t.Errorf("cast dtype = %s, want float64", asFloat.DType())
	}
}

func TestPublicBroadcastShapes(t *testing.T) {
	shape, needs, err := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{3, 4})
	if err != nil {
		t.Fatalf("BroadcastShapes: %v", err)
	}
	if !shape.Equal(tensor.Shape{3, 4}) || !needs {
		t.Errorf("BroadcastShapes = %v, %v; want [3 4], true", shape, needs)
	}
}
