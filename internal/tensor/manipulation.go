package tensor

import "fmt"

// rawReshape returns a tensor with the same data but a different shape.
// The new shape must have the same number of elements.
func rawReshape(x *RawTensor, newShape Shape) *RawTensor {
	if newShape.NumElements() != x.NumElements() {
		panic(fmt.Sprintf("reshape: cannot reshape %v (%d elements) to %v (%d elements)",
			x.Shape(), x.NumElements(), newShape, newShape.NumElements()))
	}

	result := mustNewRaw("reshape", newShape, x.DType())
	copy(result.data, x.data)
	return result
}

// rawTranspose swaps the rows and columns of a 2D tensor.
func rawTranspose(x *RawTensor) *RawTensor {
	if len(x.Shape()) != 2 {
		panic(fmt.Sprintf("transpose: only 2D tensors supported, got shape %v", x.Shape()))
	}

	rows, cols := x.Shape()[0], x.Shape()[1]
	result := mustNewRaw("transpose", Shape{cols, rows}, x.DType())

	elem := x.DType().Size()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			src := (i*cols + j) * elem
			dst := (j*rows + i) * elem
			copy(result.data[dst:dst+elem], x.data[src:src+elem])
		}
	}

	return result
}

// rawExpandDims inserts a dimension of size 1 at the given position.
func rawExpandDims(x *RawTensor, dim int) *RawTensor {
	ndim := len(x.Shape())
	if dim < 0 {
		dim += ndim + 1
	}
	if dim < 0 || dim > ndim {
		panic(fmt.Sprintf("expanddims: invalid dim %d for %dD tensor", dim, ndim))
	}

	newShape := make(Shape, 0, ndim+1)
	newShape = append(newShape, x.Shape()[:dim]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, x.Shape()[dim:]...)

	return rawReshape(x, newShape)
}

// rawSqueeze removes a dimension of size 1 at the given position.
func rawSqueeze(x *RawTensor, dim int) *RawTensor {
	ndim := len(x.Shape())
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("squeeze: invalid dim %d for %dD tensor", dim, ndim))
	}
	if x.Shape()[dim] != 1 {
		panic(fmt.Sprintf("squeeze: dimension %d has size %d, expected 1", dim, x.Shape()[dim]))
	}

	newShape := make(Shape, 0, ndim-1)
	newShape = append(newShape, x.Shape()[:dim]...)
	newShape = append(newShape, x.Shape()[dim+1:]...)

	return rawReshape(x, newShape)
}

// rawCat concatenates tensors along a dimension. All inputs must share a
// dtype and agree on every dimension except dim.
func rawCat(tensors []*RawTensor, dim int) *RawTensor {
	if len(tensors) == 0 {
		panic("cat: no tensors to concatenate")
	}

	first := tensors[0]
	ndim := len(first.Shape())
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("cat: invalid dim %d for %dD tensor", dim, ndim))
	}

	outShape := first.Shape().Clone()
	for _, t := range tensors[1:] {
		if t.DType() != first.DType() {
			panic(fmt.Sprintf("cat: dtype mismatch: %s vs %s", first.DType(), t.DType()))
		}
		if len(t.Shape()) != ndim {
			panic(fmt.Sprintf("cat: rank mismatch: %d vs %d", ndim, len(t.Shape())))
		}
		for i := 0; i < ndim; i++ {
			if i != dim && t.Shape()[i] != first.Shape()[i] {
				panic(fmt.Sprintf("cat: shape mismatch at dim %d: %d != %d", i, t.Shape()[i], first.Shape()[i]))
			}
		}
		outShape[dim] += t.Shape()[dim]
	}

	result := mustNewRaw("cat", outShape, first.DType())

	// Copy block-wise: outer = product of dims before dim, each input
	// contributes a contiguous run of (its dim size × inner) elements per
	// outer step.
	elem := first.DType().Size()
	outer := 1
	for i := 0; i < dim; i++ {
		outer *= outShape[i]
	}
	inner := 1
	for i := dim + 1; i < ndim; i++ {
		inner *= outShape[i]
	}

	outRun := outShape[dim] * inner * elem
	dstOffset := 0
	for o := 0; o < outer; o++ {
		dstOffset = o * outRun
		for _, t := range tensors {
			run := t.Shape()[dim] * inner * elem
			src := o * run
			copy(result.data[dstOffset:dstOffset+run], t.data[src:src+run])
			dstOffset += run
		}
	}

	return result
}
