package tensor

import "fmt"

// rawTake selects entries along dimension 0 using an integer index vector.
// The index tensor must be 1D with dtype int32 or int64; indices must lie
// in [0, x.Shape()[0]).
//
// For a 1D input the output is a 1D tensor of the indexed values; for an
// n-D input the output stacks the selected dim-0 slices.
func rawTake(x, index *RawTensor) *RawTensor {
	if len(index.Shape()) != 1 {
		panic(fmt.Sprintf("take: index must be 1D, got shape %v", index.Shape()))
	}
	if len(x.Shape()) == 0 {
		panic("take: input must have at least one dimension")
	}

	var indices []int64
	switch index.DType() {
	case Int32:
		src := index.AsInt32()
		indices = make([]int64, len(src))
		for i, v := range src {
			indices[i] = int64(v)
		}
	case Int64:
		indices = index.AsInt64()
	default:
		panic(fmt.Sprintf("take: index tensor must have dtype int32 or int64, got %s", index.DType()))
	}

	n := x.Shape()[0]
	outShape := x.Shape().Clone()
	outShape[0] = len(indices)

	result := mustNewRaw("take", outShape, x.DType())

	// Width of one dim-0 slice in bytes.
	sliceBytes := x.ByteSize() / n

	for i, idx := range indices {
		if idx < 0 || idx >= int64(n) {
			panic(fmt.Sprintf("take: index %d out of bounds for dimension 0 (size %d)", idx, n))
		}
		copy(result.data[i*sliceBytes:(i+1)*sliceBytes], x.data[int(idx)*sliceBytes:(int(idx)+1)*sliceBytes])
	}

	return result
}

// rawWhere selects elements from x where cond is true and from y otherwise.
// All three operands broadcast to a common shape; x and y must share a dtype
// and cond must be bool.
func rawWhere(cond, x, y *RawTensor) *RawTensor {
	if cond.DType() != Bool {
		panic(fmt.Sprintf("where: condition must be bool, got %s", cond.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: x and y must have same dtype, got %s and %s", x.DType(), y.DType()))
	}

	outShape1, _, err := BroadcastShapes(cond.Shape(), x.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: failed to broadcast condition and x: %v", err))
	}
	outShape, _, err := BroadcastShapes(outShape1, y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: failed to broadcast with y: %v", err))
	}

	result := mustNewRaw("where", outShape, x.DType())

	switch x.DType() {
	case Float32:
		whereKernel(result.AsFloat32(), cond, x.AsFloat32(), y.AsFloat32(), x.Shape(), y.Shape(), outShape)
	case Float64:
		whereKernel(result.AsFloat64(), cond, x.AsFloat64(), y.AsFloat64(), x.Shape(), y.Shape(), outShape)
	case Int32:
		whereKernel(result.AsInt32(), cond, x.AsInt32(), y.AsInt32(), x.Shape(), y.Shape(), outShape)
	case Int64:
		whereKernel(result.AsInt64(), cond, x.AsInt64(), y.AsInt64(), x.Shape(), y.Shape(), outShape)
	case Bool:
		whereKernel(result.AsBool(), cond, x.AsBool(), y.AsBool(), x.Shape(), y.Shape(), outShape)
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s", x.DType()))
	}

	return result
}

func whereKernel[T DType](dst []T, cond *RawTensor, xData, yData []T, xShape, yShape, outShape Shape) {
	condData := cond.AsBool()
	outStrides := outShape.ComputeStrides()
	condStrides := broadcastStrides(cond.Shape(), outShape)
	xStrides := broadcastStrides(xShape, outShape)
	yStrides := broadcastStrides(yShape, outShape)

	for i := range dst {
		if condData[flatIndex(i, outStrides, condStrides)] {
			dst[i] = xData[flatIndex(i, outStrides, xStrides)]
		} else {
			dst[i] = yData[flatIndex(i, outStrides, yStrides)]
		}
	}
}
