package tensor

import "fmt"

// rawSum returns the total of all elements as a single-element vector.
func rawSum(x *RawTensor) *RawTensor {
	result := mustNewRaw("sum", Shape{1}, x.DType())

	switch x.DType() {
	case Float32:
		sumKernel(result.AsFloat32(), x.AsFloat32())
	case Float64:
		sumKernel(result.AsFloat64(), x.AsFloat64())
	case Int32:
		sumKernel(result.AsInt32(), x.AsInt32())
	case Int64:
		sumKernel(result.AsInt64(), x.AsInt64())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

func sumKernel[T Num](dst, src []T) {
	var total T
	for _, v := range src {
		total += v
	}
	dst[0] = total
}

// rawCumSum returns the running prefix sums of a 1D tensor:
// out[i] = sum of src[0..i].
func rawCumSum(x *RawTensor) *RawTensor {
	if len(x.Shape()) != 1 {
		panic(fmt.Sprintf("cumsum: only 1D tensors supported, got shape %v", x.Shape()))
	}

	result := mustNewRaw("cumsum", x.Shape(), x.DType())

	switch x.DType() {
	case Float32:
		cumsumKernel(result.AsFloat32(), x.AsFloat32())
	case Float64:
		cumsumKernel(result.AsFloat64(), x.AsFloat64())
	case Int32:
		cumsumKernel(result.AsInt32(), x.AsInt32())
	case Int64:
		cumsumKernel(result.AsInt64(), x.AsInt64())
	default:
		panic(fmt.Sprintf("cumsum: unsupported dtype %s", x.DType()))
	}

	return result
}

func cumsumKernel[T Num](dst, src []T) {
	var running T
	for i, v := range src {
		running += v
		dst[i] = running
	}
}
