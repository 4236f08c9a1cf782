package tensor

import "fmt"

// binOp identifies an element-wise binary arithmetic operation.
type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opMax
	opMin
)

// rawBinary performs an element-wise binary operation with NumPy-style
// broadcasting. Both operands must share a numeric dtype.
func rawBinary(name string, op binOp, a, b *RawTensor) *RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result := mustNewRaw(name, outShape, a.DType())

	switch a.DType() {
	case Float32:
		binaryKernel(op, result.AsFloat32(), a, b, a.AsFloat32(), b.AsFloat32(), outShape, needsBroadcast)
	case Float64:
		binaryKernel(op, result.AsFloat64(), a, b, a.AsFloat64(), b.AsFloat64(), outShape, needsBroadcast)
	case Int32:
		binaryKernel(op, result.AsInt32(), a, b, a.AsInt32(), b.AsInt32(), outShape, needsBroadcast)
	case Int64:
		binaryKernel(op, result.AsInt64(), a, b, a.AsInt64(), b.AsInt64(), outShape, needsBroadcast)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

// binaryKernel evaluates op over broadcast-aligned element pairs.
// The fast path walks both slices directly when no broadcasting is needed.
func binaryKernel[T Num](op binOp, dst []T, a, b *RawTensor, aData, bData []T, outShape Shape, needsBroadcast bool) {
	if !needsBroadcast {
		for i := range dst {
			dst[i] = applyBin(op, aData[i], bData[i])
		}
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)

	for i := range dst {
		dst[i] = applyBin(op, aData[flatIndex(i, outStrides, aStrides)], bData[flatIndex(i, outStrides, bStrides)])
	}
}

func applyBin[T Num](op binOp, x, y T) T {
	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	case opDiv:
		return x / y
	case opMax:
		if x > y {
			return x
		}
		return y
	case opMin:
		if x < y {
			return x
		}
		return y
	default:
		panic("unknown binary op")
	}
}
