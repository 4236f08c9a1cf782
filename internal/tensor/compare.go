package tensor

import "fmt"

// cmpOp identifies an element-wise comparison.
type cmpOp int

const (
	cmpEq cmpOp = iota
	cmpNe
	cmpGt
	cmpGe
	cmpLt
	cmpLe
)

// rawCompare performs an element-wise comparison with broadcasting and
// returns a bool tensor.
func rawCompare(name string, op cmpOp, a, b *RawTensor) *RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result := mustNewRaw(name, outShape, Bool)

	switch a.DType() {
	case Float32:
		compareKernel(op, result.AsBool(), a, b, a.AsFloat32(), b.AsFloat32(), outShape, needsBroadcast)
	case Float64:
		compareKernel(op, result.AsBool(), a, b, a.AsFloat64(), b.AsFloat64(), outShape, needsBroadcast)
	case Int32:
		compareKernel(op, result.AsBool(), a, b, a.AsInt32(), b.AsInt32(), outShape, needsBroadcast)
	case Int64:
		compareKernel(op, result.AsBool(), a, b, a.AsInt64(), b.AsInt64(), outShape, needsBroadcast)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

func compareKernel[T Num](op cmpOp, dst []bool, a, b *RawTensor, aData, bData []T, outShape Shape, needsBroadcast bool) {
	if !needsBroadcast {
		for i := range dst {
			dst[i] = applyCmp(op, aData[i], bData[i])
		}
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)

	for i := range dst {
		dst[i] = applyCmp(op, aData[flatIndex(i, outStrides, aStrides)], bData[flatIndex(i, outStrides, bStrides)])
	}
}

func applyCmp[T Num](op cmpOp, x, y T) bool {
	switch op {
	case cmpEq:
		return x == y
	case cmpNe:
		return x != y
	case cmpGt:
		return x > y
	case cmpGe:
		return x >= y
	case cmpLt:
		return x < y
	case cmpLe:
		return x <= y
	default:
		panic("unknown comparison op")
	}
}
