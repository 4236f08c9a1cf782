package tensor

import "fmt"

// rawCast converts a tensor to a numeric target dtype. Bool inputs convert
// to 0 and 1; float-to-int conversion truncates toward zero.
func rawCast(x *RawTensor, dtype DataType) *RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	result := mustNewRaw("cast", x.Shape(), dtype)

	switch dtype {
	case Float32:
		castKernel(result.AsFloat32(), x)
	case Float64:
		castKernel(result.AsFloat64(), x)
	case Int32:
		castKernel(result.AsInt32(), x)
	case Int64:
		castKernel(result.AsInt64(), x)
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", dtype))
	}

	return result
}

func castKernel[D Num](dst []D, src *RawTensor) {
	switch src.DType() {
	case Float32:
		for i, v := range src.AsFloat32() {
			dst[i] = D(v)
		}
	case Float64:
		for i, v := range src.AsFloat64() {
			dst[i] = D(v)
		}
	case Int32:
		for i, v := range src.AsInt32() {
			dst[i] = D(v)
		}
	case Int64:
		for i, v := range src.AsInt64() {
			dst[i] = D(v)
		}
	case Bool:
		for i, v := range src.AsBool() {
			if v {
				dst[i] = 1
			} else {
				dst[i] = 0
			}
		}
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", src.DType()))
	}
}
