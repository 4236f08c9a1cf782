package tensor

import "fmt"

// Tensor is a generic dense tensor with element type T.
// It is a thin typed facade over RawTensor; all operations are pure and
// produce new tensors.
type Tensor[T DType] struct {
	raw *RawTensor
}

// New creates a Tensor from a RawTensor.
// Panics if T does not match the raw tensor's dtype.
func New[T DType](raw *RawTensor) *Tensor[T] {
	var dummy T
	if want := inferDataType(dummy); raw.DType() != want {
		panic(fmt.Sprintf("tensor: raw dtype %s does not match element type %s", raw.DType(), want))
	}
	return &Tensor[T]{raw: raw}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	t := New[T](raw)
	copy(t.Data(), data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return t.raw.DType()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
func (t *Tensor[T]) Raw() *RawTensor {
	return t.raw
}

// Data returns a typed slice view of the tensor's data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return typedView[T](t.raw)
}

// Item returns the value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor[T]) Item() T {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.Shape()))
	}
	return t.Data()[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) At(indices ...int) T {
	return t.Data()[t.offsetOf(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.Data()[t.offsetOf(indices)] = value
}

func (t *Tensor[T]) offsetOf(indices []int) int {
	if len(indices) != len(t.Shape()) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.Shape()), len(indices)))
	}

	offset := 0
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.Shape()[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.Shape()[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.raw.DType(), t.raw.Shape())
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{raw: t.raw.Clone()}
}

// Element-wise arithmetic with broadcasting.

// Add performs element-wise addition with broadcasting.
func (t *Tensor[T]) Add(other *Tensor[T]) *Tensor[T] {
	return New[T](rawBinary("add", opAdd, t.raw, other.raw))
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T]) Sub(other *Tensor[T]) *Tensor[T] {
	return New[T](rawBinary("sub", opSub, t.raw, other.raw))
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T]) Mul(other *Tensor[T]) *Tensor[T] {
	return New[T](rawBinary("mul", opMul, t.raw, other.raw))
}

// Div performs element-wise division with broadcasting.
// Integer division truncates toward zero, as in Go.
func (t *Tensor[T]) Div(other *Tensor[T]) *Tensor[T] {
	return New[T](rawBinary("div", opDiv, t.raw, other.raw))
}

// Maximum returns the element-wise maximum with broadcasting.
func (t *Tensor[T]) Maximum(other *Tensor[T]) *Tensor[T] {
	return New[T](rawBinary("maximum", opMax, t.raw, other.raw))
}

// Minimum returns the element-wise minimum with broadcasting.
func (t *Tensor[T]) Minimum(other *Tensor[T]) *Tensor[T] {
	return New[T](rawBinary("minimum", opMin, t.raw, other.raw))
}

// Comparisons, returning bool tensors.

// Eq returns t == other element-wise.
func (t *Tensor[T]) Eq(other *Tensor[T]) *Tensor[bool] {
	return New[bool](rawCompare("eq", cmpEq, t.raw, other.raw))
}

// Ne returns t != other element-wise.
func (t *Tensor[T]) Ne(other *Tensor[T]) *Tensor[bool] {
	return New[bool](rawCompare("ne", cmpNe, t.raw, other.raw))
}

// Gt returns t > other element-wise.
func (t *Tensor[T]) Gt(other *Tensor[T]) *Tensor[bool] {
	return New[bool](rawCompare("gt", cmpGt, t.raw, other.raw))
}

// Ge returns t >= other element-wise.
func (t *Tensor[T]) Ge(other *Tensor[T]) *Tensor[bool] {
	return New[bool](rawCompare("ge", cmpGe, t.raw, other.raw))
}

// Lt returns t < other element-wise.
func (t *Tensor[T]) Lt(other *Tensor[T]) *Tensor[bool] {
	return New[bool](rawCompare("lt", cmpLt, t.raw, other.raw))
}

// Le returns t <= other element-wise.
func (t *Tensor[T]) Le(other *Tensor[T]) *Tensor[bool] {
	return New[bool](rawCompare("le", cmpLe, t.raw, other.raw))
}

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
func (t *Tensor[T]) MatMul(other *Tensor[T]) *Tensor[T] {
	return New[T](rawMatMul(t.raw, other.raw))
}

// Sum returns the total of all elements as a single-element vector.
func (t *Tensor[T]) Sum() *Tensor[T] {
	return New[T](rawSum(t.raw))
}

// CumSum returns the prefix sums of a 1D tensor.
func (t *Tensor[T]) CumSum() *Tensor[T] {
	return New[T](rawCumSum(t.raw))
}

// Reshape returns a tensor with the same data but a different shape.
// The new shape must have the same number of elements.
func (t *Tensor[T]) Reshape(newShape ...int) *Tensor[T] {
	return New[T](rawReshape(t.raw, Shape(newShape)))
}

// Transpose swaps the rows and columns of a 2D tensor.
func (t *Tensor[T]) Transpose() *Tensor[T] {
	return New[T](rawTranspose(t.raw))
}

// ExpandDims inserts a dimension of size 1 at the given position.
func (t *Tensor[T]) ExpandDims(dim int) *Tensor[T] {
	return New[T](rawExpandDims(t.raw, dim))
}

// Squeeze removes a dimension of size 1 at the given position.
func (t *Tensor[T]) Squeeze(dim int) *Tensor[T] {
	return New[T](rawSqueeze(t.raw, dim))
}

// Take selects entries along dimension 0 using an integer index vector.
// For a 1D tensor this is fancy indexing; for a 2D tensor it selects rows.
func Take[T DType, I Int](t *Tensor[T], index *Tensor[I]) *Tensor[T] {
	return New[T](rawTake(t.raw, index.raw))
}

// Where selects elements from x where cond is true and from y otherwise,
// with broadcasting across all three operands.
func Where[T DType](cond *Tensor[bool], x, y *Tensor[T]) *Tensor[T] {
	return New[T](rawWhere(cond.raw, x.raw, y.raw))
}

// Cat concatenates tensors along a dimension.
func Cat[T DType](tensors []*Tensor[T], dim int) *Tensor[T] {
	raws := make([]*RawTensor, len(tensors))
	for i, t := range tensors {
		raws[i] = t.raw
	}
	return New[T](rawCat(raws, dim))
}

// Cast converts a tensor to element type U. Bool inputs convert to 0 and 1;
// float-to-int conversion truncates toward zero.
func Cast[U Num, T DType](t *Tensor[T]) *Tensor[U] {
	var dummy U
	return New[U](rawCast(t.raw, inferDataType(dummy)))
}
