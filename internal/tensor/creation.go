package tensor

import "fmt"

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](shape Shape) *Tensor[T] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T](raw)
}

// Ones creates a tensor filled with ones (true for bool tensors).
func Ones[T DType](shape Shape) *Tensor[T] {
	t := Zeros[T](shape)
	data := t.Data()

	var dummy T
	var one any
	switch any(dummy).(type) {
	case float32:
		one = float32(1)
	case float64:
		one = float64(1)
	case int32:
		one = int32(1)
	case int64:
		one = int64(1)
	case bool:
		one = true
	}

	for i := range data {
		data[i] = one.(T)
	}
	return t
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Scalar creates a single-element 1D tensor, convenient as a broadcast
// operand.
func Scalar[T DType](value T) *Tensor[T] {
	return Full(Shape{1}, value)
}

// Arange creates a 1D tensor with values from start to end (exclusive),
// stepping by one.
func Arange[T Num](start, end T) *Tensor[T] {
	numElements := int(end - start)
	if numElements <= 0 {
		panic(fmt.Sprintf("arange: end must be greater than start, got [%v, %v)", start, end))
	}

	t := Zeros[T](Shape{numElements})
	data := t.Data()
	for i := range data {
		data[i] = start + T(i)
	}
	return t
}

// Linspace creates a 1D tensor of n evenly spaced values from start to stop
// inclusive. The degenerate case n == 1 returns [start].
func Linspace[T Float](start, stop T, n int) *Tensor[T] {
	if n < 1 {
		panic(fmt.Sprintf("linspace: n must be >= 1, got %d", n))
	}

	step := (stop - start) / T(max(n-1, 1))

	t := Zeros[T](Shape{n})
	data := t.Data()
	for i := range data {
		data[i] = start + T(i)*step
	}
	if n > 1 {
		// Pin the endpoint; repeated addition of step accumulates error.
		data[n-1] = stop
	}
	return t
}

// Eye creates an n×n identity matrix.
func Eye[T Num](n int) *Tensor[T] {
	t := Zeros[T](Shape{n, n})
	for i := 0; i < n; i++ {
		t.Set(1, i, i)
	}
	return t
}
