package tensor

import "fmt"

// Flat constructors take their elements in storage order: element i lands at
// buffer offset i. For RowMajor that is the usual nested reading order; for
// ColMajor the first axis varies fastest.

// Zeros creates a packed tensor filled with the zero value.
//
// Example:
//
//	t, _ := tensor.Zeros[float32](Shape{3, 4}, RowMajor)
func Zeros[E any](shape Shape, order StorageOrder) (*DenseTensor[E], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return NewDense(shape, nil, order, NewBuffer[E](shape.NumElements()), 0, false)
}

// Full creates a packed tensor filled with value.
//
// Example:
//
//	t, _ := tensor.Full(Shape{3, 3}, float32(3.14), RowMajor)
func Full[E any](shape Shape, value E, order StorageOrder) (*DenseTensor[E], error) {
	t, err := Zeros[E](shape, order)
	if err != nil {
		return nil, err
	}
	data := t.buffer.data
	for i := range data {
		data[i] = value
	}
	return t, nil
}

// FromSlice creates a packed tensor from a flat slice in storage order.
// The slice is copied.
func FromSlice[E any](data []E, shape Shape, order StorageOrder) (*DenseTensor[E], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}
	buf := make([]E, len(data))
	copy(buf, data)
	return NewDense(shape, nil, order, BufferOf(buf), 0, false)
}

// Arange creates a packed tensor holding start, start+1, ... in storage order.
//
// Example:
//
//	t, _ := tensor.Arange(0, Shape{2, 3}, RowMajor) // [[0 1 2] [3 4 5]]
func Arange[E Numeric](start E, shape Shape, order StorageOrder) (*DenseTensor[E], error) {
	t, err := Zeros[E](shape, order)
	if err != nil {
		return nil, err
	}
	v := start
	for i := range t.buffer.data {
		t.buffer.data[i] = v
		v++
	}
	return t, nil
}

// Linspace creates a packed tensor of evenly spaced values from first to last
// inclusive, in storage order.
func Linspace[E Float](first, last E, shape Shape, order StorageOrder) (*DenseTensor[E], error) {
	t, err := Zeros[E](shape, order)
	if err != nil {
		return nil, err
	}
	n := t.count
	switch n {
	case 0:
		return t, nil
	case 1:
		t.buffer.data[0] = first
		return t, nil
	}
	step := (last - first) / E(n-1)
	for i := range t.buffer.data {
		t.buffer.data[i] = first + E(i)*step
	}
	t.buffer.data[n-1] = last
	return t, nil
}

// Convert creates a packed tensor of the same shape and storage order with fn
// applied to every element.
//
// Example:
//
//	f, _ := tensor.Arange(0, Shape{4}, RowMajor)
//	b := tensor.Convert(f, func(v int) bool { return v%2 == 0 })
func Convert[S, E any](t *DenseTensor[S], fn func(S) E) *DenseTensor[E] {
	src := make([]S, t.count)
	t.copyTo(src)
	data := make([]E, t.count)
	for i, v := range src {
		data[i] = fn(v)
	}
	return &DenseTensor[E]{
		shape:   t.shape.Clone(),
		strides: t.shape.SequentialStrides(t.order),
		order:   t.order,
		count:   t.count,
		span:    t.count,
		buffer:  BufferOf(data),
	}
}
