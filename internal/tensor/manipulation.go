package tensor

import (
	"fmt"
	"slices"
)

// Share returns a new view of the same elements. Both views now alias the
// buffer, so the first Set on either one copies.
func (t *DenseTensor[E]) Share() *DenseTensor[E] {
	return t.view(t.shape.Clone(), slices.Clone(t.strides), t.offset)
}

// Row returns the view at index i of axis 0, with rank one less.
// This is a view operation (no data copy).
//
// Example:
//
//	t, _ := tensor.FromNested[int]([][]int{{1, 2}, {3, 4}}, RowMajor)
//	r, _ := t.Row(1) // [3 4]
func (t *DenseTensor[E]) Row(i int) (*DenseTensor[E], error) {
	if len(t.shape) == 0 {
		return nil, fmt.Errorf("%w: row of a scalar", ErrInvalidShape)
	}
	if i < 0 || i >= t.shape[0] {
		return nil, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfBounds, i, t.shape[0])
	}
	return t.view(t.shape[1:].Clone(), slices.Clone(t.strides[1:]), t.offset+i*t.strides[0]), nil
}

// Slice restricts axis to [start, end). This is a view operation.
func (t *DenseTensor[E]) Slice(axis, start, end int) (*DenseTensor[E], error) {
	if axis < 0 || axis >= len(t.shape) {
		return nil, fmt.Errorf("%w: axis %d for rank %d", ErrIndexOutOfBounds, axis, len(t.shape))
	}
	if start < 0 || end < start || end > t.shape[axis] {
		return nil, fmt.Errorf("%w: slice [%d:%d] of dimension %d (size %d)",
			ErrIndexOutOfBounds, start, end, axis, t.shape[axis])
	}
	shape := t.shape.Clone()
	shape[axis] = end - start
	offset := t.offset
	if end > start {
		offset += start * t.strides[axis]
	}
	return t.view(shape, slices.Clone(t.strides), offset), nil
}

// Transpose permutes the axes. With no arguments the axes are reversed.
// The result keeps the storage order of t, so it is generally not
// contiguous.
//
// Example:
//
//	x, _ := tensor.Zeros[float32](Shape{2, 3}, RowMajor)
//	y, _ := x.Transpose() // Shape [3 2], strides [1 3]
func (t *DenseTensor[E]) Transpose(axes ...int) (*DenseTensor[E], error) {
	rank := len(t.shape)
	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	if len(axes) != rank {
		return nil, fmt.Errorf("%w: %d axes for rank %d", ErrInvalidShape, len(axes), rank)
	}

	seen := make([]bool, rank)
	shape := make(Shape, rank)
	strides := make([]int, rank)
	for i, a := range axes {
		if a < 0 || a >= rank || seen[a] {
			return nil, fmt.Errorf("%w: %v is not a permutation of %d axes", ErrInvalidShape, axes, rank)
		}
		seen[a] = true
		shape[i] = t.shape[a]
		strides[i] = t.strides[a]
	}
	return t.view(shape, strides, t.offset), nil
}

// Broadcast expands t to shape using NumPy rules: axes of extent 1 and
// missing leading axes get stride 0. No data is copied, so the span of the
// result is smaller than its element count.
func (t *DenseTensor[E]) Broadcast(shape Shape) (*DenseTensor[E], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(shape) < len(t.shape) {
		return nil, fmt.Errorf("%w: cannot broadcast %v to lower rank %v", ErrShapeMismatch, t.shape, shape)
	}

	strides := make([]int, len(shape))
	lead := len(shape) - len(t.shape)
	for i := range shape {
		src := i - lead
		switch {
		case src < 0:
			strides[i] = 0
		case t.shape[src] == shape[i]:
			strides[i] = t.strides[src]
		case t.shape[src] == 1:
			strides[i] = 0
		default:
			return nil, fmt.Errorf("%w: cannot broadcast %v to %v (dimension %d: %d vs %d)",
				ErrShapeMismatch, t.shape, shape, i, t.shape[src], shape[i])
		}
	}
	return t.view(shape.Clone(), strides, t.offset), nil
}

// Reshape returns a view with a new shape and the same element count.
// The tensor must be contiguous; call Contiguous first otherwise.
func (t *DenseTensor[E]) Reshape(shape Shape) (*DenseTensor[E], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != t.count {
		return nil, fmt.Errorf("%w: cannot reshape %v (%d elements) to %v (%d elements)",
			ErrShapeMismatch, t.shape, t.count, shape, shape.NumElements())
	}
	if !t.IsContiguous() {
		return nil, fmt.Errorf("%w: reshape of a non-contiguous tensor", ErrInvalidStrides)
	}
	return t.view(shape.Clone(), shape.SequentialStrides(t.order), t.offset), nil
}

// Clone creates a packed, exclusively owned copy in the same storage order.
func (t *DenseTensor[E]) Clone() *DenseTensor[E] {
	data := make([]E, t.count)
	t.copyTo(data)
	return &DenseTensor[E]{
		shape:   t.shape.Clone(),
		strides: t.shape.SequentialStrides(t.order),
		order:   t.order,
		count:   t.count,
		span:    t.count,
		offset:  0,
		buffer:  BufferOf(data),
	}
}

// Contiguous returns t as a packed tensor: a shared view when t already is
// one, otherwise a packed copy.
func (t *DenseTensor[E]) Contiguous() *DenseTensor[E] {
	if t.IsContiguous() {
		return t.Share()
	}
	return t.Clone()
}
