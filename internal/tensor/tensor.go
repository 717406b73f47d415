package tensor

import (
	"fmt"
	"math"
	"slices"

	"github.com/born-ml/strided/internal/parallel"
)

// copyConfig controls the goroutine fan-out of strided bulk copies.
var copyConfig = parallel.DefaultConfig()

// DenseTensor is a strided view of a Buffer.
//
// The element at a logical position p lives at buffer offset
// Offset() + sum(p[axis] * Strides()[axis]). Shape, strides and offset are
// fixed once constructed: reshaping, slicing and transposing build new views.
// The only mutation is Set, which first takes an exclusive copy when the
// buffer is aliased.
//
// Example:
//
//	t, _ := tensor.FromSlice([]float32{0, 1, 2, 3, 4, 5}, Shape{2, 3}, RowMajor)
//	v := t.At(1, 2) // 5
type DenseTensor[E any] struct {
	shape   Shape
	strides []int
	order   StorageOrder
	count   int
	span    int
	offset  int
	buffer  *Buffer[E]
	shared  bool
}

// NewDense creates a tensor over buf.
//
// A nil strides argument selects shape.SequentialStrides(order). The tensor
// takes over one reference to buf; callers that keep using buf through
// another view must Retain it first. shared marks the buffer as aliased, so
// the first Set copies even if the reference count says otherwise.
func NewDense[E any](shape Shape, strides []int, order StorageOrder, buf *Buffer[E], offset int, shared bool) (*DenseTensor[E], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if !order.valid() {
		return nil, fmt.Errorf("%w: unknown storage order %d", ErrInvalidStrides, order)
	}
	if buf == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrSpanOutOfBounds)
	}

	if strides == nil {
		strides = shape.SequentialStrides(order)
	} else {
		if len(strides) != len(shape) {
			return nil, fmt.Errorf("%w: %d strides for rank %d", ErrInvalidStrides, len(strides), len(shape))
		}
		for axis, s := range strides {
			if s < 0 {
				return nil, fmt.Errorf("%w: stride %d at axis %d is negative", ErrInvalidStrides, s, axis)
			}
		}
		strides = slices.Clone(strides)
	}

	span, ok := spanCount(shape, strides)
	if !ok {
		return nil, fmt.Errorf("%w: span of %v with strides %v overflows int", ErrInvalidStrides, shape, strides)
	}
	if offset < 0 || span > buf.Len()-offset {
		return nil, fmt.Errorf("%w: span %d at offset %d, buffer holds %d", ErrSpanOutOfBounds, span, offset, buf.Len())
	}

	return &DenseTensor[E]{
		shape:   shape.Clone(),
		strides: strides,
		order:   order,
		count:   shape.NumElements(),
		span:    span,
		offset:  offset,
		buffer:  buf,
		shared:  shared,
	}, nil
}

// spanCount returns the highest reachable linear offset + 1, or 0 for an
// empty shape.
func spanCount(shape Shape, strides []int) (int, bool) {
	if shape.NumElements() == 0 {
		return 0, true
	}
	span := 1
	for axis, dim := range shape {
		step := dim - 1
		if strides[axis] != 0 && step > (math.MaxInt-span)/strides[axis] {
			return 0, false
		}
		span += step * strides[axis]
	}
	return span, true
}

// overlapping reports whether two positions of shape may map to the same
// offset under strides. Axes are taken from the smallest stride up: each
// stride must step past everything the faster axes reach. Layouts that
// interleave without colliding are also reported, which only costs a copy.
func overlapping(shape Shape, strides []int) bool {
	if shape.NumElements() == 0 {
		return false
	}
	axes := make([]int, 0, len(shape))
	for axis, dim := range shape {
		if dim > 1 {
			axes = append(axes, axis)
		}
	}
	slices.SortFunc(axes, func(a, b int) int { return strides[a] - strides[b] })

	reach := 0
	for _, axis := range axes {
		if strides[axis] <= reach {
			return true
		}
		reach += strides[axis] * (shape[axis] - 1)
	}
	return false
}

// Shape returns the tensor's shape.
func (t *DenseTensor[E]) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's memory strides.
func (t *DenseTensor[E]) Strides() []int {
	return t.strides
}

// Order returns the storage order the tensor was declared with.
func (t *DenseTensor[E]) Order() StorageOrder {
	return t.order
}

// Rank returns the number of axes.
func (t *DenseTensor[E]) Rank() int {
	return len(t.shape)
}

// Count returns the number of logical elements.
func (t *DenseTensor[E]) Count() int {
	return t.count
}

// SpanCount returns the number of buffer elements the strides can reach.
// It equals Count for packed tensors and is smaller for broadcasts.
func (t *DenseTensor[E]) SpanCount() int {
	return t.span
}

// Offset returns the buffer offset of the element at the origin.
func (t *DenseTensor[E]) Offset() int {
	return t.offset
}

// Buffer returns the underlying storage.
func (t *DenseTensor[E]) Buffer() *Buffer[E] {
	return t.buffer
}

// IsShared reports whether the tensor was created as an alias of a buffer
// owned elsewhere.
func (t *DenseTensor[E]) IsShared() bool {
	return t.shared
}

// IsContiguous reports whether the strides equal the sequential strides of
// the declared storage order, so the elements occupy
// [Offset(), Offset()+Count()) in iteration order.
func (t *DenseTensor[E]) IsContiguous() bool {
	return stridesEqual(t.strides, t.shape.SequentialStrides(t.order))
}

// LinearOffset maps a logical position to its buffer offset without
// checking bounds.
func (t *DenseTensor[E]) LinearOffset(position []int) int {
	return t.offset + dot(position, t.strides)
}

// At returns the element at the given position.
// Panics with ErrIndexOutOfBounds if the position is invalid.
func (t *DenseTensor[E]) At(position ...int) E {
	t.checkPosition(position)
	return t.buffer.data[t.LinearOffset(position)]
}

// Set writes value at the given position.
//
// When the buffer is aliased (shared flag, more than one reference, or a
// layout where several positions map to one element, such as a broadcast or
// strides smaller than the extent of a faster axis) the tensor
// first switches to a private packed copy, so other views keep their values.
// Panics with ErrIndexOutOfBounds if the position is invalid.
func (t *DenseTensor[E]) Set(value E, position ...int) {
	t.checkPosition(position)
	t.MakeExclusive()
	t.buffer.data[t.LinearOffset(position)] = value
}

// MakeExclusive replaces an aliased buffer with a private packed copy in the
// same storage order. It reports whether a copy was made.
func (t *DenseTensor[E]) MakeExclusive() bool {
	if !t.shared && !overlapping(t.shape, t.strides) && t.buffer.IsUnique() {
		return false
	}

	data := make([]E, t.count)
	t.copyTo(data)

	old := t.buffer
	t.buffer = BufferOf(data)
	t.strides = t.shape.SequentialStrides(t.order)
	t.offset = 0
	t.span = t.count
	t.shared = false
	old.Release()
	return true
}

// Release drops this view's reference to the buffer.
func (t *DenseTensor[E]) Release() {
	t.buffer.Release()
}

// String returns a human-readable description of the tensor.
func (t *DenseTensor[E]) String() string {
	var zero E
	return fmt.Sprintf("DenseTensor[%T]%v strides=%v %s", zero, t.shape, t.strides, t.order)
}

// checkPosition panics unless position addresses an element.
func (t *DenseTensor[E]) checkPosition(position []int) {
	if len(position) != len(t.shape) {
		panic(fmt.Errorf("%w: expected %d indices, got %d", ErrIndexOutOfBounds, len(t.shape), len(position)))
	}
	for axis, p := range position {
		if p < 0 || p >= t.shape[axis] {
			panic(fmt.Errorf("%w: index %d for dimension %d (size %d)", ErrIndexOutOfBounds, p, axis, t.shape[axis]))
		}
	}
}

// view returns a new alias of t's buffer.
func (t *DenseTensor[E]) view(shape Shape, strides []int, offset int) *DenseTensor[E] {
	t.buffer.Retain()
	return t.borrow(shape, strides, offset)
}

// borrow builds a view without taking a reference. Only for views that do
// not outlive the calling method.
func (t *DenseTensor[E]) borrow(shape Shape, strides []int, offset int) *DenseTensor[E] {
	span, _ := spanCount(shape, strides)
	return &DenseTensor[E]{
		shape:   shape,
		strides: strides,
		order:   t.order,
		count:   shape.NumElements(),
		span:    span,
		offset:  offset,
		buffer:  t.buffer,
		shared:  true,
	}
}

// copyTo writes the elements into dst in iteration order. Packed tensors
// copy the buffer range directly; strided ones are walked one slab of the
// slowest axis per task.
func (t *DenseTensor[E]) copyTo(dst []E) {
	if t.count == 0 {
		return
	}
	if t.IsContiguous() {
		copy(dst, t.buffer.data[t.offset:t.offset+t.count])
		return
	}
	if len(t.shape) < 2 {
		t.copyStrided(dst)
		return
	}

	axis := 0
	if t.order == ColMajor {
		axis = len(t.shape) - 1
	}
	n := t.shape[axis]
	slab := t.count / n
	parallel.For(n, func(i int) {
		t.slab(axis, i).copyStrided(dst[i*slab : (i+1)*slab])
	}, copyConfig)
}

// copyStrided walks positions in iteration order.
func (t *DenseTensor[E]) copyStrided(dst []E) {
	position := make([]int, len(t.shape))
	for i := range dst {
		dst[i] = t.buffer.data[t.LinearOffset(position)]
		t.shape.Increment(position, t.order)
	}
}

// slab borrows the sub-tensor at index i of axis.
func (t *DenseTensor[E]) slab(axis, i int) *DenseTensor[E] {
	shape := make(Shape, 0, len(t.shape)-1)
	strides := make([]int, 0, len(t.shape)-1)
	for a := range t.shape {
		if a == axis {
			continue
		}
		shape = append(shape, t.shape[a])
		strides = append(strides, t.strides[a])
	}
	return t.borrow(shape, strides, t.offset+i*t.strides[axis])
}

// Equal reports whether a and b have the same shape and the same element at
// every logical position. Strides and storage order are not compared.
func Equal[E comparable](a, b *DenseTensor[E]) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	if a.count == 0 {
		return true
	}
	if a.order == b.order && a.IsContiguous() && b.IsContiguous() {
		return slices.Equal(
			a.buffer.data[a.offset:a.offset+a.count],
			b.buffer.data[b.offset:b.offset+b.count],
		)
	}
	for pos := range a.shape.Positions(RowMajor) {
		if a.buffer.data[a.LinearOffset(pos)] != b.buffer.data[b.LinearOffset(pos)] {
			return false
		}
	}
	return true
}
