package tensor

import (
	"fmt"
	"iter"
)

// FillTensor is a single element logically repeated over a shape. It owns no
// storage, so it can stand in for a broadcast operand without allocating.
type FillTensor[E any] struct {
	shape   Shape
	order   StorageOrder
	element E
}

// NewFill creates a fill of element over shape.
//
// Example:
//
//	f, _ := tensor.NewFill(Shape{4}, 7)
//	for v := range f.Values() { ... } // 7 7 7 7
func NewFill[E any](shape Shape, element E) (FillTensor[E], error) {
	if err := shape.Validate(); err != nil {
		return FillTensor[E]{}, err
	}
	return FillTensor[E]{shape: shape.Clone(), order: RowMajor, element: element}, nil
}

// Shape returns the fill's shape.
func (f FillTensor[E]) Shape() Shape {
	return f.shape
}

// Order returns the storage order used when the fill is materialized by
// default.
func (f FillTensor[E]) Order() StorageOrder {
	return f.order
}

// Element returns the repeated value.
func (f FillTensor[E]) Element() E {
	return f.element
}

// Count returns the number of logical elements.
func (f FillTensor[E]) Count() int {
	return f.shape.NumElements()
}

// Elements returns an iterator producing the element Count times.
func (f FillTensor[E]) Elements() *FillIterator[E] {
	return f.Repeat(f.Count())
}

// Repeat returns an iterator producing the element exactly n times.
func (f FillTensor[E]) Repeat(n int) *FillIterator[E] {
	return &FillIterator[E]{element: f.element, remaining: max(n, 0)}
}

// Values iterates over the Count logical elements.
func (f FillTensor[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for range f.Count() {
			if !yield(f.element) {
				return
			}
		}
	}
}

// AsDense returns a dense view of the fill: a one-element buffer addressed
// with all-zero strides. Set on the view copies first, so the shared
// element is never overwritten through it.
func (f FillTensor[E]) AsDense() *DenseTensor[E] {
	buf := BufferOf([]E{f.element})
	strides := make([]int, len(f.shape))
	span := 1
	if f.Count() == 0 {
		span = 0
	}
	return &DenseTensor[E]{
		shape:   f.shape.Clone(),
		strides: strides,
		order:   f.order,
		count:   f.Count(),
		span:    span,
		buffer:  buf,
		shared:  true,
	}
}

// Materialize returns a packed tensor holding Count copies of the element.
func (f FillTensor[E]) Materialize(order StorageOrder) (*DenseTensor[E], error) {
	return Full(f.shape, f.element, order)
}

// String returns a human-readable description of the fill.
func (f FillTensor[E]) String() string {
	return fmt.Sprintf("FillTensor%v(%v)", f.shape, f.element)
}

// FillEqual reports whether two fills have the same shape and element.
func FillEqual[E comparable](a, b FillTensor[E]) bool {
	return a.shape.Equal(b.shape) && a.element == b.element
}

// FillIterator produces one value a fixed number of times.
type FillIterator[E any] struct {
	element   E
	remaining int
}

// Next returns the element until the count is exhausted.
func (it *FillIterator[E]) Next() (E, bool) {
	if it.remaining <= 0 {
		var zero E
		return zero, false
	}
	it.remaining--
	return it.element, true
}

// Remaining returns how many values are left.
func (it *FillIterator[E]) Remaining() int {
	return it.remaining
}
