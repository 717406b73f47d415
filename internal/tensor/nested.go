package tensor

import (
	"fmt"
	"reflect"
)

// FromNested builds a packed tensor from nested slices (or arrays) of E.
// The rank is the nesting depth; each extent is the length at that depth.
// Sibling sequences of different lengths fail with ErrRaggedShape.
//
// Example:
//
//	t, _ := tensor.FromNested[int]([][]int{{1, 2, 3}, {4, 5, 6}}, RowMajor)
//	t.Shape() // [2 3]
func FromNested[E any](nested any, order StorageOrder) (*DenseTensor[E], error) {
	return FromNestedFunc(nested, order, func(v E) E { return v })
}

// FromNestedFunc is FromNested with an element conversion: nested holds
// elements of type S and conv maps each one to E.
//
// Example:
//
//	t, _ := tensor.FromNestedFunc([][]int{{1, 2}, {3, 4}}, RowMajor,
//	    func(v int) float32 { return float32(v) })
func FromNestedFunc[S, E any](nested any, order StorageOrder, conv func(S) E) (*DenseTensor[E], error) {
	v := reflect.ValueOf(nested)
	shape, err := nestedShape(v, reflect.TypeFor[S]())
	if err != nil {
		return nil, err
	}

	t, err := Zeros[E](shape, order)
	if err != nil {
		return nil, err
	}

	position := make([]int, len(shape))
	err = walkNested(v, shape, 0, position, func(pos []int, e reflect.Value) {
		s, _ := e.Interface().(S)
		t.buffer.data[t.LinearOffset(pos)] = conv(s)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// nestedShape infers extents from the first element at every depth.
func nestedShape(v reflect.Value, elem reflect.Type) (Shape, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: nil input, want nested %s", ErrElementType, elem)
	}

	var shape Shape
	typ := v.Type()
	for typ != elem {
		if typ.Kind() != reflect.Slice && typ.Kind() != reflect.Array {
			return nil, fmt.Errorf("%w: found %s at depth %d, want %s", ErrElementType, typ, len(shape), elem)
		}
		n := 0
		if v.IsValid() {
			n = v.Len()
		}
		shape = append(shape, n)
		if n > 0 {
			v = v.Index(0)
		} else {
			v = reflect.Value{}
		}
		typ = typ.Elem()
	}
	return shape, nil
}

// walkNested visits every leaf in row-major reading order, checking that
// each sequence at depth axis has exactly shape[axis] entries.
func walkNested(v reflect.Value, shape Shape, axis int, position []int, visit func([]int, reflect.Value)) error {
	if axis == len(shape) {
		visit(position, v)
		return nil
	}
	if v.Len() != shape[axis] {
		return fmt.Errorf("%w: sequence at %v has length %d, want %d",
			ErrRaggedShape, position[:axis], v.Len(), shape[axis])
	}
	for i := 0; i < shape[axis]; i++ {
		position[axis] = i
		if err := walkNested(v.Index(i), shape, axis+1, position, visit); err != nil {
			return err
		}
	}
	return nil
}

// Nested converts the tensor to nested slices of E, one level per axis:
// E for rank 0, []E for rank 1, [][]E for rank 2 and so on. The result is
// indexed by logical position whatever the strides or storage order.
func (t *DenseTensor[E]) Nested() any {
	typ := reflect.TypeFor[E]()
	for range t.shape {
		typ = reflect.SliceOf(typ)
	}
	return t.nested(typ).Interface()
}

// nested recurses over axis 0; rank-1 rows take the flat path.
func (t *DenseTensor[E]) nested(typ reflect.Type) reflect.Value {
	switch len(t.shape) {
	case 0:
		return reflect.ValueOf(&t.buffer.data[t.offset]).Elem()
	case 1:
		return reflect.ValueOf(t.flat())
	}

	out := reflect.MakeSlice(typ, t.shape[0], t.shape[0])
	for i := 0; i < t.shape[0]; i++ {
		row := t.borrow(t.shape[1:], t.strides[1:], t.offset+i*t.strides[0])
		out.Index(i).Set(row.nested(typ.Elem()))
	}
	return out
}

// flat copies a rank-1 tensor: straight from the buffer when packed,
// through the iterator otherwise.
func (t *DenseTensor[E]) flat() []E {
	out := make([]E, t.count)
	if t.count == 0 {
		return out
	}
	if t.IsContiguous() {
		copy(out, t.buffer.data[t.offset:t.offset+t.count])
		return out
	}
	it := t.Elements()
	for i := range out {
		out[i], _ = it.Next()
	}
	return out
}

// FromSlice1 is FromNested for a flat slice.
func FromSlice1[E any](data []E, order StorageOrder) (*DenseTensor[E], error) {
	return FromNested[E](data, order)
}

// FromSlice2 is FromNested for a matrix.
func FromSlice2[E any](data [][]E, order StorageOrder) (*DenseTensor[E], error) {
	return FromNested[E](data, order)
}

// FromSlice3 is FromNested for a rank-3 nesting.
func FromSlice3[E any](data [][][]E, order StorageOrder) (*DenseTensor[E], error) {
	return FromNested[E](data, order)
}

// ToSlice1 converts a rank-1 tensor to a slice.
func ToSlice1[E any](t *DenseTensor[E]) ([]E, error) {
	if t.Rank() != 1 {
		return nil, fmt.Errorf("%w: rank %d, want 1", ErrShapeMismatch, t.Rank())
	}
	return t.flat(), nil
}

// ToSlice2 converts a rank-2 tensor to nested slices.
func ToSlice2[E any](t *DenseTensor[E]) ([][]E, error) {
	if t.Rank() != 2 {
		return nil, fmt.Errorf("%w: rank %d, want 2", ErrShapeMismatch, t.Rank())
	}
	return t.Nested().([][]E), nil
}

// ToSlice3 converts a rank-3 tensor to nested slices.
func ToSlice3[E any](t *DenseTensor[E]) ([][][]E, error) {
	if t.Rank() != 3 {
		return nil, fmt.Errorf("%w: rank %d, want 3", ErrShapeMismatch, t.Rank())
	}
	return t.Nested().([][][]E), nil
}
