// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/strided/internal/tensor"
)

// Type aliases for public API

// DType is the set of element types with a runtime DataType tag.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// Numeric is the constraint for element types pooling and Arange accept.
type Numeric = tensor.Numeric

// Float is the constraint for floating-point element types.
type Float = tensor.Float

// DataType represents the runtime type tag of tensor elements.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents where buffer data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the extents of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// StorageOrder selects which axis varies fastest in linear memory.
type StorageOrder = tensor.StorageOrder

// Storage order constants.
const (
	RowMajor StorageOrder = tensor.RowMajor
	ColMajor StorageOrder = tensor.ColMajor
)

// SequentialIndex is a cursor: a logical position plus the number of
// elements visited before it. Cursors compare by that count only.
type SequentialIndex = tensor.SequentialIndex

// Buffer is reference-counted linear storage shared by tensor views.
type Buffer[E any] = tensor.Buffer[E]

// DenseTensor is a strided view of a Buffer.
//
// Example:
//
//	t, _ := tensor.FromNested[int]([][]int{{0, 1, 2}, {3, 4, 5}}, tensor.RowMajor)
//	t.Strides() // [3 1]
//	t.At(1, 2)  // 5
type DenseTensor[E any] = tensor.DenseTensor[E]

// DenseIterator yields the elements of a tensor in iteration order.
type DenseIterator[E any] = tensor.DenseIterator[E]

// FillTensor is one element logically repeated over a shape, with no storage.
type FillTensor[E any] = tensor.FillTensor[E]

// FillIterator produces one value a fixed number of times.
type FillIterator[E any] = tensor.FillIterator[E]

// Pooling types.
type (
	Padding      = tensor.Padding
	PoolingMode  = tensor.PoolingMode
	PoolConfig   = tensor.PoolConfig
	PoolGeometry = tensor.PoolGeometry
)

// Padding constants.
const (
	Valid Padding = tensor.Valid
	Same  Padding = tensor.Same
)

// Pooling mode constants.
const (
	Max            PoolingMode = tensor.Max
	Average        PoolingMode = tensor.Average
	AveragePadding PoolingMode = tensor.AveragePadding
)

// Errors returned (or, from At and AtIndex, panicked) by tensor operations.
// Match them with errors.Is.
var (
	ErrInvalidShape        = tensor.ErrInvalidShape
	ErrInvalidStrides      = tensor.ErrInvalidStrides
	ErrRaggedShape         = tensor.ErrRaggedShape
	ErrElementType         = tensor.ErrElementType
	ErrShapeMismatch       = tensor.ErrShapeMismatch
	ErrSpanOutOfBounds     = tensor.ErrSpanOutOfBounds
	ErrIndexOutOfBounds    = tensor.ErrIndexOutOfBounds
	ErrNonContiguousOutput = tensor.ErrNonContiguousOutput
	ErrInvalidPool         = tensor.ErrInvalidPool
)

// Storage

// NewBuffer allocates a zeroed buffer of n elements.
func NewBuffer[E any](n int) *Buffer[E] {
	return tensor.NewBuffer[E](n)
}

// BufferOf wraps data in a buffer without copying.
func BufferOf[E any](data []E) *Buffer[E] {
	return tensor.BufferOf(data)
}

// NewDense creates a tensor over buf. A nil strides argument selects the
// sequential strides of order.
//
// This is a low-level function. Most users should use Zeros, FromSlice or
// FromNested instead.
func NewDense[E any](shape Shape, strides []int, order StorageOrder, buf *Buffer[E], offset int, shared bool) (*DenseTensor[E], error) {
	return tensor.NewDense(shape, strides, order, buf, offset, shared)
}

// Creation functions

// Zeros creates a packed tensor filled with the zero value.
//
// Example:
//
//	x, err := tensor.Zeros[float32](tensor.Shape{2, 3}, tensor.RowMajor)
func Zeros[E any](shape Shape, order StorageOrder) (*DenseTensor[E], error) {
	return tensor.Zeros[E](shape, order)
}

// Full creates a packed tensor filled with value.
func Full[E any](shape Shape, value E, order StorageOrder) (*DenseTensor[E], error) {
	return tensor.Full(shape, value, order)
}

// FromSlice creates a packed tensor from elements given in storage order.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, tensor.RowMajor)
func FromSlice[E any](data []E, shape Shape, order StorageOrder) (*DenseTensor[E], error) {
	return tensor.FromSlice(data, shape, order)
}

// Arange creates a packed tensor holding start, start+1, ... in storage order.
func Arange[E Numeric](start E, shape Shape, order StorageOrder) (*DenseTensor[E], error) {
	return tensor.Arange(start, shape, order)
}

// Linspace creates a packed tensor of evenly spaced values from first to
// last inclusive.
func Linspace[E Float](first, last E, shape Shape, order StorageOrder) (*DenseTensor[E], error) {
	return tensor.Linspace(first, last, shape, order)
}

// Convert creates a packed copy of t with fn applied to every element.
func Convert[S, E any](t *DenseTensor[S], fn func(S) E) *DenseTensor[E] {
	return tensor.Convert(t, fn)
}

// FromNested builds a tensor from nested slices or arrays of E.
//
// Example:
//
//	x, err := tensor.FromNested[float64]([][]float64{{1, 2}, {3, 4}}, tensor.RowMajor)
func FromNested[E any](nested any, order StorageOrder) (*DenseTensor[E], error) {
	return tensor.FromNested[E](nested, order)
}

// FromNestedFunc is FromNested with an element conversion from S to E.
func FromNestedFunc[S, E any](nested any, order StorageOrder, conv func(S) E) (*DenseTensor[E], error) {
	return tensor.FromNestedFunc(nested, order, conv)
}

// FromSlice1 creates a rank-1 tensor from a slice.
func FromSlice1[E any](data []E, order StorageOrder) (*DenseTensor[E], error) {
	return tensor.FromSlice1(data, order)
}

// FromSlice2 creates a rank-2 tensor from a matrix.
func FromSlice2[E any](data [][]E, order StorageOrder) (*DenseTensor[E], error) {
	return tensor.FromSlice2(data, order)
}

// FromSlice3 creates a rank-3 tensor from nested slices.
func FromSlice3[E any](data [][][]E, order StorageOrder) (*DenseTensor[E], error) {
	return tensor.FromSlice3(data, order)
}

// ToSlice1 converts a rank-1 tensor to a slice.
func ToSlice1[E any](t *DenseTensor[E]) ([]E, error) {
	return tensor.ToSlice1(t)
}

// ToSlice2 converts a rank-2 tensor to nested slices.
func ToSlice2[E any](t *DenseTensor[E]) ([][]E, error) {
	return tensor.ToSlice2(t)
}

// ToSlice3 converts a rank-3 tensor to nested slices.
func ToSlice3[E any](t *DenseTensor[E]) ([][][]E, error) {
	return tensor.ToSlice3(t)
}

// NewFill creates a fill of element over shape.
//
// Example:
//
//	f, err := tensor.NewFill(tensor.Shape{4}, 7)
//	for v := range f.Values() { ... } // 7 7 7 7
func NewFill[E any](shape Shape, element E) (FillTensor[E], error) {
	return tensor.NewFill(shape, element)
}

// Utility functions

// Equal reports whether a and b hold the same elements at every position.
func Equal[E comparable](a, b *DenseTensor[E]) bool {
	return tensor.Equal(a, b)
}

// FillEqual reports whether two fills have the same shape and element.
func FillEqual[E comparable](a, b FillTensor[E]) bool {
	return tensor.FillEqual(a, b)
}

// DataTypeOf returns the DataType tag of E, or Unknown.
func DataTypeOf[E any]() DataType {
	return tensor.DataTypeOf[E]()
}

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
//
// Example:
//
//	resultShape, needsBroadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// resultShape = [3, 4], needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// PoolOutputShape returns the shape pooling in with cfg produces.
func PoolOutputShape(in Shape, cfg PoolConfig) (Shape, error) {
	return tensor.PoolOutputShape(in, cfg)
}
