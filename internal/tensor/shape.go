package tensor

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
)

// Shape represents the extents of a tensor along each axis.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements described by the shape.
// Any zero extent yields zero elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is non-negative and that the product of
// the non-zero extents fits in an int, so strides stay representable even
// when the shape holds no elements.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
		if dim == 0 {
			continue
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String formats the shape as (2, 3).
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// SequentialStrides returns the packed strides for the given storage order:
// iterating positions with Increment visits linear offsets 0, 1, 2, ...
//
//	Shape{2, 3}.SequentialStrides(RowMajor) // [3 1]
//	Shape{2, 3}.SequentialStrides(ColMajor) // [1 2]
func (s Shape) SequentialStrides(order StorageOrder) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	stride := 1
	if order == ColMajor {
		for i := 0; i < len(s); i++ {
			strides[i] = stride
			stride *= s[i]
		}
		return strides
	}

	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= s[i]
	}
	return strides
}

// Increment advances position by one odometer step bounded by s. The
// fastest-varying axis (last for RowMajor, first for ColMajor) is bumped;
// an axis that reaches its extent resets to 0 and carries into the next.
//
// Once every axis has wrapped the position is all zeros again. That terminal
// state must not be dereferenced; callers bound iteration by NumElements.
func (s Shape) Increment(position []int, order StorageOrder) {
	if order == ColMajor {
		for axis := 0; axis < len(s); axis++ {
			position[axis]++
			if position[axis] < s[axis] {
				return
			}
			position[axis] = 0
		}
		return
	}

	for axis := len(s) - 1; axis >= 0; axis-- {
		position[axis]++
		if position[axis] < s[axis] {
			return
		}
		position[axis] = 0
	}
}

// Unravel writes into position the coordinates reached after seq odometer
// steps from the origin, in the given order.
func (s Shape) Unravel(seq int, order StorageOrder, position []int) {
	if order == ColMajor {
		for axis := 0; axis < len(s); axis++ {
			if s[axis] == 0 {
				position[axis] = 0
				continue
			}
			position[axis] = seq % s[axis]
			seq /= s[axis]
		}
		return
	}

	for axis := len(s) - 1; axis >= 0; axis-- {
		if s[axis] == 0 {
			position[axis] = 0
			continue
		}
		position[axis] = seq % s[axis]
		seq /= s[axis]
	}
}

// Contains reports whether position is a valid coordinate within s.
func (s Shape) Contains(position []int) bool {
	if len(position) != len(s) {
		return false
	}
	for axis, p := range position {
		if p < 0 || p >= s[axis] {
			return false
		}
	}
	return true
}

// Positions iterates over every valid position in odometer order.
// The yielded slice is reused between steps: copy it to retain it.
func (s Shape) Positions(order StorageOrder) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		n := s.NumElements()
		position := make([]int, len(s))
		for i := 0; i < n; i++ {
			if !yield(position) {
				return
			}
			s.Increment(position, order)
		}
	}
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and an error if incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("%w: %v vs %v not broadcastable (dimension %d: %d vs %d)",
				ErrShapeMismatch, a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}

// dot returns the linear distance of position under strides.
func dot(position, strides []int) int {
	n := 0
	for i, p := range position {
		n += p * strides[i]
	}
	return n
}

// stridesEqual compares two stride tuples.
func stridesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
