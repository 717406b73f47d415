package tensor

import "errors"

// Common errors. Constructors return them wrapped with context; accessors
// that cannot return an error panic with a wrapped value so callers can
// still match it with errors.Is after recover.
var (
	ErrInvalidShape        = errors.New("invalid shape")
	ErrInvalidStrides      = errors.New("invalid strides")
	ErrRaggedShape         = errors.New("ragged nested input")
	ErrElementType         = errors.New("element type mismatch")
	ErrShapeMismatch       = errors.New("shape mismatch")
	ErrSpanOutOfBounds     = errors.New("tensor span exceeds buffer")
	ErrIndexOutOfBounds    = errors.New("index out of bounds")
	ErrNonContiguousOutput = errors.New("output tensor must be contiguous")
	ErrInvalidPool         = errors.New("invalid pooling configuration")
)
