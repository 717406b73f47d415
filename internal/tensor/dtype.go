// Package tensor provides strided dense storage, sequential indexing and
// broadcast fills for shape-generic, element-generic tensors.
package tensor

// DType is the set of element types with a runtime DataType tag.
// DenseTensor itself accepts any element type; DType only matters where a
// kernel or device needs to know the element layout.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// Numeric is the constraint for element types that pooling and the numeric
// factories (Arange) operate on.
type Numeric interface {
	~float32 | ~float64 |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for tensor elements.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
	Unknown
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8, Bool:
		return 1
	default:
		return 0
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// DataTypeOf reports the runtime tag for E. Element types outside DType
// report Unknown.
func DataTypeOf[E any]() DataType {
	var dummy E
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		return Unknown
	}
}
