package tensor

// StorageOrder selects which axis varies fastest in linear memory.
type StorageOrder int

// Supported storage orders.
const (
	// RowMajor stores the last axis contiguously (C order).
	RowMajor StorageOrder = iota
	// ColMajor stores the first axis contiguously (Fortran order).
	ColMajor
)

// String returns a human-readable order name.
func (o StorageOrder) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}

// valid reports whether o is one of the declared orders.
func (o StorageOrder) valid() bool {
	return o == RowMajor || o == ColMajor
}
