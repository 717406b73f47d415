package tensor

import (
	"sync"
	"sync/atomic"
)

// Device represents where a buffer's elements live.
type Device int

// Supported devices.
const (
	CPU Device = iota
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// Buffer is reference-counted linear storage shared by tensor views.
//
// The reference count is the ownership tag for copy-on-write: a buffer with
// a single reference may be mutated in place, anything more must be copied
// first (see DenseTensor.Set).
type Buffer[E any] struct {
	data     []E
	device   Device
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// NewBuffer allocates a zeroed host buffer of n elements with refCount = 1.
func NewBuffer[E any](n int) *Buffer[E] {
	return BufferOf(make([]E, n))
}

// BufferOf wraps data without copying. The caller must not keep writing to
// data behind the buffer's back.
func BufferOf[E any](data []E) *Buffer[E] {
	buf := &Buffer[E]{data: data, device: CPU}
	buf.refCount.Store(1)
	return buf
}

// Len returns the number of elements the buffer holds.
func (b *Buffer[E]) Len() int {
	return len(b.data)
}

// Device returns the device the buffer lives on.
func (b *Buffer[E]) Device() Device {
	return b.device
}

// Load returns the element at linear offset i.
func (b *Buffer[E]) Load(i int) E {
	return b.data[i]
}

// Store writes v at linear offset i. It does not check ownership.
func (b *Buffer[E]) Store(i int, v E) {
	b.data[i] = v
}

// Slice returns a zero-copy view of elements [start, end).
//
// WARNING: Modifications to the returned slice will modify the buffer.
func (b *Buffer[E]) Slice(start, end int) []E {
	return b.data[start:end:end]
}

// Retain increments the reference count (a new view now aliases the buffer).
func (b *Buffer[E]) Retain() {
	b.refCount.Add(1)
}

// Release decrements the reference count and drops the storage at zero.
func (b *Buffer[E]) Release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// IsUnique returns true if exactly one view references the buffer.
func (b *Buffer[E]) IsUnique() bool {
	return b.refCount.Load() == 1
}

// RefCount returns the current number of references.
func (b *Buffer[E]) RefCount() int {
	return int(b.refCount.Load())
}
