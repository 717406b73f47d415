package tensor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer(t *testing.T) {
	b := NewBuffer[float32](4)
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, CPU, b.Device())
	assert.True(t, b.IsUnique())

	b.Store(2, 1.5)
	assert.Equal(t, float32(1.5), b.Load(2))
	assert.Equal(t, []float32{0, 1.5}, b.Slice(1, 3))
	assert.Len(t, b.Slice(1, 3)[:cap(b.Slice(1, 3))], 2, "slices cannot grow into the buffer")
}

func TestBufferRefCount(t *testing.T) {
	b := BufferOf([]int{1, 2, 3})
	b.Retain()
	assert.Equal(t, 2, b.RefCount())
	assert.False(t, b.IsUnique())

	b.Release()
	assert.True(t, b.IsUnique())
	b.Release()
	assert.Zero(t, b.RefCount())
	assert.Zero(t, b.Len(), "storage is dropped with the last reference")
}

func TestBufferConcurrentRetain(t *testing.T) {
	b := NewBuffer[int](1)
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Retain()
			b.Release()
		}()
	}
	wg.Wait()
	assert.True(t, b.IsUnique())
}

func TestDeviceString(t *testing.T) {
	assert.Equal(t, "CPU", CPU.String())
	assert.Equal(t, "WebGPU", WebGPU.String())
	assert.Equal(t, "Unknown", Device(9).String())
}

func TestStorageOrderString(t *testing.T) {
	assert.Equal(t, "row-major", RowMajor.String())
	assert.Equal(t, "col-major", ColMajor.String())
	assert.Equal(t, "unknown", StorageOrder(9).String())
}
