//go:build !windows

package webgpu

import "github.com/born-ml/strided/internal/tensor"

// Backend is a placeholder on platforms without the go-webgpu native loader.
// New always fails with ErrUnavailable, so callers fall back to the CPU.
type Backend struct{}

// New reports that WebGPU is unavailable on this platform.
func New() (*Backend, error) {
	return nil, ErrUnavailable
}

// IsAvailable reports false on this platform.
func IsAvailable() bool {
	return false
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "WebGPU (unavailable)"
}

// Device returns the compute device.
func (b *Backend) Device() tensor.Device {
	return tensor.WebGPU
}

// Pool always fails with ErrUnavailable.
func (b *Backend) Pool(_, _ *tensor.DenseTensor[float32], _ tensor.PoolConfig) error {
	return ErrUnavailable
}

// FlushCommands is a no-op.
func (b *Backend) FlushCommands() {}

// Release is a no-op.
func (b *Backend) Release() {}
