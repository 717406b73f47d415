// Package cpu implements the host backend: pooling kernels that read inputs
// of any stride layout and write packed outputs.
package cpu

import (
	"github.com/born-ml/strided/internal/parallel"
	"github.com/born-ml/strided/internal/tensor"
)

// CPUBackend runs tensor kernels on the host, fanning work out over goroutines.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend with the default parallel configuration.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallel configuration.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}
