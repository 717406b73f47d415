// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/strided/internal/backend/cpu"
	"github.com/born-ml/strided/internal/parallel"
	"github.com/born-ml/strided/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// ParallelConfig controls how kernels fan out over goroutines.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a configuration sized to the CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/strided/backend/cpu"
//	    "github.com/born-ml/strided/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.Arange[float32](0, tensor.Shape{1, 1, 4, 4}, tensor.RowMajor)
//	    y, _ := cpu.MaxPool2D(backend, x, 2, 2)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with an explicit parallel configuration.
func NewWithConfig(cfg ParallelConfig) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// Pool reduces every window of x into out. out must be contiguous.
func Pool[E tensor.Numeric](b *Backend, x, out *tensor.DenseTensor[E], cfg tensor.PoolConfig) error {
	return internalcpu.Pool(b, x, out, cfg)
}

// MaxPool2D performs 2D max pooling over an NCHW input.
func MaxPool2D[E tensor.Numeric](b *Backend, input *tensor.DenseTensor[E], kernelSize, stride int) (*tensor.DenseTensor[E], error) {
	return internalcpu.MaxPool2D(b, input, kernelSize, stride)
}
