// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device dispatches tensor kernels to the GPU when one is usable and
// to the CPU otherwise.
//
// Example:
//
//	q := device.New(device.DefaultConfig())
//	defer q.Release()
//
//	if err := device.Pool(q, x, out, cfg); err != nil {
//	    return err
//	}
//	values := device.Nested(q, out) // syncs first
package device

import (
	"github.com/born-ml/strided/internal/device"
	"github.com/born-ml/strided/tensor"
)

// Config controls how a Queue picks its backends.
type Config = device.Config

// Queue serializes kernel submission for one set of backends.
type Queue = device.Queue

// DefaultConfig returns a GPU-enabled configuration with no logging.
func DefaultConfig() Config {
	return device.DefaultConfig()
}

// New creates a queue, falling back to the CPU when no GPU can be opened.
func New(cfg Config) *Queue {
	return device.New(cfg)
}

// Pool reduces every window of x into out on the queue's backend.
// A non-contiguous out fails with tensor.ErrNonContiguousOutput.
func Pool[E tensor.Numeric](q *Queue, x, out *tensor.DenseTensor[E], cfg tensor.PoolConfig) error {
	return device.Pool(q, x, out, cfg)
}

// Nested waits for pending kernels and returns t as nested slices.
func Nested[E any](q *Queue, t *tensor.DenseTensor[E]) any {
	return device.Nested(q, t)
}
