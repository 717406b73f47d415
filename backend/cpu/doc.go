// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for pooling.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Inputs of any stride layout: transposes, slices, broadcasts
//   - Max, average and average-with-padding modes
//   - Valid and same padding over any number of axes
//
// # Basic Usage
//
//	backend := cpu.New()
//	cfg := tensor.PoolConfig{Window: []int{2, 2}, Strides: []int{2, 2}, Mode: tensor.Max}
//	shape, _ := tensor.PoolOutputShape(x.Shape(), cfg)
//	out, _ := tensor.Zeros[float32](shape, tensor.RowMajor)
//	err := cpu.Pool(backend, x, out, cfg)
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each kernel call writes only
// to its own output tensor.
package cpu
