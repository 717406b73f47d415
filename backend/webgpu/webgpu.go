// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU-accelerated pooling.
//
// The backend is built on Windows, where go-webgpu loads wgpu-native without
// CGO. On other platforms New returns ErrUnavailable.
//
// Example:
//
//	gpu, err := webgpu.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gpu.Release()
//
//	err = gpu.Pool(x, out, cfg)
package webgpu

import (
	internalwebgpu "github.com/born-ml/strided/internal/backend/webgpu"
)

// Backend represents the WebGPU backend implementation for GPU-accelerated
// tensor operations.
type Backend = internalwebgpu.Backend

// ErrUnavailable reports that no WebGPU adapter can be used on this system.
var ErrUnavailable = internalwebgpu.ErrUnavailable

// New creates a new WebGPU backend.
//
// Call Release() when done to free GPU resources. Returns an error wrapping
// ErrUnavailable if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// Example:
//
//	if webgpu.IsAvailable() {
//	    gpu, _ := webgpu.New()
//	    defer gpu.Release()
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
