// Package webgpu implements GPU pooling kernels on WebGPU.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package webgpu

import "errors"

// ErrUnavailable reports that no WebGPU adapter can be used on this system.
var ErrUnavailable = errors.New("webgpu: not available")
