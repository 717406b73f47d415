// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided, shape-generic and element-generic dense
// tensors.
//
// # Overview
//
// A DenseTensor is a view of a reference-counted Buffer: a shape, one stride
// per axis and an offset. The element at position p lives at
//
//	offset + p[0]*strides[0] + ... + p[n-1]*strides[n-1]
//
// so the same buffer can back packed tensors, transposes, slices and
// broadcasts (zero strides) without copying.
//
// # Storage Order
//
// Every tensor carries a StorageOrder. RowMajor packs the last axis
// contiguously, ColMajor the first. The order fixes the default strides and
// the iteration order:
//
//	x, _ := tensor.Arange(0, tensor.Shape{2, 3}, tensor.ColMajor)
//	x.Strides()  // [1 2]
//	x.At(1, 2)   // 5
//
// Flat inputs (FromSlice, Arange, Linspace) are read in storage order.
// Nested inputs (FromNested) are always read by logical position.
//
// # Iteration
//
// Elements returns a one-shot iterator; All and Values are range-over-func
// forms of the same walk:
//
//	for idx, v := range x.All() {
//	    fmt.Println(idx.Seq, idx.Position, v)
//	}
//
// SequentialIndex cursors compare by their sequence number only, so they
// order correctly whatever the stride layout.
//
// # Copy-on-Write
//
// Views share their buffer. Set on a shared view first copies the elements
// into a private packed buffer, so writes never leak into other views:
//
//	y := x.Share()
//	y.Set(42, 0, 0) // x is unchanged
//
// # Fills
//
// FillTensor repeats one element over a shape without storage. AsDense
// turns it into a zero-stride view for kernels that expect a DenseTensor.
package tensor
