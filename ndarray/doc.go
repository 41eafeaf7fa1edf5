// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides strided N-dimensional array views and a
// type-safe scalar fill for the ndview library.
//
// # Overview
//
// An Array is a view over a contiguous element buffer described by an
// element type, a shape, per-dimension strides, a buffer offset, and a
// traversal order. Addressing is fully determined by strides and
// offset; order is a memory-locality hint only. A stride of zero in a
// dimension broadcasts: varying that index does not move in memory.
//
// # Basic Usage
//
//	import "github.com/born-ml/ndview/ndarray"
//
//	func main() {
//	    x, _ := ndarray.New(ndarray.Shape{3, 4}, ndarray.Float64, ndarray.RowMajor)
//	    ndarray.Fill(x, 1.5) // Every element reads back 1.5.
//	}
//
// # Supported Element Types
//
//	int8, int16, int32, int64
//	uint8, uint16, uint32, uint64
//	float32, float64
//	complex64, complex128
//
// # Cast Policy
//
// Fill enforces a "mostly safe" policy on the scalar: all safe casts
// are accepted (integer widening, magnitude-preserving integer to
// float, real to complex), plus same-kind floating-point downcasts
// (float64 into float32, complex128 into complex64). Float values are
// never accepted by integer arrays, even with a zero fractional part,
// and complex values are never accepted by real arrays.
//
// # Broadcasting
//
// Filling never materializes the scalar: the source side of the
// assignment is a zero-stride view over a single-element buffer, no
// matter the destination's shape.
//
// # Memory Management
//
// Buffers wrapped with NewView stay owned by the caller; the library
// mutates them in place and never frees or reallocates them.
package ndarray
