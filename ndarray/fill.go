// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndview/internal/kernel"
)

// Fill writes value into every addressable element of x, in place, and
// returns x. The scalar is validated against x's element type under
// the mostly-safe cast policy first; a rejection returns
// UnsafeCastError with the buffer untouched. Views with zero total
// elements succeed unconditionally.
//
// Example:
//
//	x, _ := ndarray.New(ndarray.Shape{3, 1, 2}, ndarray.Float64, ndarray.RowMajor)
//	x, err := ndarray.Fill(x, 10.0)
func Fill(x *Array, value any) (*Array, error) {
	return kernel.Fill(x, value)
}

// Assign copies every element of src into the same multi-index of dst.
// Shapes must match exactly; strides, offsets, and orders of the two
// views are free to differ.
func Assign(src, dst *Array) error {
	return kernel.Assign(src, dst)
}

// Broadcast builds a zero-stride view of a scalar replicated over a
// shape, backed by a single-element buffer.
func Broadcast(value any, dtype DataType, shape Shape, order Order) (*Array, error) {
	return kernel.Broadcast(value, dtype, shape, order)
}

// MostlySafeCompatible reports whether a scalar may be written into an
// array of the target element type: safe casts plus same-kind
// floating-point downcasts.
func MostlySafeCompatible(value any, target DataType) bool {
	return kernel.MostlySafeCompatible(value, target)
}
