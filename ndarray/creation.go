// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

// Zeros creates a contiguous array filled with zeros.
//
// Example:
//
//	t, _ := ndarray.Zeros(ndarray.Shape{3, 4}, ndarray.Float32, ndarray.RowMajor)
func Zeros(shape Shape, dtype DataType, order Order) (*Array, error) {
	// New allocations are already zero-initialized.
	return New(shape, dtype, order)
}

// Full creates a contiguous array filled with a specific value.
// The value is subject to the same cast policy as Fill.
//
// Example:
//
//	t, _ := ndarray.Full(ndarray.Shape{3, 3}, ndarray.Float32, ndarray.RowMajor, 3.14)
func Full(shape Shape, dtype DataType, order Order, value any) (*Array, error) {
	a, err := New(shape, dtype, order)
	if err != nil {
		return nil, err
	}
	return Fill(a, value)
}
