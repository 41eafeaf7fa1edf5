// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the public API for strided array views.
//
// The package re-exports the core types:
//   - Array: strided view over a contiguous element buffer
//   - DataType, Kind: runtime element-type information
//   - Shape, Order: view geometry and traversal hint
package ndarray

import (
	"github.com/born-ml/ndview/internal/ndarray"
)

// Type aliases for public API

// DataType represents the element type of an array.
type DataType = ndarray.DataType

// Element type constants.
const (
	Int8       DataType = ndarray.Int8
	Int16      DataType = ndarray.Int16
	Int32      DataType = ndarray.Int32
	Int64      DataType = ndarray.Int64
	Uint8      DataType = ndarray.Uint8
	Uint16     DataType = ndarray.Uint16
	Uint32     DataType = ndarray.Uint32
	Uint64     DataType = ndarray.Uint64
	Float32    DataType = ndarray.Float32
	Float64    DataType = ndarray.Float64
	Complex64  DataType = ndarray.Complex64
	Complex128 DataType = ndarray.Complex128
)

// Kind classifies element types into cast-policy families.
type Kind = ndarray.Kind

// Kind constants.
const (
	KindInt     Kind = ndarray.KindInt
	KindUint    Kind = ndarray.KindUint
	KindFloat   Kind = ndarray.KindFloat
	KindComplex Kind = ndarray.KindComplex
)

// Order selects which dimension of a traversal varies fastest.
type Order = ndarray.Order

// Order constants.
const (
	RowMajor Order = ndarray.RowMajor
	ColMajor Order = ndarray.ColMajor
)

// Shape represents the dimensions of an array view.
// Example: Shape{2, 3, 4} describes a 3D view with dimensions 2×3×4.
type Shape = ndarray.Shape

// Array is a strided view over a contiguous element buffer.
type Array = ndarray.Array

// Elem is a constraint covering the Go types that can back an element.
type Elem = ndarray.Elem

// Errors.

// UnsafeCastError reports a scalar rejected by the cast policy.
type UnsafeCastError = ndarray.UnsafeCastError

// UnsupportedCastError reports a value with no representation in the
// target element type at all.
type UnsupportedCastError = ndarray.UnsupportedCastError

// ErrShapeMismatch reports differing source and destination shapes in
// an assignment.
var ErrShapeMismatch = ndarray.ErrShapeMismatch

// ErrOutOfBounds reports a view that addresses memory outside its
// buffer.
var ErrOutOfBounds = ndarray.ErrOutOfBounds

// New creates a contiguous zero-initialized array.
func New(shape Shape, dtype DataType, order Order) (*Array, error) {
	return ndarray.New(shape, dtype, order)
}

// NewView wraps a caller-owned buffer in a strided descriptor.
// The buffer must cover every position the view can address; ownership
// stays with the caller.
func NewView(data []byte, dtype DataType, shape Shape, strides []int, offset int, order Order) (*Array, error) {
	return ndarray.NewView(data, dtype, shape, strides, offset, order)
}

// FromSlice creates a contiguous array holding a copy of data.
// The element type is inferred from T.
//
// Example:
//
//	x, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2}, ndarray.RowMajor)
func FromSlice[T Elem](data []T, shape Shape, order Order) (*Array, error) {
	return ndarray.FromSlice(data, shape, order)
}
