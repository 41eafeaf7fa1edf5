package ndarray

import "fmt"

// Order selects which dimension of a traversal varies fastest.
// It is a memory-locality hint only: element addressing is fully
// determined by strides and offset.
type Order int

// Traversal orders.
const (
	// RowMajor visits the last dimension fastest (C order).
	RowMajor Order = iota
	// ColMajor visits the first dimension fastest (Fortran order).
	ColMajor
)

// String returns a human-readable order name.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}

// Shape represents the dimensions of an array view.
// An empty Shape is a rank-0 scalar with one element.
type Shape []int

// NumElements returns the total number of addressable elements.
// Any zero dimension makes the count zero.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is non-negative.
// Zero-sized dimensions are legal and describe empty views.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes match in rank and every dimension.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides computes contiguous element strides for the shape in the
// given order. Row-major: stride[i] = product of dimensions after i.
// Column-major: stride[i] = product of dimensions before i.
func (s Shape) Strides(order Order) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	if order == ColMajor {
		strides[0] = 1
		for i := 1; i < len(s); i++ {
			strides[i] = strides[i-1] * s[i-1]
		}
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}
