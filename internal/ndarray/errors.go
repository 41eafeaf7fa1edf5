package ndarray

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("source and destination shapes differ")
	ErrOutOfBounds   = errors.New("view addresses memory outside its buffer")
	ErrRankMismatch  = errors.New("strides rank does not match shape rank")
)

// UnsafeCastError reports a scalar whose natural type cannot be written
// into the destination element type under the mostly-safe cast rules.
// It is raised before any element is mutated.
type UnsafeCastError struct {
	Value any      // The rejected scalar.
	DType DataType // The destination element type.
}

// Error implements the error interface.
func (e *UnsafeCastError) Error() string {
	return fmt.Sprintf("cannot safely cast value %v (%T) to %s", e.Value, e.Value, e.DType)
}

// UnsupportedCastError reports a value that has no in-memory
// representation for the target element type at all, for example a
// non-numeric input. It is a construction-time failure of the
// broadcast view, distinct from the safety check.
type UnsupportedCastError struct {
	Value any
	DType DataType
}

// Error implements the error interface.
func (e *UnsupportedCastError) Error() string {
	return fmt.Sprintf("value %v (%T) has no representation as %s", e.Value, e.Value, e.DType)
}
