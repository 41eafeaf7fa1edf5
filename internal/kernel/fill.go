package kernel

import (
	"github.com/born-ml/ndview/internal/ndarray"
)

// Fill writes value into every addressable element of x, in place, and
// returns x. The view's metadata (shape, strides, offset, order) is
// never altered, only the buffer content at the positions the view
// addresses.
//
// Sequencing: validate the scalar against x's element type, build a
// zero-stride broadcast view of it over x's shape, then run the
// strided assignment. A rejected cast returns UnsafeCastError with the
// buffer untouched; there is no partial write.
//
// Views with zero total elements succeed unconditionally: with nothing
// to write there is no element type to validate the value against.
func Fill(x *ndarray.Array, value any) (*ndarray.Array, error) {
	if x.NumElements() == 0 {
		return x, nil
	}

	if !MostlySafeCompatible(value, x.DType()) {
		return nil, &ndarray.UnsafeCastError{Value: value, DType: x.DType()}
	}

	v, err := Broadcast(value, x.DType(), x.Shape(), x.Order())
	if err != nil {
		return nil, err
	}

	if err := Assign(v, x); err != nil {
		return nil, err
	}
	return x, nil
}
