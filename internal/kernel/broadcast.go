package kernel

import (
	"github.com/born-ml/ndview/internal/ndarray"
)

// Broadcast builds a read-only view of a scalar replicated over an
// arbitrary shape. The backing buffer holds exactly one element (the
// scalar cast into dtype); every stride is zero, so each logical index
// resolves to that element and storage cost stays constant regardless
// of the shape.
//
// The order argument has no addressing effect here but is carried so
// the view pairs with an assignment traversal of the same order.
//
// Returns UnsupportedCastError when the value has no representation
// as dtype at all, for example a non-numeric input. Safety of the
// cast is not judged here; that is the cast policy's job.
func Broadcast(value any, dtype ndarray.DataType, shape ndarray.Shape, order ndarray.Order) (*ndarray.Array, error) {
	s, ok := ndarray.ScalarOf(value)
	if !ok {
		return nil, &ndarray.UnsupportedCastError{Value: value, DType: dtype}
	}

	cell, err := ndarray.New(ndarray.Shape{}, dtype, order)
	if err != nil {
		return nil, err
	}
	cell.Store(0, s)

	return ndarray.NewView(cell.Data(), dtype, shape, make([]int, len(shape)), 0, order)
}
