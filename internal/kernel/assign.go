package kernel

import (
	"fmt"

	"github.com/born-ml/ndview/internal/ndarray"
)

// Assign copies every element of src into the same multi-index of dst,
// converting through dst's element type. The two views must have
// identical shapes; broadcasting is not this function's job (a
// broadcast source already reports the destination's shape through
// zero strides).
//
// Traversal follows dst's order hint: row-major spins the last
// dimension fastest, column-major the first. The choice affects memory
// locality only; writes to distinct positions commute, so the final
// state is order-independent unless dst aliases itself through zero
// strides, in which case the last write in traversal order sticks.
func Assign(src, dst *ndarray.Array) error {
	if !src.Shape().Equal(dst.Shape()) {
		return fmt.Errorf("%w: source %v, destination %v",
			ndarray.ErrShapeMismatch, src.Shape(), dst.Shape())
	}
	if dst.NumElements() == 0 {
		return nil
	}

	if dst.IsContiguous() && constantSource(src) {
		fillContiguous(dst, src.Load(src.Offset()))
		return nil
	}

	shape := dst.Shape()
	idx := make([]int, len(shape))
	for {
		dst.Store(flatPosition(dst, idx), src.Load(flatPosition(src, idx)))
		if !ndarray.Increment(idx, shape, dst.Order()) {
			return nil
		}
	}
}

// flatPosition computes offset + Σ idx_k * stride_k for a generated
// in-range multi-index.
func flatPosition(a *ndarray.Array, idx []int) int {
	pos := a.Offset()
	strides := a.Strides()
	for k, i := range idx {
		pos += i * strides[k]
	}
	return pos
}

// constantSource reports whether every logical index of the view
// resolves to the same element.
func constantSource(a *ndarray.Array) bool {
	for _, s := range a.Strides() {
		if s != 0 {
			return false
		}
	}
	return true
}

// fillContiguous stores one value across a dense destination without
// per-element index arithmetic. The typed slices are clamped to the
// view's element count: a contiguous view may be a prefix of a larger
// caller-owned buffer, and the rest of that buffer is not ours.
func fillContiguous(dst *ndarray.Array, s ndarray.Scalar) {
	n := dst.NumElements()
	switch dst.DType() {
	case ndarray.Int8:
		fillSlice(dst.AsInt8()[:n], int8(s.AsInt64())) //nolint:gosec // G115: narrowing is the defined store semantics
	case ndarray.Int16:
		fillSlice(dst.AsInt16()[:n], int16(s.AsInt64())) //nolint:gosec // G115
	case ndarray.Int32:
		fillSlice(dst.AsInt32()[:n], int32(s.AsInt64())) //nolint:gosec // G115
	case ndarray.Int64:
		fillSlice(dst.AsInt64()[:n], s.AsInt64())
	case ndarray.Uint8:
		fillSlice(dst.AsUint8()[:n], uint8(s.AsUint64())) //nolint:gosec // G115
	case ndarray.Uint16:
		fillSlice(dst.AsUint16()[:n], uint16(s.AsUint64())) //nolint:gosec // G115
	case ndarray.Uint32:
		fillSlice(dst.AsUint32()[:n], uint32(s.AsUint64())) //nolint:gosec // G115
	case ndarray.Uint64:
		fillSlice(dst.AsUint64()[:n], s.AsUint64())
	case ndarray.Float32:
		fillSlice(dst.AsFloat32()[:n], float32(s.AsFloat64()))
	case ndarray.Float64:
		fillSlice(dst.AsFloat64()[:n], s.AsFloat64())
	case ndarray.Complex64:
		fillSlice(dst.AsComplex64()[:n], complex64(s.AsComplex128()))
	case ndarray.Complex128:
		fillSlice(dst.AsComplex128()[:n], s.AsComplex128())
	default:
		panic("unknown data type")
	}
}

func fillSlice[T ndarray.Elem](data []T, v T) {
	for i := range data {
		data[i] = v
	}
}
