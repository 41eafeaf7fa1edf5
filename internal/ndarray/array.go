package ndarray

import (
	"fmt"
	"unsafe"
)

// Array describes a strided view over a contiguous element buffer.
//
// Addressing is fully determined by strides and offset: the element at
// multi-index i lives at buffer position offset + Σ i_k * strides_k.
// A stride of 0 in a dimension means varying that index does not move
// in memory (broadcasting). Order is carried only so traversals can
// pick a memory-friendly visitation sequence.
//
// Buffers handed in through NewView stay owned by the caller; the
// library never frees or reallocates them.
type Array struct {
	data    []byte   // Backing buffer.
	dtype   DataType // Runtime element-type information.
	shape   Shape    // View dimensions.
	strides []int    // Element strides, one per dimension, signed.
	offset  int      // Element index of the all-zeros multi-index.
	order   Order    // Traversal hint.
}

// New creates a contiguous array with the given shape and element type.
// Memory is allocated and zero-initialized; strides follow the order.
func New(shape Shape, dtype DataType, order Order) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &Array{
		data:    make([]byte, shape.NumElements()*dtype.Size()),
		dtype:   dtype,
		shape:   shape.Clone(),
		strides: shape.Strides(order),
		offset:  0,
		order:   order,
	}, nil
}

// NewView wraps a caller-owned buffer in a strided descriptor.
// The buffer length must cover every position the view can address.
func NewView(data []byte, dtype DataType, shape Shape, strides []int, offset int, order Order) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("%w: %d strides for rank %d", ErrRankMismatch, len(strides), len(shape))
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrOutOfBounds, offset)
	}

	a := &Array{
		data:    data,
		dtype:   dtype,
		shape:   shape.Clone(),
		strides: append([]int(nil), strides...),
		offset:  offset,
		order:   order,
	}
	if err := a.checkBounds(); err != nil {
		return nil, err
	}
	return a, nil
}

// checkBounds verifies the extreme addressable positions of the view
// fall inside the buffer. Empty views address nothing and always pass.
func (a *Array) checkBounds() error {
	if a.shape.NumElements() == 0 {
		return nil
	}

	lo, hi := a.offset, a.offset
	for k, dim := range a.shape {
		span := a.strides[k] * (dim - 1)
		if span >= 0 {
			hi += span
		} else {
			lo += span
		}
	}

	capElems := len(a.data) / a.dtype.Size()
	if lo < 0 || hi >= capElems {
		return fmt.Errorf("%w: positions [%d, %d] exceed buffer of %d elements",
			ErrOutOfBounds, lo, hi, capElems)
	}
	return nil
}

// DType returns the array's element type.
func (a *Array) DType() DataType {
	return a.dtype
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's element strides.
func (a *Array) Strides() []int {
	return a.strides
}

// Offset returns the buffer position of the all-zeros multi-index.
func (a *Array) Offset() int {
	return a.offset
}

// Order returns the traversal-order hint.
func (a *Array) Order() Order {
	return a.order
}

// NumElements returns the total number of addressable elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// ByteSize returns the size of the backing buffer in bytes.
func (a *Array) ByteSize() int {
	return len(a.data)
}

// Data returns the raw backing buffer.
// WARNING: Direct access to underlying memory. Use with caution.
func (a *Array) Data() []byte {
	return a.data
}

// IsContiguous reports whether the view covers its buffer densely in
// its own order with no offset, enabling flat fast paths.
func (a *Array) IsContiguous() bool {
	if a.offset != 0 {
		return false
	}
	expected := a.shape.Strides(a.order)
	for i := range a.strides {
		if a.strides[i] != expected[i] {
			return false
		}
	}
	return true
}

// Position computes the buffer position of a multi-index.
// Panics if the index count or any index is out of range.
func (a *Array) Position(indices ...int) int {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}

	pos := a.offset
	for k, idx := range indices {
		if idx < 0 || idx >= a.shape[k] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, k, a.shape[k]))
		}
		pos += idx * a.strides[k]
	}
	return pos
}

// At returns the element at the given multi-index as its Go type.
func (a *Array) At(indices ...int) any {
	return loadScalar(a, a.Position(indices...)).Value(a.dtype)
}

// SetAt stores a scalar at the given multi-index, converting it to the
// array's element type under the representation rules (real values
// into complex targets take a zero imaginary part).
func (a *Array) SetAt(value any, indices ...int) error {
	s, ok := scalarOf(value)
	if !ok {
		return &UnsupportedCastError{Value: value, DType: a.dtype}
	}
	storeScalar(a, a.Position(indices...), s)
	return nil
}

// Elements reads every logical element in row-major index order.
// The result depends only on the view's logical content, not on its
// stride or order layout, which makes it the comparison surface for
// layout-independence checks.
func (a *Array) Elements() []any {
	n := a.shape.NumElements()
	out := make([]any, 0, n)
	if n == 0 {
		return out
	}

	idx := make([]int, len(a.shape))
	for {
		out = append(out, loadScalar(a, a.position(idx)).Value(a.dtype))
		if !Increment(idx, a.shape, RowMajor) {
			return out
		}
	}
}

// position is Position without per-index validation, for internal
// traversals that generate indices from the shape itself.
func (a *Array) position(indices []int) int {
	pos := a.offset
	for k, idx := range indices {
		pos += idx * a.strides[k]
	}
	return pos
}

// Increment advances a multi-index by one step in the given order,
// returning false once the index space is exhausted. Row-major spins
// the last dimension fastest, column-major the first. A rank-0 index
// is exhausted after its single element.
func Increment(idx []int, shape Shape, order Order) bool {
	if order == ColMajor {
		for k := 0; k < len(idx); k++ {
			idx[k]++
			if idx[k] < shape[k] {
				return true
			}
			idx[k] = 0
		}
		return false
	}

	for k := len(idx) - 1; k >= 0; k-- {
		idx[k]++
		if idx[k] < shape[k] {
			return true
		}
		idx[k] = 0
	}
	return false
}

// FromSlice creates a contiguous array holding a copy of data.
// The element type is inferred from T.
func FromSlice[T Elem](data []T, shape Shape, order Order) (*Array, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	a, err := New(shape, inferDataType(dummy), order)
	if err != nil {
		return nil, err
	}
	copy(Slice[T](a), data)
	return a, nil
}

// Slice interprets the backing buffer as []T.
// Panics if T does not match the array's element type.
func Slice[T Elem](a *Array) []T {
	var dummy T
	if dt := inferDataType(dummy); dt != a.dtype {
		panic(fmt.Sprintf("array dtype is %s, not %s", a.dtype, dt))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the buffer size
	return unsafe.Slice((*T)(unsafe.Pointer(&a.data[0])), len(a.data)/a.dtype.Size())
}

// AsFloat32 interprets the buffer as []float32.
// Panics if the array's dtype is not Float32.
func (a *Array) AsFloat32() []float32 { return Slice[float32](a) }

// AsFloat64 interprets the buffer as []float64.
// Panics if the array's dtype is not Float64.
func (a *Array) AsFloat64() []float64 { return Slice[float64](a) }

// AsInt8 interprets the buffer as []int8.
func (a *Array) AsInt8() []int8 { return Slice[int8](a) }

// AsInt16 interprets the buffer as []int16.
func (a *Array) AsInt16() []int16 { return Slice[int16](a) }

// AsInt32 interprets the buffer as []int32.
func (a *Array) AsInt32() []int32 { return Slice[int32](a) }

// AsInt64 interprets the buffer as []int64.
func (a *Array) AsInt64() []int64 { return Slice[int64](a) }

// AsUint8 interprets the buffer as []uint8.
func (a *Array) AsUint8() []uint8 { return Slice[uint8](a) }

// AsUint16 interprets the buffer as []uint16.
func (a *Array) AsUint16() []uint16 { return Slice[uint16](a) }

// AsUint32 interprets the buffer as []uint32.
func (a *Array) AsUint32() []uint32 { return Slice[uint32](a) }

// AsUint64 interprets the buffer as []uint64.
func (a *Array) AsUint64() []uint64 { return Slice[uint64](a) }

// AsComplex64 interprets the buffer as []complex64.
func (a *Array) AsComplex64() []complex64 { return Slice[complex64](a) }

// AsComplex128 interprets the buffer as []complex128.
func (a *Array) AsComplex128() []complex128 { return Slice[complex128](a) }

// String returns a human-readable representation of the array view.
func (a *Array) String() string {
	return fmt.Sprintf("Array[%s]%v strides=%v offset=%d %s", a.dtype, a.shape, a.strides, a.offset, a.order)
}
