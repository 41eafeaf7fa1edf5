package ndarray

import (
	"errors"
	"testing"
)

func TestNewContiguous(t *testing.T) {
	a, err := New(Shape{2, 3}, Float32, RowMajor)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !a.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape = %v, want [2 3]", a.Shape())
	}
	if a.DType() != Float32 {
		t.Errorf("DType = %v, want Float32", a.DType())
	}
	if a.NumElements() != 6 {
		t.Errorf("NumElements = %d, want 6", a.NumElements())
	}
	if a.ByteSize() != 24 {
		t.Errorf("ByteSize = %d, want 24", a.ByteSize())
	}
	if !a.IsContiguous() {
		t.Error("fresh allocation should be contiguous")
	}

	strides := a.Strides()
	if strides[0] != 3 || strides[1] != 1 {
		t.Errorf("Strides = %v, want [3 1]", strides)
	}
}

func TestNewInvalidShape(t *testing.T) {
	if _, err := New(Shape{2, -3}, Float32, RowMajor); err == nil {
		t.Error("New with negative dimension should fail")
	}
}

func TestNewZeroSized(t *testing.T) {
	a, err := New(Shape{3, 0, 2}, Float64, RowMajor)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if a.NumElements() != 0 {
		t.Errorf("NumElements = %d, want 0", a.NumElements())
	}
	if a.ByteSize() != 0 {
		t.Errorf("ByteSize = %d, want 0", a.ByteSize())
	}
}

func TestNewViewBounds(t *testing.T) {
	buf := make([]byte, 6*8) // 6 float64 elements

	// Covers positions 0..5 exactly.
	if _, err := NewView(buf, Float64, Shape{3, 1, 2}, []int{2, 2, 1}, 0, RowMajor); err != nil {
		t.Errorf("valid view rejected: %v", err)
	}

	// Highest position 2*3 + 0*2 + 1*1 = 7 is out of bounds.
	if _, err := NewView(buf, Float64, Shape{3, 1, 2}, []int{3, 2, 1}, 0, RowMajor); err == nil {
		t.Error("view past buffer end should fail")
	} else if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("error = %v, want ErrOutOfBounds", err)
	}

	// Negative stride reaching below zero.
	if _, err := NewView(buf, Float64, Shape{3}, []int{-1}, 0, RowMajor); err == nil {
		t.Error("view below buffer start should fail")
	}

	// Negative stride anchored at a high offset is fine.
	if _, err := NewView(buf, Float64, Shape{3}, []int{-1}, 5, RowMajor); err != nil {
		t.Errorf("reversed view rejected: %v", err)
	}
}

func TestNewViewRankMismatch(t *testing.T) {
	buf := make([]byte, 8)
	_, err := NewView(buf, Float64, Shape{1, 1}, []int{1}, 0, RowMajor)
	if !errors.Is(err, ErrRankMismatch) {
		t.Errorf("error = %v, want ErrRankMismatch", err)
	}
}

func TestNewViewNegativeOffset(t *testing.T) {
	buf := make([]byte, 8)
	if _, err := NewView(buf, Float64, Shape{1}, []int{1}, -1, RowMajor); err == nil {
		t.Error("negative offset should fail")
	}
}

func TestNewViewEmptyAlwaysInBounds(t *testing.T) {
	// Nothing is addressable, so even wild strides pass.
	if _, err := NewView(nil, Float64, Shape{0}, []int{9999}, 0, RowMajor); err != nil {
		t.Errorf("empty view rejected: %v", err)
	}
}

func TestPosition(t *testing.T) {
	buf := make([]byte, 6*8)
	a, err := NewView(buf, Float64, Shape{3, 2}, []int{1, 3}, 0, ColMajor)
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}

	if got := a.Position(0, 0); got != 0 {
		t.Errorf("Position(0,0) = %d, want 0", got)
	}
	if got := a.Position(2, 1); got != 5 {
		t.Errorf("Position(2,1) = %d, want 5", got)
	}
}

func TestPositionPanics(t *testing.T) {
	a, _ := New(Shape{2, 2}, Float32, RowMajor)

	defer func() {
		if r := recover(); r == nil {
			t.Error("out-of-range index should panic")
		}
	}()
	_ = a.Position(0, 2)
}

func TestAtSetAt(t *testing.T) {
	a, _ := New(Shape{2, 2}, Float64, RowMajor)

	if err := a.SetAt(7.5, 1, 0); err != nil {
		t.Fatalf("SetAt failed: %v", err)
	}
	if got := a.At(1, 0); got != 7.5 {
		t.Errorf("At(1,0) = %v, want 7.5", got)
	}
	if got := a.At(0, 0); got != 0.0 {
		t.Errorf("At(0,0) = %v, want 0", got)
	}
}

func TestSetAtComplexFromReal(t *testing.T) {
	a, _ := New(Shape{1}, Complex128, RowMajor)

	if err := a.SetAt(2.5, 0); err != nil {
		t.Fatalf("SetAt failed: %v", err)
	}
	if got := a.At(0); got != complex(2.5, 0) {
		t.Errorf("At(0) = %v, want (2.5+0i)", got)
	}
}

func TestSetAtNonNumeric(t *testing.T) {
	a, _ := New(Shape{1}, Float64, RowMajor)

	err := a.SetAt("not a number", 0)
	var unsupported *UnsupportedCastError
	if !errors.As(err, &unsupported) {
		t.Errorf("error = %v, want UnsupportedCastError", err)
	}
}

func TestSliceWrongTypePanics(t *testing.T) {
	a, _ := New(Shape{2}, Float32, RowMajor)

	_ = a.AsFloat32()

	defer func() {
		if r := recover(); r == nil {
			t.Error("AsFloat64 on Float32 array should panic")
		}
	}()
	_ = a.AsFloat64()
}

func TestSliceZeroCopy(t *testing.T) {
	a, _ := New(Shape{3}, Int64, RowMajor)
	data := a.AsInt64()
	data[1] = 42
	if a.AsInt64()[1] != 42 {
		t.Error("AsInt64 should return a zero-copy slice")
	}
}

func TestElementsRowMajorOrder(t *testing.T) {
	a, err := FromSlice([]int32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, RowMajor)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	got := a.Elements()
	want := []int32{1, 2, 3, 4, 5, 6}
	for i := range want {
		if got[i] != any(want[i]) {
			t.Errorf("Elements()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestElementsColMajorLayout(t *testing.T) {
	// Same logical matrix [[1 2 3], [4 5 6]] laid out column-major.
	a, err := FromSlice([]int32{1, 4, 2, 5, 3, 6}, Shape{2, 3}, ColMajor)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	// Elements always reads logical row-major, independent of layout.
	got := a.Elements()
	want := []int32{1, 2, 3, 4, 5, 6}
	for i := range want {
		if got[i] != any(want[i]) {
			t.Errorf("Elements()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	if _, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2}, RowMajor); err == nil {
		t.Error("FromSlice with mismatched length should fail")
	}
}

func TestRankZeroScalar(t *testing.T) {
	a, err := New(Shape{}, Float32, RowMajor)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if a.NumElements() != 1 {
		t.Errorf("NumElements = %d, want 1", a.NumElements())
	}
	if err := a.SetAt(float32(3)); err != nil {
		t.Fatalf("SetAt failed: %v", err)
	}
	if got := a.At(); got != float32(3) {
		t.Errorf("At() = %v, want 3", got)
	}
}
