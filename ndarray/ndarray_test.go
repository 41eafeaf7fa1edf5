// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"errors"
	"testing"

	"github.com/born-ml/ndview/ndarray"
)

// TestArrayAPI verifies the Array alias exposes the expected surface.
func TestArrayAPI(t *testing.T) {
	a, err := ndarray.New(ndarray.Shape{2, 3}, ndarray.Float32, ndarray.RowMajor)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !a.Shape().Equal(ndarray.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", a.Shape())
	}
	if a.DType() != ndarray.Float32 {
		t.Errorf("DType() = %v, want Float32", a.DType())
	}
	if a.Order() != ndarray.RowMajor {
		t.Errorf("Order() = %v, want RowMajor", a.Order())
	}
	if a.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", a.NumElements())
	}
	if a.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", a.ByteSize())
	}
}

func TestFill(t *testing.T) {
	x, err := ndarray.New(ndarray.Shape{3, 1, 2}, ndarray.Float64, ndarray.RowMajor)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	x, err = ndarray.Fill(x, 10.0)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	for _, v := range x.AsFloat64() {
		if v != 10.0 {
			t.Fatalf("element = %v, want 10", v)
		}
	}
}

func TestFillUnsafeCast(t *testing.T) {
	x, _ := ndarray.New(ndarray.Shape{4}, ndarray.Int32, ndarray.RowMajor)

	_, err := ndarray.Fill(x, 3.0)
	var unsafeCast *ndarray.UnsafeCastError
	if !errors.As(err, &unsafeCast) {
		t.Fatalf("error = %v, want UnsafeCastError", err)
	}
}

func TestZeros(t *testing.T) {
	a, err := ndarray.Zeros(ndarray.Shape{2, 2}, ndarray.Int64, ndarray.RowMajor)
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}
	for _, v := range a.AsInt64() {
		if v != 0 {
			t.Fatalf("element = %v, want 0", v)
		}
	}
}

func TestFull(t *testing.T) {
	a, err := ndarray.Full(ndarray.Shape{3, 3}, ndarray.Float32, ndarray.RowMajor, 3.25)
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	for _, v := range a.AsFloat32() {
		if v != 3.25 {
			t.Fatalf("element = %v, want 3.25", v)
		}
	}
}

func TestFullRejectsUnsafeValue(t *testing.T) {
	if _, err := ndarray.Full(ndarray.Shape{2}, ndarray.Int8, ndarray.RowMajor, 1.5); err == nil {
		t.Error("Full with a float value and integer dtype should fail")
	}
}

func TestBroadcastAndAssign(t *testing.T) {
	v, err := ndarray.Broadcast(int16(6), ndarray.Int16, ndarray.Shape{2, 2}, ndarray.RowMajor)
	if err != nil {
		t.Fatalf("Broadcast failed: %v", err)
	}

	dst, _ := ndarray.New(ndarray.Shape{2, 2}, ndarray.Int16, ndarray.RowMajor)
	if err := ndarray.Assign(v, dst); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	for _, got := range dst.AsInt16() {
		if got != 6 {
			t.Fatalf("element = %v, want 6", got)
		}
	}
}

func TestAssignShapeMismatch(t *testing.T) {
	src, _ := ndarray.New(ndarray.Shape{2}, ndarray.Float64, ndarray.RowMajor)
	dst, _ := ndarray.New(ndarray.Shape{3}, ndarray.Float64, ndarray.RowMajor)

	if err := ndarray.Assign(src, dst); !errors.Is(err, ndarray.ErrShapeMismatch) {
		t.Errorf("error = %v, want ErrShapeMismatch", err)
	}
}

func TestMostlySafeCompatible(t *testing.T) {
	if !ndarray.MostlySafeCompatible(float64(1), ndarray.Float32) {
		t.Error("float64 -> float32 downcast should be compatible")
	}
	if ndarray.MostlySafeCompatible(float64(1), ndarray.Int64) {
		t.Error("float -> integer should never be compatible")
	}
}

func TestNewViewCallerBuffer(t *testing.T) {
	buf := make([]byte, 4*4)
	a, err := ndarray.NewView(buf, ndarray.Int32, ndarray.Shape{2, 2}, []int{2, 1}, 0, ndarray.RowMajor)
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}

	if _, err := ndarray.Fill(a, int32(1)); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	// The caller's buffer is the one that got mutated.
	if buf[0] == 0 && buf[1] == 0 && buf[2] == 0 && buf[3] == 0 {
		t.Error("Fill should write through to the caller-owned buffer")
	}
}
