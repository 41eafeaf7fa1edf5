package ndarray

// Scalar is a tagged intermediate representation of one element value.
// It carries the value widened to the largest member of its kind, so
// element copies between any two dtypes route through a single closed
// representation instead of a per-pair conversion matrix.
type Scalar struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	c    complex128
}

// Kind returns the value's cast-policy family.
func (s Scalar) Kind() Kind {
	return s.kind
}

// AsInt64 returns the value converted to int64.
func (s Scalar) AsInt64() int64 {
	switch s.kind {
	case KindInt:
		return s.i
	case KindUint:
		return int64(s.u) //nolint:gosec // G115: conversion semantics are the caller's cast policy
	case KindFloat:
		return int64(s.f)
	case KindComplex:
		return int64(real(s.c))
	default:
		panic("unknown scalar kind")
	}
}

// AsUint64 returns the value converted to uint64.
func (s Scalar) AsUint64() uint64 {
	switch s.kind {
	case KindInt:
		return uint64(s.i) //nolint:gosec // G115: conversion semantics are the caller's cast policy
	case KindUint:
		return s.u
	case KindFloat:
		return uint64(s.f)
	case KindComplex:
		return uint64(real(s.c))
	default:
		panic("unknown scalar kind")
	}
}

// AsFloat64 returns the value converted to float64.
func (s Scalar) AsFloat64() float64 {
	switch s.kind {
	case KindInt:
		return float64(s.i)
	case KindUint:
		return float64(s.u)
	case KindFloat:
		return s.f
	case KindComplex:
		return real(s.c)
	default:
		panic("unknown scalar kind")
	}
}

// AsComplex128 returns the value converted to complex128.
// Real inputs take a zero imaginary component.
func (s Scalar) AsComplex128() complex128 {
	switch s.kind {
	case KindInt:
		return complex(float64(s.i), 0)
	case KindUint:
		return complex(float64(s.u), 0)
	case KindFloat:
		return complex(s.f, 0)
	case KindComplex:
		return s.c
	default:
		panic("unknown scalar kind")
	}
}

// Value returns the Go value of the scalar as element type dt.
func (s Scalar) Value(dt DataType) any {
	switch dt {
	case Int8:
		return int8(s.AsInt64()) //nolint:gosec // G115: narrowing is the defined store semantics
	case Int16:
		return int16(s.AsInt64()) //nolint:gosec // G115
	case Int32:
		return int32(s.AsInt64()) //nolint:gosec // G115
	case Int64:
		return s.AsInt64()
	case Uint8:
		return uint8(s.AsUint64()) //nolint:gosec // G115
	case Uint16:
		return uint16(s.AsUint64()) //nolint:gosec // G115
	case Uint32:
		return uint32(s.AsUint64()) //nolint:gosec // G115
	case Uint64:
		return s.AsUint64()
	case Float32:
		return float32(s.AsFloat64())
	case Float64:
		return s.AsFloat64()
	case Complex64:
		return complex64(s.AsComplex128())
	case Complex128:
		return s.AsComplex128()
	default:
		panic("unknown data type")
	}
}

// NaturalType reports the element type a Go scalar naturally carries.
// Plain int and uint map to their 64-bit widths. The second result is
// false for non-numeric values.
func NaturalType(value any) (DataType, bool) {
	switch value.(type) {
	case int8:
		return Int8, true
	case int16:
		return Int16, true
	case int32:
		return Int32, true
	case int64, int:
		return Int64, true
	case uint8:
		return Uint8, true
	case uint16:
		return Uint16, true
	case uint32:
		return Uint32, true
	case uint64, uint:
		return Uint64, true
	case float32:
		return Float32, true
	case float64:
		return Float64, true
	case complex64:
		return Complex64, true
	case complex128:
		return Complex128, true
	default:
		return 0, false
	}
}

// ScalarOf converts a Go numeric value into its tagged representation.
// The second result is false for non-numeric values.
func ScalarOf(value any) (Scalar, bool) {
	switch v := value.(type) {
	case int8:
		return Scalar{kind: KindInt, i: int64(v)}, true
	case int16:
		return Scalar{kind: KindInt, i: int64(v)}, true
	case int32:
		return Scalar{kind: KindInt, i: int64(v)}, true
	case int64:
		return Scalar{kind: KindInt, i: v}, true
	case int:
		return Scalar{kind: KindInt, i: int64(v)}, true
	case uint8:
		return Scalar{kind: KindUint, u: uint64(v)}, true
	case uint16:
		return Scalar{kind: KindUint, u: uint64(v)}, true
	case uint32:
		return Scalar{kind: KindUint, u: uint64(v)}, true
	case uint64:
		return Scalar{kind: KindUint, u: v}, true
	case uint:
		return Scalar{kind: KindUint, u: uint64(v)}, true
	case float32:
		return Scalar{kind: KindFloat, f: float64(v)}, true
	case float64:
		return Scalar{kind: KindFloat, f: v}, true
	case complex64:
		return Scalar{kind: KindComplex, c: complex128(v)}, true
	case complex128:
		return Scalar{kind: KindComplex, c: v}, true
	default:
		return Scalar{}, false
	}
}

// scalarOf is the internal alias used by Array accessors.
func scalarOf(value any) (Scalar, bool) {
	return ScalarOf(value)
}

// Load reads the element at buffer position pos into its tagged form.
func (a *Array) Load(pos int) Scalar {
	switch a.dtype {
	case Int8:
		return Scalar{kind: KindInt, i: int64(Slice[int8](a)[pos])}
	case Int16:
		return Scalar{kind: KindInt, i: int64(Slice[int16](a)[pos])}
	case Int32:
		return Scalar{kind: KindInt, i: int64(Slice[int32](a)[pos])}
	case Int64:
		return Scalar{kind: KindInt, i: Slice[int64](a)[pos]}
	case Uint8:
		return Scalar{kind: KindUint, u: uint64(Slice[uint8](a)[pos])}
	case Uint16:
		return Scalar{kind: KindUint, u: uint64(Slice[uint16](a)[pos])}
	case Uint32:
		return Scalar{kind: KindUint, u: uint64(Slice[uint32](a)[pos])}
	case Uint64:
		return Scalar{kind: KindUint, u: Slice[uint64](a)[pos]}
	case Float32:
		return Scalar{kind: KindFloat, f: float64(Slice[float32](a)[pos])}
	case Float64:
		return Scalar{kind: KindFloat, f: Slice[float64](a)[pos]}
	case Complex64:
		return Scalar{kind: KindComplex, c: complex128(Slice[complex64](a)[pos])}
	case Complex128:
		return Scalar{kind: KindComplex, c: Slice[complex128](a)[pos]}
	default:
		panic("unknown data type")
	}
}

// Store writes a tagged value into buffer position pos, converting it
// to the array's element type. Real values stored into complex targets
// take a zero imaginary component; narrowing follows Go conversion
// semantics.
func (a *Array) Store(pos int, s Scalar) {
	switch a.dtype {
	case Int8:
		Slice[int8](a)[pos] = int8(s.AsInt64()) //nolint:gosec // G115: narrowing is the defined store semantics
	case Int16:
		Slice[int16](a)[pos] = int16(s.AsInt64()) //nolint:gosec // G115
	case Int32:
		Slice[int32](a)[pos] = int32(s.AsInt64()) //nolint:gosec // G115
	case Int64:
		Slice[int64](a)[pos] = s.AsInt64()
	case Uint8:
		Slice[uint8](a)[pos] = uint8(s.AsUint64()) //nolint:gosec // G115
	case Uint16:
		Slice[uint16](a)[pos] = uint16(s.AsUint64()) //nolint:gosec // G115
	case Uint32:
		Slice[uint32](a)[pos] = uint32(s.AsUint64()) //nolint:gosec // G115
	case Uint64:
		Slice[uint64](a)[pos] = s.AsUint64()
	case Float32:
		Slice[float32](a)[pos] = float32(s.AsFloat64())
	case Float64:
		Slice[float64](a)[pos] = s.AsFloat64()
	case Complex64:
		Slice[complex64](a)[pos] = complex64(s.AsComplex128())
	case Complex128:
		Slice[complex128](a)[pos] = s.AsComplex128()
	default:
		panic("unknown data type")
	}
}

// loadScalar and storeScalar are the internal spellings used by the
// Array accessors.
func loadScalar(a *Array, pos int) Scalar     { return a.Load(pos) }
func storeScalar(a *Array, pos int, s Scalar) { a.Store(pos, s) }
