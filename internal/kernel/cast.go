// Package kernel implements the element-level kernels of the ndview
// library: the mostly-safe cast policy, scalar broadcasting, strided
// assignment, and the fill entry point built from them.
package kernel

import (
	"github.com/born-ml/ndview/internal/ndarray"
)

// MostlySafeCompatible reports whether a scalar may be written into an
// array of the target element type.
//
// The policy is "mostly safe": every safe cast is allowed, plus one
// deliberate exception for same-kind floating-point downcasts (a
// float64 may fill a float32 array, a complex128 a complex64 array),
// which lose precision but never change numeric kind. Float values
// never fill integer arrays, regardless of their fractional part, and
// complex values never fill real arrays. Integer signedness changes at
// the same width are treated as unsafe.
//
// Pure predicate: no side effects, no errors. Non-numeric values are
// simply incompatible with everything.
func MostlySafeCompatible(value any, target ndarray.DataType) bool {
	from, ok := ndarray.NaturalType(value)
	if !ok {
		return false
	}
	if from == target {
		return true
	}
	return safeCast(from, target) || floatDowncast(from, target)
}

// safeCast reports whether every value of type from is exactly
// representable as type to.
func safeCast(from, to ndarray.DataType) bool {
	switch from.Kind() {
	case ndarray.KindInt:
		switch to.Kind() {
		case ndarray.KindInt:
			return to.Bits() > from.Bits()
		case ndarray.KindFloat:
			return mantissaBits(to) >= from.Bits()-1
		case ndarray.KindComplex:
			return mantissaBits(componentType(to)) >= from.Bits()-1
		default:
			return false
		}
	case ndarray.KindUint:
		switch to.Kind() {
		case ndarray.KindUint:
			return to.Bits() > from.Bits()
		case ndarray.KindInt:
			// A strictly wider signed type covers the full unsigned range.
			return to.Bits() > from.Bits()
		case ndarray.KindFloat:
			return mantissaBits(to) >= from.Bits()
		case ndarray.KindComplex:
			return mantissaBits(componentType(to)) >= from.Bits()
		default:
			return false
		}
	case ndarray.KindFloat:
		switch to.Kind() {
		case ndarray.KindFloat:
			return to.Bits() > from.Bits()
		case ndarray.KindComplex:
			return componentType(to).Bits() >= from.Bits()
		default:
			return false
		}
	case ndarray.KindComplex:
		return to.Kind() == ndarray.KindComplex && to.Bits() > from.Bits()
	default:
		return false
	}
}

// floatDowncast reports the same-kind exception: both sides are
// floating point (real or complex) and the target is real only if the
// source is too. Lower precision is accepted.
func floatDowncast(from, to ndarray.DataType) bool {
	fromFloating := from.Kind() == ndarray.KindFloat || from.Kind() == ndarray.KindComplex
	toFloating := to.Kind() == ndarray.KindFloat || to.Kind() == ndarray.KindComplex
	if !fromFloating || !toFloating {
		return false
	}
	// Complex into a strictly real target drops the imaginary part.
	if from.Kind() == ndarray.KindComplex && to.Kind() == ndarray.KindFloat {
		return false
	}
	return true
}

// componentType returns the real element type of a complex type.
func componentType(dt ndarray.DataType) ndarray.DataType {
	switch dt {
	case ndarray.Complex64:
		return ndarray.Float32
	case ndarray.Complex128:
		return ndarray.Float64
	default:
		panic("not a complex type")
	}
}

// mantissaBits returns the significand width of a real float type,
// including the implicit bit. Integers up to this many bits round-trip
// exactly.
func mantissaBits(dt ndarray.DataType) int {
	switch dt {
	case ndarray.Float32:
		return 24
	case ndarray.Float64:
		return 53
	default:
		panic("not a float type")
	}
}
