package math

import (
	m "math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is the component type of every tuple in the kernel.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Signed scalars can be negated and have an absolute value.
type Signed interface {
	constraints.Signed | constraints.Float
}

type Float interface {
	constraints.Float
}

func isFloat[T Scalar]() bool {
	half := 0.5
	return T(half) != 0
}

func isSigned[T Scalar]() bool {
	var zero T
	return zero-1 < zero
}

/**
 * @brief Returns the largest finite value representable by T.
 */
func Highest[T Scalar]() T {
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	switch {
	case isFloat[T]():
		if bits == 32 {
			f := float32(m.MaxFloat32)
			return T(f)
		}
		f := m.MaxFloat64
		return T(f)
	case isSigned[T]():
		u := uint64(1)<<(bits-1) - 1
		return T(u)
	default:
		u := uint64(m.MaxUint64) >> (64 - bits)
		return T(u)
	}
}

/**
 * @brief Returns the smallest finite value representable by T. For floats this
 * is -Highest, not the smallest positive number.
 */
func Lowest[T Scalar]() T {
	var zero T
	switch {
	case isFloat[T]():
		return -Highest[T]()
	case isSigned[T]():
		h := Highest[T]()
		return -h - 1
	default:
		return zero
	}
}

func abs[T Signed](x T) T {
	switch v := any(x).(type) {
	case float64:
		return T(m.Abs(v))
	case float32:
		return T(math32.Abs(v))
	}
	if x < 0 {
		return -x
	}
	return x
}

func floor[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Floor(v))
	}
	return T(m.Floor(float64(x)))
}

func ceil[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Ceil(v))
	}
	return T(m.Ceil(float64(x)))
}
