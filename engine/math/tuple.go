package math

import (
	"fmt"
	"iter"
	m "math"
	"strings"

	"github.com/spaghettifunk/prism/engine/core"
)

/** @brief The largest dimension a tuple can have. */
const K_MAX_DIMENSION = 3

// Dim fixes the number of components of a tuple at compile time. Only D2 and
// D3 satisfy it.
type Dim interface {
	D2 | D3
	Len() int
}

// D2 tags two-component tuples (x, y).
type D2 struct{}

func (D2) Len() int { return 2 }

// D3 tags three-component tuples (x, y, z).
type D3 struct{}

func (D3) Len() int { return 3 }

func dim[N Dim]() int {
	var n N
	return n.Len()
}

// Tuple is the component storage shared by Vector, Point and Normal. It is a
// plain value: assigning a tuple copies every component. Components past the
// dimension are always zero so that == compares tuples correctly.
type Tuple[T Scalar, N Dim] struct {
	e [K_MAX_DIMENSION]T
}

func tupleOf[T Scalar, N Dim](c []T) Tuple[T, N] {
	n := dim[N]()
	if len(c) != n {
		core.Violation(core.ErrComponentCount, "expected %d components, got %d", n, len(c))
	}
	var t Tuple[T, N]
	copy(t.e[:n], c)
	return t
}

func tupleFromSeq[T Scalar, N Dim](seq iter.Seq[T]) Tuple[T, N] {
	n := dim[N]()
	var t Tuple[T, N]
	k := 0
	for c := range seq {
		if k == n {
			core.Violation(core.ErrComponentCount, "expected %d components, got more", n)
		}
		t.e[k] = c
		k++
	}
	if k != n {
		core.Violation(core.ErrComponentCount, "expected %d components, got %d", n, k)
	}
	return t
}

func splat[T Scalar, N Dim](x T) Tuple[T, N] {
	var t Tuple[T, N]
	for i := range dim[N]() {
		t.e[i] = x
	}
	return t
}

// Len returns the dimension of the tuple.
func (t Tuple[T, N]) Len() int {
	return dim[N]()
}

// At returns the component on axis i. Asking for an axis outside 0..Len()-1
// is a fatal precondition violation.
func (t Tuple[T, N]) At(i int) T {
	t.checkAxis(i)
	return t.e[i]
}

func (t Tuple[T, N]) X() T { return t.e[0] }
func (t Tuple[T, N]) Y() T { return t.e[1] }

// Z panics on two-dimensional tuples.
func (t Tuple[T, N]) Z() T { return t.At(2) }

// Components returns a fresh slice with the components in axis order.
func (t Tuple[T, N]) Components() []T {
	out := make([]T, dim[N]())
	copy(out, t.e[:])
	return out
}

// All iterates over (axis, component) pairs.
func (t Tuple[T, N]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range dim[N]() {
			if !yield(i, t.e[i]) {
				return
			}
		}
	}
}

/**
 * @brief Compares all components of t and other and ensures the difference
 * is not greater than tolerance. A NaN component never compares equal.
 * Infinities compare equal only to an infinity of the same sign.
 */
func (t Tuple[T, N]) Compare(other Tuple[T, N], tolerance float64) bool {
	for i := range dim[N]() {
		a, b := float64(t.e[i]), float64(other.e[i])
		if a == b {
			continue
		}
		if !(m.Abs(a-b) <= tolerance) {
			return false
		}
	}
	return true
}

// ApproxEqual is Compare with the epsilon of the active settings.
func (t Tuple[T, N]) ApproxEqual(other Tuple[T, N]) bool {
	return t.Compare(other, core.CurrentSettings().Epsilon)
}

func (t Tuple[T, N]) String() string {
	parts := make([]string, 0, K_MAX_DIMENSION)
	for _, c := range t.All() {
		parts = append(parts, fmt.Sprint(c))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (t Tuple[T, N]) checkAxis(i int) {
	if n := dim[N](); i < 0 || i >= n {
		core.Violation(core.ErrIndexOutOfRange, "axis %d of a %d-dimensional tuple", i, n)
	}
}

func (t Tuple[T, N]) add(o Tuple[T, N]) Tuple[T, N] {
	for i := range dim[N]() {
		t.e[i] += o.e[i]
	}
	return t
}

func (t Tuple[T, N]) sub(o Tuple[T, N]) Tuple[T, N] {
	for i := range dim[N]() {
		t.e[i] -= o.e[i]
	}
	return t
}

func (t Tuple[T, N]) mul(s T) Tuple[T, N] {
	for i := range dim[N]() {
		t.e[i] *= s
	}
	return t
}

// div always yields float64 components. The divisor is inverted once and every
// component multiplied by the inverse; a zero divisor gives Inf/NaN.
func (t Tuple[T, N]) div(d float64) Tuple[float64, N] {
	inv := 1 / d
	var r Tuple[float64, N]
	for i := range dim[N]() {
		r.e[i] = float64(t.e[i]) * inv
	}
	return r
}

func (t Tuple[T, N]) dot(o Tuple[T, N]) T {
	var sum T
	for i := range dim[N]() {
		sum += t.e[i] * o.e[i]
	}
	return sum
}

// lengthSquared widens every component to float64 before squaring.
func (t Tuple[T, N]) lengthSquared() float64 {
	var sum float64
	for i := range dim[N]() {
		c := float64(t.e[i])
		sum += c * c
	}
	return sum
}

func (t Tuple[T, N]) normalize() Tuple[float64, N] {
	length := m.Sqrt(t.lengthSquared())
	if length == 0 && core.CurrentSettings().StrictNormalize {
		core.Violation(core.ErrDegenerateVector, "cannot normalize zero-length tuple %v", t)
	}
	return t.div(length)
}

func (t Tuple[T, N]) min(o Tuple[T, N]) Tuple[T, N] {
	for i := range dim[N]() {
		t.e[i] = min(t.e[i], o.e[i])
	}
	return t
}

func (t Tuple[T, N]) max(o Tuple[T, N]) Tuple[T, N] {
	for i := range dim[N]() {
		t.e[i] = max(t.e[i], o.e[i])
	}
	return t
}

// minDimension returns the first axis holding the smallest component.
func (t Tuple[T, N]) minDimension() int {
	best := 0
	for i := 1; i < dim[N](); i++ {
		if t.e[i] < t.e[best] {
			best = i
		}
	}
	return best
}

// maxDimension returns the first axis holding the largest component.
func (t Tuple[T, N]) maxDimension() int {
	best := 0
	for i := 1; i < dim[N](); i++ {
		if t.e[i] > t.e[best] {
			best = i
		}
	}
	return best
}

func (t Tuple[T, N]) permute(axes []int) Tuple[T, N] {
	n := dim[N]()
	if len(axes) != n {
		core.Violation(core.ErrComponentCount, "permute needs %d axes, got %d", n, len(axes))
	}
	var r Tuple[T, N]
	for i, a := range axes {
		if a < 0 || a >= n {
			core.Violation(core.ErrIndexOutOfRange, "permute axis %d of a %d-dimensional tuple", a, n)
		}
		r.e[i] = t.e[a]
	}
	return r
}

func negTuple[T Signed, N Dim](t Tuple[T, N]) Tuple[T, N] {
	for i := range dim[N]() {
		t.e[i] = -t.e[i]
	}
	return t
}

func absTuple[T Signed, N Dim](t Tuple[T, N]) Tuple[T, N] {
	for i := range dim[N]() {
		t.e[i] = abs(t.e[i])
	}
	return t
}

func convertTuple[U, T Scalar, N Dim](t Tuple[T, N]) Tuple[U, N] {
	var r Tuple[U, N]
	for i := range dim[N]() {
		r.e[i] = U(t.e[i])
	}
	return r
}

func promote[T Scalar, N Dim](t Tuple[T, N]) Tuple[float64, N] {
	return convertTuple[float64](t)
}
