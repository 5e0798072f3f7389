package math

import (
	"iter"
	m "math"
)

// Vector is a direction or displacement with no fixed origin.
type Vector[T Scalar, N Dim] struct {
	Tuple[T, N]
}

// Direction is implemented by Vector and Normal. Dot products accept either
// kind on the right-hand side.
type Direction[T Scalar, N Dim] interface {
	direction() Tuple[T, N]
}

func NewVector2[T Scalar](x, y T) Vector[T, D2] {
	return Vector[T, D2]{tupleOf[T, D2]([]T{x, y})}
}

func NewVector3[T Scalar](x, y, z T) Vector[T, D3] {
	return Vector[T, D3]{tupleOf[T, D3]([]T{x, y, z})}
}

// VectorFrom builds a vector from exactly N components.
func VectorFrom[T Scalar, N Dim](c ...T) Vector[T, N] {
	return Vector[T, N]{tupleOf[T, N](c)}
}

// VectorFromSeq builds a vector from a sequence yielding exactly N components.
func VectorFromSeq[T Scalar, N Dim](seq iter.Seq[T]) Vector[T, N] {
	return Vector[T, N]{tupleFromSeq[T, N](seq)}
}

// Compare reports whether every component of v is within tolerance of
// the matching component of other.
func (v Vector[T, N]) Compare(other Vector[T, N], tolerance float64) bool {
	return v.Tuple.Compare(other.Tuple, tolerance)
}

func (v Vector[T, N]) ApproxEqual(other Vector[T, N]) bool {
	return v.Tuple.ApproxEqual(other.Tuple)
}

func (v Vector[T, N]) direction() Tuple[T, N] {
	return v.Tuple
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vector[T, N]) Add(other Vector[T, N]) Vector[T, N] {
	return Vector[T, N]{v.add(other.Tuple)}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vector[T, N]) Sub(other Vector[T, N]) Vector[T, N] {
	return Vector[T, N]{v.sub(other.Tuple)}
}

// Mul scales every component by s.
func (v Vector[T, N]) Mul(s T) Vector[T, N] {
	return Vector[T, N]{v.mul(s)}
}

// Div divides every component by d. The result is always float64, even for
// integer vectors.
func (v Vector[T, N]) Div(d float64) Vector[float64, N] {
	return Vector[float64, N]{v.div(d)}
}

func (v Vector[T, N]) Dot(other Direction[T, N]) T {
	return v.dot(other.direction())
}

/**
 * Returns the squared length of the vector, computed in float64.
 */
func (v Vector[T, N]) LengthSquared() float64 {
	return v.lengthSquared()
}

func (v Vector[T, N]) Length() float64 {
	return m.Sqrt(v.lengthSquared())
}

// Normalize returns a float64 unit vector pointing the same way as v.
func (v Vector[T, N]) Normalize() Vector[float64, N] {
	return Vector[float64, N]{v.normalize()}
}

// Min returns the componentwise minimum of v and other.
func (v Vector[T, N]) Min(other Vector[T, N]) Vector[T, N] {
	return Vector[T, N]{v.min(other.Tuple)}
}

// Max returns the componentwise maximum of v and other.
func (v Vector[T, N]) Max(other Vector[T, N]) Vector[T, N] {
	return Vector[T, N]{v.max(other.Tuple)}
}

func (v Vector[T, N]) MinComponent() T {
	return v.e[v.minDimension()]
}

func (v Vector[T, N]) MaxComponent() T {
	return v.e[v.maxDimension()]
}

// MinDimension returns the axis of the smallest component. Ties go to the
// lowest axis.
func (v Vector[T, N]) MinDimension() int {
	return v.minDimension()
}

// MaxDimension returns the axis of the largest component. Ties go to the
// lowest axis.
func (v Vector[T, N]) MaxDimension() int {
	return v.maxDimension()
}

// Permute reorders the components: component i of the result is component
// axes[i] of v.
func (v Vector[T, N]) Permute(axes ...int) Vector[T, N] {
	return Vector[T, N]{v.permute(axes)}
}

func (v Vector[T, N]) ToPoint() Point[T, N] {
	return Point[T, N]{v.Tuple}
}

func (v Vector[T, N]) ToNormal() Normal[T, N] {
	return Normal[T, N]{v.Tuple}
}

// Neg returns a vector pointing in the opposite direction.
func Neg[T Signed, N Dim](v Vector[T, N]) Vector[T, N] {
	return Vector[T, N]{negTuple(v.Tuple)}
}

func Abs[T Signed, N Dim](v Vector[T, N]) Vector[T, N] {
	return Vector[T, N]{absTuple(v.Tuple)}
}

func AbsDot[T Signed, N Dim](v Vector[T, N], other Direction[T, N]) T {
	return abs(v.Dot(other))
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * Both operands are promoted to float64 first.
 */
func Cross[T Scalar](a, b Vector[T, D3]) Vector[float64, D3] {
	p, q := promote(a.Tuple), promote(b.Tuple)
	return NewVector3(
		p.e[1]*q.e[2]-p.e[2]*q.e[1],
		p.e[2]*q.e[0]-p.e[0]*q.e[2],
		p.e[0]*q.e[1]-p.e[1]*q.e[0],
	)
}
