package math

import (
	"iter"
	m "math"
)

// Normal is a surface normal. It supports the same componentwise arithmetic
// as Vector but stays a separate type, since normals transform differently
// from vectors under non-uniform scaling.
type Normal[T Scalar, N Dim] struct {
	Tuple[T, N]
}

func NewNormal3[T Scalar](x, y, z T) Normal[T, D3] {
	return Normal[T, D3]{tupleOf[T, D3]([]T{x, y, z})}
}

func NormalFrom[T Scalar, N Dim](c ...T) Normal[T, N] {
	return Normal[T, N]{tupleOf[T, N](c)}
}

func NormalFromSeq[T Scalar, N Dim](seq iter.Seq[T]) Normal[T, N] {
	return Normal[T, N]{tupleFromSeq[T, N](seq)}
}

// Compare reports whether every component of n is within tolerance of
// the matching component of other.
func (n Normal[T, N]) Compare(other Normal[T, N], tolerance float64) bool {
	return n.Tuple.Compare(other.Tuple, tolerance)
}

func (n Normal[T, N]) ApproxEqual(other Normal[T, N]) bool {
	return n.Tuple.ApproxEqual(other.Tuple)
}

func (n Normal[T, N]) direction() Tuple[T, N] {
	return n.Tuple
}

func (n Normal[T, N]) Add(other Normal[T, N]) Normal[T, N] {
	return Normal[T, N]{n.add(other.Tuple)}
}

func (n Normal[T, N]) Sub(other Normal[T, N]) Normal[T, N] {
	return Normal[T, N]{n.sub(other.Tuple)}
}

func (n Normal[T, N]) Mul(s T) Normal[T, N] {
	return Normal[T, N]{n.mul(s)}
}

func (n Normal[T, N]) Div(d float64) Normal[float64, N] {
	return Normal[float64, N]{n.div(d)}
}

// Dot accepts a Normal or a Vector.
func (n Normal[T, N]) Dot(other Direction[T, N]) T {
	return n.dot(other.direction())
}

func (n Normal[T, N]) LengthSquared() float64 {
	return n.lengthSquared()
}

func (n Normal[T, N]) Length() float64 {
	return m.Sqrt(n.lengthSquared())
}

func (n Normal[T, N]) Normalize() Normal[float64, N] {
	return Normal[float64, N]{n.normalize()}
}

func (n Normal[T, N]) Permute(axes ...int) Normal[T, N] {
	return Normal[T, N]{n.permute(axes)}
}

func (n Normal[T, N]) ToVector() Vector[T, N] {
	return Vector[T, N]{n.Tuple}
}

func NegNormal[T Signed, N Dim](n Normal[T, N]) Normal[T, N] {
	return Normal[T, N]{negTuple(n.Tuple)}
}

func AbsNormal[T Signed, N Dim](n Normal[T, N]) Normal[T, N] {
	return Normal[T, N]{absTuple(n.Tuple)}
}

func AbsDotNormal[T Signed, N Dim](n Normal[T, N], other Direction[T, N]) T {
	return abs(n.Dot(other))
}

// FaceForward flips n when needed so that it lies in the same hemisphere as
// ref, i.e. so that their dot product is not negative.
func FaceForward[T Signed, N Dim](n Normal[T, N], ref Direction[T, N]) Normal[T, N] {
	if n.Dot(ref) < 0 {
		return NegNormal(n)
	}
	return n
}
