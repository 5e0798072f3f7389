package math

import (
	"iter"
	m "math"
)

// Point is an absolute position. Two points can be subtracted, giving a
// Vector, but not added.
type Point[T Scalar, N Dim] struct {
	Tuple[T, N]
}

func NewPoint2[T Scalar](x, y T) Point[T, D2] {
	return Point[T, D2]{tupleOf[T, D2]([]T{x, y})}
}

func NewPoint3[T Scalar](x, y, z T) Point[T, D3] {
	return Point[T, D3]{tupleOf[T, D3]([]T{x, y, z})}
}

// PointFrom builds a point from exactly N components.
func PointFrom[T Scalar, N Dim](c ...T) Point[T, N] {
	return Point[T, N]{tupleOf[T, N](c)}
}

// PointFromSeq builds a point from a sequence yielding exactly N components.
func PointFromSeq[T Scalar, N Dim](seq iter.Seq[T]) Point[T, N] {
	return Point[T, N]{tupleFromSeq[T, N](seq)}
}

// Point2From3 drops the z component.
func Point2From3[T Scalar](p Point[T, D3]) Point[T, D2] {
	return NewPoint2(p.e[0], p.e[1])
}

// Compare reports whether every component of p is within tolerance of
// the matching component of other.
func (p Point[T, N]) Compare(other Point[T, N], tolerance float64) bool {
	return p.Tuple.Compare(other.Tuple, tolerance)
}

func (p Point[T, N]) ApproxEqual(other Point[T, N]) bool {
	return p.Tuple.ApproxEqual(other.Tuple)
}

// Add offsets the point by v.
func (p Point[T, N]) Add(v Vector[T, N]) Point[T, N] {
	return Point[T, N]{p.add(v.Tuple)}
}

// Sub returns the displacement from other to p.
func (p Point[T, N]) Sub(other Point[T, N]) Vector[T, N] {
	return Vector[T, N]{p.sub(other.Tuple)}
}

// SubVector offsets the point by -v.
func (p Point[T, N]) SubVector(v Vector[T, N]) Point[T, N] {
	return Point[T, N]{p.sub(v.Tuple)}
}

func (p Point[T, N]) Mul(s T) Point[T, N] {
	return Point[T, N]{p.mul(s)}
}

func (p Point[T, N]) Div(d float64) Point[float64, N] {
	return Point[float64, N]{p.div(d)}
}

/**
 * @brief Returns the distance between p and other.
 */
func (p Point[T, N]) Distance(other Point[T, N]) float64 {
	return m.Sqrt(p.DistanceSquared(other))
}

func (p Point[T, N]) DistanceSquared(other Point[T, N]) float64 {
	return p.Sub(other).LengthSquared()
}

// Lerp interpolates between p (t=0) and other (t=1) as p*(1-t) + other*t.
func (p Point[T, N]) Lerp(t float64, other Point[T, N]) Point[float64, N] {
	a, b := promote(p.Tuple), promote(other.Tuple)
	return Point[float64, N]{a.mul(1 - t).add(b.mul(t))}
}

func (p Point[T, N]) Min(other Point[T, N]) Point[T, N] {
	return Point[T, N]{p.min(other.Tuple)}
}

func (p Point[T, N]) Max(other Point[T, N]) Point[T, N] {
	return Point[T, N]{p.max(other.Tuple)}
}

func (p Point[T, N]) Permute(axes ...int) Point[T, N] {
	return Point[T, N]{p.permute(axes)}
}

func (p Point[T, N]) ToVector() Vector[T, N] {
	return Vector[T, N]{p.Tuple}
}

func (p Point[T, N]) ToNormal() Normal[T, N] {
	return Normal[T, N]{p.Tuple}
}

func AbsPoint[T Signed, N Dim](p Point[T, N]) Point[T, N] {
	return Point[T, N]{absTuple(p.Tuple)}
}

func FloorPoint[T Float, N Dim](p Point[T, N]) Point[T, N] {
	for i := range dim[N]() {
		p.e[i] = floor(p.e[i])
	}
	return p
}

func CeilPoint[T Float, N Dim](p Point[T, N]) Point[T, N] {
	for i := range dim[N]() {
		p.e[i] = ceil(p.e[i])
	}
	return p
}
