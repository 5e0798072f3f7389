package math

// Conversions between Vector, Point and Normal of the same scalar type and
// dimension live on the types themselves (ToPoint, ToVector, ToNormal) and
// reuse the components unchanged. The functions below change the scalar type
// instead, e.g. ConvertPoint[float64](Point3i): each component goes through a
// Go numeric conversion, so float to integer truncates toward zero.

func ConvertVector[U, T Scalar, N Dim](v Vector[T, N]) Vector[U, N] {
	return Vector[U, N]{convertTuple[U](v.Tuple)}
}

func ConvertPoint[U, T Scalar, N Dim](p Point[T, N]) Point[U, N] {
	return Point[U, N]{convertTuple[U](p.Tuple)}
}

func ConvertNormal[U, T Scalar, N Dim](n Normal[T, N]) Normal[U, N] {
	return Normal[U, N]{convertTuple[U](n.Tuple)}
}

func ConvertBounds[U, T Scalar, N Dim](b Bounds[T, N]) Bounds[U, N] {
	if b.IsEmpty() {
		return EmptyBounds[U, N]()
	}
	return Bounds[U, N]{PMin: ConvertPoint[U](b.PMin), PMax: ConvertPoint[U](b.PMax)}
}
