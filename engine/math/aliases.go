package math

type (
	Vector2[T Scalar] = Vector[T, D2]
	Vector3[T Scalar] = Vector[T, D3]
	Point2[T Scalar]  = Point[T, D2]
	Point3[T Scalar]  = Point[T, D3]
	Normal3[T Scalar] = Normal[T, D3]
	Bounds2[T Scalar] = Bounds[T, D2]
	Bounds3[T Scalar] = Bounds[T, D3]
)

type (
	Vector2f = Vector[float64, D2]
	Vector2i = Vector[int32, D2]
	Vector3f = Vector[float64, D3]
	Vector3i = Vector[int32, D3]

	Point2f = Point[float64, D2]
	Point2i = Point[int32, D2]
	Point3f = Point[float64, D3]
	Point3i = Point[int32, D3]

	Normal3f = Normal[float64, D3]

	Bounds2f = Bounds[float64, D2]
	Bounds2i = Bounds[int32, D2]
	Bounds3f = Bounds[float64, D3]
	Bounds3i = Bounds[int32, D3]
)
