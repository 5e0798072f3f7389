package math

/**
 * @brief An axis-aligned box spanned by two corner points.
 * When not empty, PMin[i] <= PMax[i] holds on every axis.
 */
type Bounds[T Scalar, N Dim] struct {
	/** @brief The corner with the smallest coordinates. */
	PMin Point[T, N]
	/** @brief The corner with the largest coordinates. */
	PMax Point[T, N]
}

// EmptyBounds returns the empty box: PMin is the highest value of T on every
// axis and PMax the lowest, so the first point merged in becomes both
// corners.
func EmptyBounds[T Scalar, N Dim]() Bounds[T, N] {
	return Bounds[T, N]{
		PMin: Point[T, N]{splat[T, N](Highest[T]())},
		PMax: Point[T, N]{splat[T, N](Lowest[T]())},
	}
}

// BoundsFromPoint returns the degenerate box holding only p.
func BoundsFromPoint[T Scalar, N Dim](p Point[T, N]) Bounds[T, N] {
	return Bounds[T, N]{PMin: p, PMax: p}
}

// NewBounds returns the smallest box containing both points, in any order.
func NewBounds[T Scalar, N Dim](p1, p2 Point[T, N]) Bounds[T, N] {
	return Bounds[T, N]{PMin: p1.Min(p2), PMax: p1.Max(p2)}
}

// IsEmpty reports whether PMax < PMin on any axis.
func (b Bounds[T, N]) IsEmpty() bool {
	for i := range dim[N]() {
		if b.PMax.e[i] < b.PMin.e[i] {
			return true
		}
	}
	return false
}

// Union grows the box to contain p.
func (b Bounds[T, N]) Union(p Point[T, N]) Bounds[T, N] {
	return Bounds[T, N]{PMin: b.PMin.Min(p), PMax: b.PMax.Max(p)}
}

// UnionBounds grows the box to contain other.
func (b Bounds[T, N]) UnionBounds(other Bounds[T, N]) Bounds[T, N] {
	return Bounds[T, N]{PMin: b.PMin.Min(other.PMin), PMax: b.PMax.Max(other.PMax)}
}

// Contains reports whether p lies inside the box, boundary included.
func (b Bounds[T, N]) Contains(p Point[T, N]) bool {
	for i := range dim[N]() {
		if p.e[i] < b.PMin.e[i] || p.e[i] > b.PMax.e[i] {
			return false
		}
	}
	return true
}

// Diagonal is the vector from PMin to PMax. It is meaningless for empty boxes.
func (b Bounds[T, N]) Diagonal() Vector[T, N] {
	return b.PMax.Sub(b.PMin)
}
