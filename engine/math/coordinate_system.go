package math

import m "math"

// CoordinateSystem is a right-handed orthonormal frame grown from one vector.
type CoordinateSystem struct {
	V1, V2, V3 Vector3f
}

// NewCoordinateSystem builds a frame around v1, which must already be
// normalized. A zero v1 yields NaN components.
func NewCoordinateSystem(v1 Vector3f) CoordinateSystem {
	var v2 Vector3f
	// Zero the smaller of x and y so v2 cannot collapse to zero length.
	if m.Abs(v1.X()) > m.Abs(v1.Y()) {
		v2 = NewVector3(-v1.Z(), 0, v1.X()).Normalize()
	} else {
		v2 = NewVector3(0, v1.Z(), -v1.Y()).Normalize()
	}
	return CoordinateSystem{V1: v1, V2: v2, V3: Cross(v1, v2)}
}
