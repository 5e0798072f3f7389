package math

// RayDifferential is a Ray plus two auxiliary rays offset by one pixel in x
// and y on the image plane, used to estimate texture footprints.
//
// Like Ray, the zero value has no Extent and panics on SetTMax. Build it with
// NewRayDifferential or RayDifferentialFromRay. The latter shares the
// Extent of the wrapped ray; pass r.Clone() for an independent bound.
type RayDifferential struct {
	Ray

	HasDifferentials bool
	RxOrigin         Point3f
	RyOrigin         Point3f
	RxDirection      Vector3f
	RyDirection      Vector3f
}

func NewRayDifferential(o Point3f, d Vector3f, options ...RayOption) RayDifferential {
	return RayDifferentialFromRay(NewRay(o, d, options...))
}

// RayDifferentialFromRay wraps r with zeroed auxiliary rays.
func RayDifferentialFromRay(r Ray) RayDifferential {
	return RayDifferential{Ray: r}
}

// ScaleDifferentials moves the auxiliary origins and directions so that their
// offset from the main ray is multiplied by s. The main ray is unchanged.
func (rd *RayDifferential) ScaleDifferentials(s float64) {
	o, d := rd.O, rd.D

	rd.RxOrigin = o.Add(rd.RxOrigin.Sub(o).Mul(s))
	rd.RyOrigin = o.Add(rd.RyOrigin.Sub(o).Mul(s))

	rd.RxDirection = d.Add(rd.RxDirection.Sub(d).Mul(s))
	rd.RyDirection = d.Add(rd.RyDirection.Sub(d).Mul(s))
}
