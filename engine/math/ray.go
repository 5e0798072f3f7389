package math

import (
	m "math"

	"github.com/spaghettifunk/prism/engine/core"
)

// Medium is the participating medium a ray travels through. The kernel only
// carries it along.
type Medium interface{}

// Extent holds the upper bound of a ray's parameter. It is the only part of
// a Ray that changes after construction: intersection routines shrink it as
// they find closer hits. An Extent does no locking; callers sharing a ray
// between goroutines must synchronize.
type Extent struct {
	t float64
}

func NewExtent(t float64) *Extent {
	return &Extent{t: t}
}

func (e *Extent) Load() float64 {
	return e.t
}

func (e *Extent) Store(t float64) {
	e.t = t
}

// Shrink lowers the bound to t when t is closer and reports whether it did.
func (e *Extent) Shrink(t float64) bool {
	if t < e.t {
		e.t = t
		return true
	}
	return false
}

// Ray is the half-line O + D*t for t in [0, TMax()].
//
// Copies of a Ray share one Extent, so SetTMax on any copy is seen by all of
// them. This includes copies made by plain assignment and then edited:
//
//	secondary := primary
//	secondary.O = hit
//	secondary.SetTMax(2) // primary.TMax() is now 2 as well
//
// Build secondary rays with Clone, or with NewRay, when they need their own
// bound.
//
// The zero Ray has no Extent: TMax reports +Inf but SetTMax and Extent panic.
// Use NewRay or DefaultRay.
type Ray struct {
	O      Point3f
	D      Vector3f
	Time   float64
	Medium Medium

	tMax *Extent
}

type rayOptions struct {
	tMax   float64
	time   float64
	medium Medium
}

type RayOption func(*rayOptions)

// WithTMax sets the initial parameter bound. The default is +Inf.
func WithTMax(t float64) RayOption {
	return func(o *rayOptions) {
		o.tMax = t
	}
}

// WithTime sets the time the ray is cast at. The default is 0.
func WithTime(t float64) RayOption {
	return func(o *rayOptions) {
		o.time = t
	}
}

func WithMedium(md Medium) RayOption {
	return func(o *rayOptions) {
		o.medium = md
	}
}

func NewRay(o Point3f, d Vector3f, options ...RayOption) Ray {
	opts := &rayOptions{tMax: m.Inf(1)}
	for _, opt := range options {
		opt(opts)
	}
	return Ray{
		O:      o,
		D:      d,
		Time:   opts.time,
		Medium: opts.medium,
		tMax:   NewExtent(opts.tMax),
	}
}

// DefaultRay starts at the origin with a zero direction.
func DefaultRay() Ray {
	return NewRay(Point3f{}, Vector3f{})
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Point3f {
	return r.O.Add(r.D.Mul(t))
}

// TMax returns the current parameter bound. A zero Ray reports +Inf.
func (r Ray) TMax() float64 {
	if r.tMax == nil {
		return m.Inf(1)
	}
	return r.tMax.Load()
}

// SetTMax replaces the parameter bound. The receiver is a value: only the
// shared Extent changes.
func (r Ray) SetTMax(t float64) {
	r.Extent().Store(t)
}

// Extent exposes the mutable parameter bound.
func (r Ray) Extent() *Extent {
	if r.tMax == nil {
		core.Violation(core.ErrUninitialized, "ray was not built with NewRay")
	}
	return r.tMax
}

// Clone returns a copy of r with an independent Extent.
func (r Ray) Clone() Ray {
	c := r
	c.tMax = NewExtent(r.TMax())
	return c
}
