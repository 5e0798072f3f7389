package math

import (
	m "math"
	"math/rand"
	"testing"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/stretchr/testify/assert"
)

func TestVectorNew(t *testing.T) {
	v2 := NewVector2(1, 2)
	assert.Equal(t, 1, v2.X())
	assert.Equal(t, 2, v2.Y())

	v3 := NewVector3(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, v3.Components())

	var zero Vector2[uint32]
	assert.Equal(t, uint32(0), zero.X())
	assert.Equal(t, uint32(0), zero.Y())

	assert.Equal(t, int32(-1), Vector2i(NewVector2[int32](-1, 2)).X())
	assert.Equal(t, 0.1, Vector2f(NewVector2(0.1, 0.2)).X())
}

func TestVectorFromPoint(t *testing.T) {
	v := NewPoint2(1, 2).ToVector()

	assert.Equal(t, NewVector2(1, 2), v)
}

func TestVectorArithmetic(t *testing.T) {
	assert.Equal(t, NewVector2(4, 6), NewVector2(1, 2).Add(NewVector2(3, 4)))
	assert.Equal(t, NewVector2(4, 3), NewVector2(5, 5).Sub(NewVector2(1, 2)))
	assert.Equal(t, NewVector2(3, 6), NewVector2(1, 2).Mul(3))
	assert.Equal(t, NewVector2(-1, -2), Neg(NewVector2(1, 2)))
	assert.Equal(t, NewVector3(-1.5, 0.0, 2.5), Neg(NewVector3(1.5, 0.0, -2.5)))
}

func TestVectorDiv(t *testing.T) {
	var v Vector2f = NewVector2(1, 2).Div(10)

	assert.InDelta(t, 0.1, v.X(), tolerance)
	assert.InDelta(t, 0.2, v.Y(), tolerance)

	f := NewVector2(1.0, 2.0).Div(10)
	assert.InDelta(t, 0.1, f.X(), tolerance)
	assert.InDelta(t, 0.2, f.Y(), tolerance)
}

func TestVectorDivByZero(t *testing.T) {
	v := NewVector3(1.0, -1.0, 0.0).Div(0)

	assert.True(t, m.IsInf(v.X(), 1))
	assert.True(t, m.IsInf(v.Y(), -1))
	assert.True(t, m.IsNaN(v.Z()))
}

func TestVectorAbs(t *testing.T) {
	assert.Equal(t, NewVector2(1.0, 2.0), Abs(NewVector2(-1.0, -2.0)))
	assert.Equal(t, NewVector2(1, 2), Abs(NewVector2(-1, -2)))
	assert.Equal(t, NewVector2[float32](1, 2), Abs(NewVector2[float32](-1, 2)))
	assert.Equal(t, NewVector3[int8](1, 2, 3), Abs(NewVector3[int8](1, -2, -3)))
}

func TestVectorDot(t *testing.T) {
	assert.Equal(t, 11, NewVector2(1, 2).Dot(NewVector2(3, 4)))
	assert.Equal(t, 11, AbsDot(NewVector2(1, 2), NewVector2(-3, -4)))
	assert.Equal(t, 32.0, NewVector3(1.0, 2.0, 3.0).Dot(NewNormal3(4.0, 5.0, 6.0)))
}

func TestVectorLength(t *testing.T) {
	v2 := NewVector2(1, 2)
	assert.Equal(t, 5.0, v2.LengthSquared())
	assert.Equal(t, m.Sqrt(5.0), v2.Length())

	v3 := NewVector3(1, 2, 3)
	assert.Equal(t, 14.0, v3.LengthSquared())
	assert.Equal(t, m.Sqrt(14.0), v3.Length())
}

func TestVectorLengthSquaredDoesNotOverflow(t *testing.T) {
	v := NewVector2[int32](m.MaxInt32, m.MaxInt32)
	expected := 2 * float64(m.MaxInt32) * float64(m.MaxInt32)

	assert.Equal(t, expected, v.LengthSquared())
}

func TestVectorNormalize(t *testing.T) {
	n := NewVector2(1, 2).Normalize()
	divisor := m.Sqrt(5.0)

	assert.Equal(t, 1.0/divisor, n.X())
	assert.Equal(t, 2.0/divisor, n.Y())
}

func TestVectorNormalizeZero(t *testing.T) {
	n := NewVector3(0.0, 0.0, 0.0).Normalize()
	assert.True(t, m.IsNaN(n.X()))

	withStrictNormalize(t)
	requireViolation(t, core.ErrDegenerateVector, func() {
		NewVector3(0.0, 0.0, 0.0).Normalize()
	})
}

func TestVectorMinMax(t *testing.T) {
	assert.Equal(t, NewVector2(1, 2), NewVector2(1, 9).Min(NewVector2(9, 2)))
	assert.Equal(t, NewVector2(1, 2), NewVector2(1, 0).Max(NewVector2(0, 2)))
}

func TestVectorExtremum(t *testing.T) {
	tests := []struct {
		name   string
		vector Vector3[int]
		minC   int
		maxC   int
		minD   int
		maxD   int
	}{
		{"distinct", NewVector3(2, 1, 3), 1, 3, 1, 2},
		{"all equal", NewVector3(1, 1, 1), 1, 1, 0, 0},
		{"tie on min", NewVector3(3, 1, 1), 1, 3, 1, 0},
		{"tie on max", NewVector3(2, 2, 1), 1, 2, 2, 0},
		{"tie x and z", NewVector3(5, 7, 5), 5, 7, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.minC, tt.vector.MinComponent())
			assert.Equal(t, tt.maxC, tt.vector.MaxComponent())
			assert.Equal(t, tt.minD, tt.vector.MinDimension())
			assert.Equal(t, tt.maxD, tt.vector.MaxDimension())
		})
	}

	v := NewVector2(1, 2)
	assert.Equal(t, 1, v.MinComponent())
	assert.Equal(t, 2, v.MaxComponent())
	assert.Equal(t, 0, v.MinDimension())
	assert.Equal(t, 1, v.MaxDimension())
}

func TestVectorPermute(t *testing.T) {
	v := NewVector2(5, 6)
	assert.Equal(t, NewVector2(5, 6), v.Permute(0, 1))
	assert.Equal(t, NewVector2(6, 5), v.Permute(1, 0))

	w := NewVector3(1, 2, 3)
	assert.Equal(t, NewVector3(3, 1, 2), w.Permute(2, 0, 1))
	assert.Equal(t, NewVector3(1, 1, 1), w.Permute(0, 0, 0))

	requireViolation(t, core.ErrIndexOutOfRange, func() { w.Permute(0, 1, 3) })
	requireViolation(t, core.ErrIndexOutOfRange, func() { v.Permute(-1, 0) })
	requireViolation(t, core.ErrComponentCount, func() { w.Permute(0, 1) })
}

func TestVectorCross(t *testing.T) {
	assert.Equal(t, NewVector3(-1.0, -4.0, 3.0), Cross(NewVector3(1, 2, 3), NewVector3(1, 5, 7)))
	assert.Equal(t, NewVector3(0.0, 0.0, 1.0), Cross(NewVector3(1.0, 0.0, 0.0), NewVector3(0.0, 1.0, 0.0)))
}

func TestVectorAddSubRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for range 100 {
		a := NewVector3(rng.Intn(2000)-1000, rng.Intn(2000)-1000, rng.Intn(2000)-1000)
		b := NewVector3(rng.Intn(2000)-1000, rng.Intn(2000)-1000, rng.Intn(2000)-1000)
		assert.Equal(t, a, a.Add(b).Sub(b))

		fa := NewVector3(rng.Float64(), rng.Float64(), rng.Float64())
		fb := NewVector3(rng.Float64(), rng.Float64(), rng.Float64())
		assert.True(t, fa.Compare(fa.Add(fb).Sub(fb), tolerance))
	}
}

func TestVectorLengthProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 100 {
		v := NewVector3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		l := v.Length()
		assert.InDelta(t, v.LengthSquared(), l*l, tolerance)
		assert.InDelta(t, 1.0, v.Normalize().Length(), tolerance)
	}
}

func TestConvertVector(t *testing.T) {
	v := ConvertVector[float64](NewVector3[int32](1, -2, 3))
	assert.Equal(t, NewVector3(1.0, -2.0, 3.0), v)

	i := ConvertVector[int32](NewVector2(1.9, -1.9))
	assert.Equal(t, NewVector2[int32](1, -1), i)
}
