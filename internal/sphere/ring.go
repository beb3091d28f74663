package sphere

import (
	"iter"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ring is a circle of the sphere's radius, tilted about the y axis.
type Ring struct {
	TiltDeg Real
	Char    byte
}

// DefaultRings returns the four latitude rings forming the sphere silhouette.
func DefaultRings() []Ring {
	return []Ring{
		{TiltDeg: 0, Char: '@'},
		{TiltDeg: 45, Char: '$'},
		{TiltDeg: 90, Char: '*'},
		{TiltDeg: 135, Char: '!'},
	}
}

// Tilt returns the sphere-local rotation of the ring.
func (r Ring) Tilt() Rot3 {
	return Rot3{Yaw: mgl32.DegToRad(r.TiltDeg)}
}

// Samples yields the ring's points in camera orientation: each point on the
// circle x²+y²=radius² (z=0) is tilted into sphere-local space and then
// rotated by angles. x runs over [-radius, radius] inclusive.
func (r Ring) Samples(radius, step Real, angles Rot3) iter.Seq[Sample] {
	n := int(math32.Round(2 * radius / step))
	if n < 1 {
		n = 1
	}
	tilt, live := r.Tilt().Matrix(), angles.Matrix()
	place := func(x, y Real) Point3 {
		return live.Mul3x1(tilt.Mul3x1(Point3{x, y, 0}))
	}
	rr := radius * radius
	return func(yield func(Sample) bool) {
		for i := 0; i <= n; i++ {
			x := -radius + 2*radius*Real(i)/Real(n)
			y := math32.Sqrt(max(0, rr-x*x))
			if !yield(Sample{P: place(x, y), Char: r.Char}) {
				return
			}
			if y == 0 {
				continue
			}
			if !yield(Sample{P: place(x, -y), Char: r.Char}) {
				return
			}
		}
	}
}

// Sphere yields the samples of all rings in order.
func Sphere(rings []Ring, radius, step Real, angles Rot3) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		for _, r := range rings {
			for s := range r.Samples(radius, step, angles) {
				if !yield(s) {
					return
				}
			}
		}
	}
}
