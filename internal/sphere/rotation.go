package sphere

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Rot3 holds rotation angles in radians: Pitch about x, Yaw about y, Roll about z.
type Rot3 struct {
	Pitch, Yaw, Roll Real
}

// Matrix returns the fused rotation Rz(roll)·Ry(yaw)·Rx(pitch).
func (r Rot3) Matrix() mgl32.Mat3 {
	sa, ca := math32.Sincos(r.Pitch)
	sb, cb := math32.Sincos(r.Yaw)
	sg, cg := math32.Sincos(r.Roll)
	return mgl32.Mat3FromRows(
		mgl32.Vec3{cg * cb, cg*sb*sa - sg*ca, sg*sa + cg*sb*ca},
		mgl32.Vec3{sg * cb, cg*ca + sg*sb*sa, sg*sb*ca - cg*sa},
		mgl32.Vec3{-sb, cb * sa, cb * ca},
	)
}

// Inverse undoes Matrix: Rx(-pitch)·Ry(-yaw)·Rz(-roll), i.e. the transpose.
func (r Rot3) Inverse() mgl32.Mat3 {
	return r.Matrix().Transpose()
}

// Add returns the component-wise sum, wrapped into [0, 2π).
func (r Rot3) Add(d Rot3) Rot3 {
	return Rot3{
		Pitch: wrapAngle(r.Pitch + d.Pitch),
		Yaw:   wrapAngle(r.Yaw + d.Yaw),
		Roll:  wrapAngle(r.Roll + d.Roll),
	}
}

// Rotate applies r to p. Hot loops should build r.Matrix() once and reuse it.
func Rotate(p Point3, r Rot3) Point3 {
	return r.Matrix().Mul3x1(p)
}
