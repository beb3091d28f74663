package sphere

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rotEps = 1e-5

func assertVecNear(t *testing.T, want, got Point3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], rotEps, msgAndArgs...)
}

func assertMatNear(t *testing.T, want, got mgl32.Mat3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], rotEps, msgAndArgs...)
}

func TestRotateZeroIsIdentity(t *testing.T) {
	for _, p := range []Point3{{1, 2, 3}, {-10, 0, 0}, {0.25, -7, 4.5}} {
		got := Rotate(p, Rot3{})
		assertVecNear(t, p, got)
	}
	assertMatNear(t, mgl32.Ident3(), Rot3{}.Matrix())
}

func TestRotateMatchesComposedAxisRotations(t *testing.T) {
	r := Rot3{Pitch: math.Pi / 6, Yaw: math.Pi / 7, Roll: math.Pi / 5}
	want := mgl32.Rotate3DZ(r.Roll).Mul3(mgl32.Rotate3DY(r.Yaw)).Mul3(mgl32.Rotate3DX(r.Pitch))
	assertMatNear(t, want, r.Matrix())
}

func TestRotateRoundTrip(t *testing.T) {
	r := Rot3{Pitch: 0.7, Yaw: -1.3, Roll: 2.1}
	p := Point3{3, -4, 5}
	q := Rotate(p, r)

	// undo in reverse order: roll, then yaw, then pitch
	back := Rotate(q, Rot3{Roll: -r.Roll})
	back = Rotate(back, Rot3{Yaw: -r.Yaw})
	back = Rotate(back, Rot3{Pitch: -r.Pitch})
	assertVecNear(t, p, back, "round trip")

	inv := r.Inverse().Mul3x1(q)
	assertVecNear(t, p, inv, "inverse")
}

func TestRotateIsOrthonormal(t *testing.T) {
	R := Rot3{Pitch: 0.3, Yaw: 1.1, Roll: -0.8}.Matrix()
	P := R.Transpose().Mul3(R)
	assertMatNear(t, mgl32.Ident3(), P, "R^T R != I")

	p := Point3{1, 2, 2}
	require.InDelta(t, 3, Rotate(p, Rot3{Pitch: 0.3, Yaw: 1.1, Roll: -0.8}).Len(), rotEps)
}

func TestAxisRotations(t *testing.T) {
	// 90° yaw takes +x to -z
	o := Rotate(Point3{1, 0, 0}, Rot3{Yaw: math.Pi / 2})
	assertVecNear(t, Point3{0, 0, -1}, o, "yaw")
	// 90° pitch takes +y to +z
	o = Rotate(Point3{0, 1, 0}, Rot3{Pitch: math.Pi / 2})
	assertVecNear(t, Point3{0, 0, 1}, o, "pitch")
	// 90° roll takes +x to +y
	o = Rotate(Point3{1, 0, 0}, Rot3{Roll: math.Pi / 2})
	assertVecNear(t, Point3{0, 1, 0}, o, "roll")
}

func TestRot3Add(t *testing.T) {
	r := Rot3{}.Add(Rot3{Pitch: PitchDelta, Yaw: YawDelta, Roll: RollDelta})
	assert.Equal(t, Rot3{Pitch: PitchDelta, Yaw: YawDelta, Roll: RollDelta}, r)
	r = Rot3{Yaw: 6.28}.Add(Rot3{Yaw: 0.01})
	assert.InDelta(t, 0.01-(twoPi-6.28), r.Yaw, 1e-5)
}
