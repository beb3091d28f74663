package sphere

import "github.com/go-gl/mathgl/mgl32"

// Real is the scalar used by the whole pipeline.
type Real = float32

// Point3 is a point in object or camera space.
type Point3 = mgl32.Vec3

// Sample is a camera-space point tagged with the character of the ring it came from.
type Sample struct {
	P    Point3
	Char byte
}
