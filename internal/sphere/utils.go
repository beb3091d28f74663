package sphere

import "github.com/chewxy/math32"

const twoPi = 2 * math32.Pi

func isFinite(x Real) bool { return !math32.IsInf(x, 0) && !math32.IsNaN(x) }

// wrapAngle maps a into [0, 2π).
func wrapAngle(a Real) Real {
	a = math32.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
