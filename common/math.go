package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the speed below which a direction is treated as undefined.
const Epsilon = 1e-3

// SafeNormalize returns the unit vector of v, or false when v is too short to
// carry a direction.
func SafeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < Epsilon || math.IsNaN(l) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// HorizontalSpeed is the speed in the x/z plane.
func HorizontalSpeed(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}

// Floor returns the integer cell that contains x.
func Floor(x float64) int {
	return int(math.Floor(x))
}
