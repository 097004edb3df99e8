package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the float64 3D vector shared by all simulated entities
// Array-backed, so assignment copies and there is no aliasing between entities
type Vec3 = mgl64.Vec3

// Forward is the ship-local forward axis, the facing at zero rotation
var Forward = Vec3{0, 1, 0}

// V3AddXY adds the planar components of d to v, leaving Z untouched
func V3AddXY(v, d Vec3) Vec3 {
	return Vec3{v[0] + d[0], v[1] + d[1], v[2]}
}

// V3ApproxEqual reports whether every component of a and b differs by at most eps
// Absolute tolerance, mgl64's relative comparison is too strict around zero
func V3ApproxEqual(a, b Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// V3IsFinite reports whether no component is NaN or infinite
func V3IsFinite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
