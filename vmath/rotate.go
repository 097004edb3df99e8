package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotateZ rotates v counter-clockwise by deg degrees around the world Z axis
// Z passes through unchanged
func RotateZ(v Vec3, deg float64) Vec3 {
	return mgl64.Rotate3DZ(mgl64.DegToRad(deg)).Mul3x1(v)
}

// FacingZ returns the planar forward direction for a Z rotation of deg degrees
// Matches RotateZ(Forward, deg) but is computed directly from the angle, z is carried over
func FacingZ(deg, z float64) Vec3 {
	rad := mgl64.DegToRad(deg)
	return Vec3{-math.Sin(rad), math.Cos(rad), z}
}

// ToLocal converts a world point into the frame of an object at origin rotated by deg
// Inverse of translating by origin after RotateZ
func ToLocal(p, origin Vec3, deg float64) Vec3 {
	return RotateZ(p.Sub(origin), -deg)
}
