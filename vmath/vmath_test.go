package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-12

func TestRotateZ_QuarterTurns(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want Vec3
	}{
		{"zero", 0, Vec3{0, 1, 0}},
		{"left", 90, Vec3{-1, 0, 0}},
		{"back", 180, Vec3{0, -1, 0}},
		{"right", -90, Vec3{1, 0, 0}},
		{"full", 360, Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateZ(Forward, tt.deg)
			assert.True(t, V3ApproxEqual(got, tt.want, eps), "got %v want %v", got, tt.want)
		})
	}
}

func TestRotateZ_KeepsZ(t *testing.T) {
	got := RotateZ(Vec3{1, 2, 3}, 37)
	assert.InDelta(t, 3.0, got.Z(), eps)
	assert.InDelta(t, math.Hypot(1, 2), math.Hypot(got.X(), got.Y()), eps)
}

func TestFacingZ_MatchesRotateZ(t *testing.T) {
	for _, deg := range []float64{-720, -135, -1.5, 0, 12.25, 90, 270, 1000} {
		want := RotateZ(Forward, deg)
		got := FacingZ(deg, 0)
		assert.True(t, V3ApproxEqual(got, want, 1e-9), "deg=%v got %v want %v", deg, got, want)
	}
	assert.Equal(t, 4.0, FacingZ(33, 4).Z())
}

func TestToLocal_RoundTrip(t *testing.T) {
	local := Vec3{0.25, 1.01, 0}
	origin := Vec3{-10, 3.5, 0}
	deg := 123.4

	world := RotateZ(local, deg).Add(origin)
	back := ToLocal(world, origin, deg)

	assert.True(t, V3ApproxEqual(back, local, 1e-9), "got %v want %v", back, local)
}

func TestV3AddXY(t *testing.T) {
	got := V3AddXY(Vec3{1, 2, 3}, Vec3{10, 20, 30})
	assert.Equal(t, Vec3{11, 22, 3}, got)
}

func TestV3IsFinite(t *testing.T) {
	assert.True(t, V3IsFinite(Vec3{1, -2, 0}))
	assert.False(t, V3IsFinite(Vec3{math.NaN(), 0, 0}))
	assert.False(t, V3IsFinite(Vec3{0, math.Inf(1), 0}))
}
