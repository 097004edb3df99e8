package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/rocks-and-bullets/vmath"
)

// ErrDegenerateArena rejects arenas that cannot be wrapped around
var ErrDegenerateArena = errors.New("arena must have a positive finite size")

// Arena is the toroidal play area, an axis-aligned rectangle on the XY plane
type Arena struct {
	OriginX, OriginY float64
	Width, Height    float64
}

// NewArena validates and returns an arena
func NewArena(originX, originY, width, height float64) (Arena, error) {
	a := Arena{OriginX: originX, OriginY: originY, Width: width, Height: height}
	if err := a.Validate(); err != nil {
		return Arena{}, err
	}
	return a, nil
}

// NewArenaFromFrustum sizes the arena to what a camera at distance sees on the play plane
// fovDeg is the vertical field of view, aspect is width over height
func NewArenaFromFrustum(fovDeg, aspect, distance float64) (Arena, error) {
	halfH := math.Abs(distance) * math.Tan(fovDeg*math.Pi/360)
	halfW := halfH * aspect
	return NewArena(-halfW, -halfH, 2*halfW, 2*halfH)
}

// Validate reports ErrDegenerateArena for zero, negative or non-finite bounds
func (a Arena) Validate() error {
	for _, v := range []float64{a.OriginX, a.OriginY, a.Width, a.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %+v", ErrDegenerateArena, a)
		}
	}
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrDegenerateArena, a.Width, a.Height)
	}
	return nil
}

// MaxX is the right edge
func (a Arena) MaxX() float64 { return a.OriginX + a.Width }

// MaxY is the top edge
func (a Arena) MaxY() float64 { return a.OriginY + a.Height }

// Contains reports whether p lies inside the bounds, edges included
func (a Arena) Contains(p vmath.Vec3) bool {
	return p.X() >= a.OriginX && p.X() <= a.MaxX() && p.Y() >= a.OriginY && p.Y() <= a.MaxY()
}

// Wrap moves p by one arena size on each axis it left through
// Single step: a point more than one size outside stays outside
func (a Arena) Wrap(p vmath.Vec3) vmath.Vec3 {
	if p[0] < a.OriginX {
		p[0] += a.Width
	} else if p[0] > a.MaxX() {
		p[0] -= a.Width
	}
	if p[1] < a.OriginY {
		p[1] += a.Height
	} else if p[1] > a.MaxY() {
		p[1] -= a.Height
	}
	return p
}

// WrapFull folds p into the bounds however far outside it is
func (a Arena) WrapFull(p vmath.Vec3) vmath.Vec3 {
	if p[0] < a.OriginX || p[0] > a.MaxX() {
		p[0] = a.OriginX + floorMod(p[0]-a.OriginX, a.Width)
	}
	if p[1] < a.OriginY || p[1] > a.MaxY() {
		p[1] = a.OriginY + floorMod(p[1]-a.OriginY, a.Height)
	}
	return p
}

// Corners returns the bounds in counter-clockwise order starting bottom-left
func (a Arena) Corners() [4]vmath.Vec3 {
	return [4]vmath.Vec3{
		{a.OriginX, a.OriginY, 0},
		{a.MaxX(), a.OriginY, 0},
		{a.MaxX(), a.MaxY(), 0},
		{a.OriginX, a.MaxY(), 0},
	}
}

func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// fullWrapper adapts WrapFull to system.Wrapper
type fullWrapper struct{ Arena }

func (w fullWrapper) Wrap(p vmath.Vec3) vmath.Vec3 { return w.WrapFull(p) }
