package system

import (
	"time"

	"github.com/lixenwraith/rocks-and-bullets/component"
	"github.com/lixenwraith/rocks-and-bullets/vmath"
)

// Wrapper folds a position that left an area back into it
type Wrapper interface {
	Wrap(p vmath.Vec3) vmath.Vec3
}

// SteerShip applies thrust and turning for one tick
// Thrust accelerates along the facing computed at the end of the previous tick
// Turns are summed before they are applied so that holding both cancels exactly
func SteerShip(s *component.Ship, cmd component.Command, dt time.Duration) {
	sec := dt.Seconds()

	if cmd.Thrust {
		s.Velocity = s.Velocity.Add(s.Facing.Mul(s.Acceleration * sec))
	}

	var turn float64
	if cmd.TurnLeft {
		turn += s.RotationRate * sec
	}
	if cmd.TurnRight {
		turn -= s.RotationRate * sec
	}
	s.RotationZ += turn
}

// MoveShip integrates position by one tick, velocity already carries the per-tick scale
func MoveShip(s *component.Ship) {
	s.Position = s.Position.Add(s.Velocity)
}

// RefreshFacing recomputes the forward direction from the authoritative rotation
func RefreshFacing(s *component.Ship) {
	s.Facing = vmath.FacingZ(s.RotationZ, s.Facing.Z())
}

// DecayCooldown counts the weapon cooldown down while it is positive
func DecayCooldown(s *component.Ship, dt time.Duration) {
	if s.CooldownRemaining > 0 {
		s.CooldownRemaining -= dt
	}
}

// UpdateShip runs the per-tick integration phase for one ship: move, wrap, facing, cooldown
func UpdateShip(s *component.Ship, w Wrapper, dt time.Duration) {
	MoveShip(s)
	s.Position = w.Wrap(s.Position)
	RefreshFacing(s)
	DecayCooldown(s, dt)
}
