package system

import (
	"time"

	"github.com/lixenwraith/rocks-and-bullets/component"
	"github.com/lixenwraith/rocks-and-bullets/vmath"
)

// WeaponSystem spawns bullets from ship guns
type WeaponSystem struct {
	MuzzleVelocity float64       // Units per tick along the ship facing
	BulletTTL      time.Duration // Lifetime given to new bullets
}

// SpawnBullet builds the bullet a ship would fire now, without touching the cooldown
// The gun offset is rotated into world orientation with the current rotation, then moved to the ship
// Muzzle velocity is added on the plane only, on top of the inherited ship velocity
func (w WeaponSystem) SpawnBullet(s *component.Ship) component.Bullet {
	pos := vmath.RotateZ(s.GunOffset, s.RotationZ).Add(s.Position)
	vel := vmath.V3AddXY(s.Velocity, s.Facing.Mul(w.MuzzleVelocity))

	return component.Bullet{
		Kinetic:    component.Kinetic{Position: pos, Velocity: vel},
		TimeToLive: w.BulletTTL,
	}
}

// Fire spawns a bullet if the weapon is ready and puts it back into reload
// The cooldown is added rather than reset so an overdrawn cooldown carries over
func (w WeaponSystem) Fire(s *component.Ship) (component.Bullet, bool) {
	if !s.Ready() {
		return component.Bullet{}, false
	}

	b := w.SpawnBullet(s)
	s.CooldownRemaining += s.Cooldown
	return b, true
}
