package component

import (
	"time"

	"github.com/lixenwraith/rocks-and-bullets/core"
	"github.com/lixenwraith/rocks-and-bullets/vmath"
)

// Ship is a player-controlled craft
// Facing is the world-space forward direction, recomputed from RotationZ once per tick
type Ship struct {
	Kinetic
	Weapon

	Player    core.PlayerID
	Facing    vmath.Vec3
	RotationZ float64 // Degrees around world Z, counter-clockwise, not normalized

	Color        vmath.Vec3
	Acceleration float64    // Units per second squared
	RotationRate float64    // Degrees per second
	GunOffset    vmath.Vec3 // Bullet spawn point in ship-local space
}

// ShipConfig carries the handling values shared by all ships
type ShipConfig struct {
	Acceleration float64
	RotationRate float64
	Cooldown     time.Duration
	GunOffset    vmath.Vec3
}

// NewShip creates a ship at rest with its weapon reloading for one full cooldown
func NewShip(player core.PlayerID, pos vmath.Vec3, rotationZ float64, color vmath.Vec3, cfg ShipConfig) Ship {
	return Ship{
		Kinetic:      Kinetic{Position: pos},
		Weapon:       Weapon{Cooldown: cfg.Cooldown, CooldownRemaining: cfg.Cooldown},
		Player:       player,
		Facing:       vmath.FacingZ(rotationZ, 0),
		RotationZ:    rotationZ,
		Color:        color,
		Acceleration: cfg.Acceleration,
		RotationRate: cfg.RotationRate,
		GunOffset:    cfg.GunOffset,
	}
}
