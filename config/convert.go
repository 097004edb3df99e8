package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/rocks-and-bullets/component"
	"github.com/lixenwraith/rocks-and-bullets/core"
	"github.com/lixenwraith/rocks-and-bullets/engine"
	"github.com/lixenwraith/rocks-and-bullets/parameter"
	"github.com/lixenwraith/rocks-and-bullets/system"
	"github.com/lixenwraith/rocks-and-bullets/vmath"
)

// DT is the fixed simulation step
func (c *Config) DT() time.Duration {
	return parameter.TickInterval(c.Engine.TickRate)
}

// ArenaBounds derives the arena from the camera frustum
func (c *Config) ArenaBounds() (engine.Arena, error) {
	return engine.NewArenaFromFrustum(c.Arena.FOV, c.Arena.Aspect, c.Arena.CameraDistance)
}

// ShipConfig returns the handling shared by all ships, gun_offset must already be validated
func (c *Config) ShipConfig() component.ShipConfig {
	var gun vmath.Vec3
	copy(gun[:], c.Ship.GunOffset)
	return component.ShipConfig{
		Acceleration: c.Ship.Acceleration,
		RotationRate: c.Ship.RotationRate,
		Cooldown:     c.Ship.Cooldown,
		GunOffset:    gun,
	}
}

// Ships builds one ship per player at its spawn point
func (c *Config) Ships() []component.Ship {
	cfg := c.ShipConfig()
	ships := make([]component.Ship, 0, len(parameter.ShipSpawns))
	for i, sp := range parameter.ShipSpawns {
		ships = append(ships, component.NewShip(core.PlayerID(i), sp.Position, sp.RotationZ, sp.Color, cfg))
	}
	return ships
}

// SimulationConfig returns the step configuration
func (c *Config) SimulationConfig() engine.SimulationConfig {
	return engine.SimulationConfig{
		DT: c.DT(),
		Weapons: system.WeaponSystem{
			MuzzleVelocity: c.Weapon.MuzzleVelocity,
			BulletTTL:      c.Bullet.TTL,
		},
		Bullets: system.BulletSystem{
			Expiry:     c.Engine.BulletExpiry,
			MaxBullets: c.Engine.MaxBullets,
		},
		FullWrap: c.Engine.FullWrap,
	}
}

// NewSimulation builds the world and its simulation
func (c *Config) NewSimulation() (*engine.Simulation, error) {
	arena, err := c.ArenaBounds()
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	world, err := engine.NewWorld(arena, c.Ships())
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	return engine.NewSimulation(world, c.SimulationConfig())
}
