package parameter

import "time"

// Bullets
const (
	// MuzzleVelocity is added along the ship facing on top of the inherited ship velocity, units per tick
	MuzzleVelocity = 0.05

	// BulletTTL is the lifetime of a bullet when expiry is enabled
	BulletTTL = 10 * time.Second
)
