package component

import "time"

// Bullet is a ballistic projectile, it keeps no reference to the ship that fired it
type Bullet struct {
	Kinetic
	TimeToLive time.Duration // Remaining lifetime, only enforced when expiry is enabled
}
