package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the simulation rate in ticks per second, dt = time.Second / TickRate
	TickRate = 60

	// BulletExpiry enables time-to-live expiry of bullets, false keeps every bullet forever
	BulletExpiry = true

	// MaxBullets caps the live bullet collection, 0 disables the cap
	MaxBullets = 0

	// FullWrap replaces the single-step arena wrap with a modulo wrap
	FullWrap = false
)

// TickInterval returns the fixed simulation step for a tick rate
func TickInterval(rate int) time.Duration {
	return time.Second / time.Duration(rate)
}
