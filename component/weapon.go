package component

import "time"

// WeaponState is derived from the remaining cooldown, it is never stored
type WeaponState uint8

const (
	WeaponReady WeaponState = iota
	WeaponReloading
)

func (s WeaponState) String() string {
	switch s {
	case WeaponReady:
		return "ready"
	case WeaponReloading:
		return "reloading"
	default:
		return "unknown"
	}
}

// Weapon tracks the fire cooldown of a ship's gun
// CooldownRemaining is not clamped and may go negative, firing is allowed at <= 0
type Weapon struct {
	Cooldown          time.Duration
	CooldownRemaining time.Duration
}

// State reports READY when the cooldown has run out
func (w Weapon) State() WeaponState {
	if w.CooldownRemaining <= 0 {
		return WeaponReady
	}
	return WeaponReloading
}

// Ready reports whether the weapon may fire this tick
func (w Weapon) Ready() bool {
	return w.State() == WeaponReady
}
