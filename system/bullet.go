package system

import (
	"time"

	"github.com/lixenwraith/rocks-and-bullets/component"
)

// BulletSystem integrates bullets and enforces their lifetime
type BulletSystem struct {
	Expiry     bool // Enforce TimeToLive, false keeps bullets forever
	MaxBullets int  // Drop the oldest bullets beyond this count, 0 disables
}

// MoveBullets integrates every bullet by one tick, bullets never wrap
func MoveBullets(bullets []component.Bullet) {
	for i := range bullets {
		bullets[i].Position = bullets[i].Position.Add(bullets[i].Velocity)
	}
}

// Age counts lifetimes down and removes expired bullets in place, preserving order
func (s BulletSystem) Age(bullets []component.Bullet, dt time.Duration) ([]component.Bullet, int) {
	if !s.Expiry {
		return bullets, 0
	}

	kept := bullets[:0]
	for _, b := range bullets {
		b.TimeToLive -= dt
		if b.TimeToLive > 0 {
			kept = append(kept, b)
		}
	}
	expired := len(bullets) - len(kept)
	clear(bullets[len(kept):])
	return kept, expired
}

// Cap drops the oldest bullets when the collection exceeds MaxBullets
func (s BulletSystem) Cap(bullets []component.Bullet) ([]component.Bullet, int) {
	if s.MaxBullets <= 0 || len(bullets) <= s.MaxBullets {
		return bullets, 0
	}

	dropped := len(bullets) - s.MaxBullets
	n := copy(bullets, bullets[dropped:])
	clear(bullets[n:])
	return bullets[:n], dropped
}

// Update moves all bullets, then applies expiry and the cap
// Returns the surviving bullets and how many were removed
func (s BulletSystem) Update(bullets []component.Bullet, dt time.Duration) ([]component.Bullet, int) {
	MoveBullets(bullets)

	bullets, expired := s.Age(bullets, dt)
	bullets, dropped := s.Cap(bullets)
	return bullets, expired + dropped
}
