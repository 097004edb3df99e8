package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/rocks-and-bullets/input"
)

var colorModes = map[string]bool{"auto": true, "truecolor": true, "true": true, "24bit": true, "256": true}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate reports every invalid value at once
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Engine.TickRate <= 0 {
		add("engine.tick_rate must be positive, got %d", c.Engine.TickRate)
	}
	if c.Engine.MaxBullets < 0 {
		add("engine.max_bullets must not be negative, got %d", c.Engine.MaxBullets)
	}

	if !finite(c.Arena.FOV) || c.Arena.FOV <= 0 || c.Arena.FOV >= 180 {
		add("arena.fov must be within (0, 180) degrees, got %g", c.Arena.FOV)
	}
	if !finite(c.Arena.Aspect) || c.Arena.Aspect <= 0 {
		add("arena.aspect must be positive, got %g", c.Arena.Aspect)
	}
	if !finite(c.Arena.CameraDistance) || c.Arena.CameraDistance == 0 {
		add("arena.camera_distance must be non-zero, got %g", c.Arena.CameraDistance)
	}

	if !finite(c.Ship.Acceleration) {
		add("ship.acceleration must be finite")
	}
	if !finite(c.Ship.RotationRate) {
		add("ship.rotation_rate must be finite")
	}
	if c.Ship.Cooldown < 0 {
		add("ship.cooldown must not be negative, got %s", c.Ship.Cooldown)
	}
	if len(c.Ship.GunOffset) != 3 {
		add("ship.gun_offset needs 3 components, got %d", len(c.Ship.GunOffset))
	} else {
		for _, v := range c.Ship.GunOffset {
			if !finite(v) {
				add("ship.gun_offset must be finite")
				break
			}
		}
	}

	if !finite(c.Weapon.MuzzleVelocity) {
		add("weapon.muzzle_velocity must be finite")
	}
	if c.Engine.BulletExpiry && c.Bullet.TTL <= 0 {
		add("bullet.ttl must be positive when expiry is enabled, got %s", c.Bullet.TTL)
	}

	if c.Input.Hold <= 0 {
		add("input.hold must be positive, got %s", c.Input.Hold)
	}
	if _, err := c.Bindings(); err != nil {
		add("input: %w", err)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		add("log.level: %w", err)
	}
	if c.Log.Enabled && c.Log.Dir == "" {
		add("log.dir must be set when logging is enabled")
	}
	if c.Metrics.Enabled && c.Metrics.Interval <= 0 {
		add("metrics.interval must be positive, got %s", c.Metrics.Interval)
	}
	if !colorModes[c.Render.Color] {
		add("render.color must be auto, truecolor or 256, got %q", c.Render.Color)
	}

	return errors.Join(errs...)
}

// Bindings parses the key bindings of both players
func (c *Config) Bindings() (*input.Bindings, error) {
	return input.ParseBindings([]map[string]string{c.Input.Player1, c.Input.Player2}, c.Input.Quit)
}
