package system

import (
	"time"

	"github.com/lixenwraith/rocks-and-bullets/component"
	"github.com/lixenwraith/rocks-and-bullets/core"
	"github.com/lixenwraith/rocks-and-bullets/vmath"
)

const testDT = time.Second / 60

// noWrap leaves positions untouched so integration can be checked in isolation
type noWrap struct{}

func (noWrap) Wrap(p vmath.Vec3) vmath.Vec3 { return p }

func newTestShip() component.Ship {
	return component.NewShip(core.Player1, vmath.Vec3{}, 0, vmath.Vec3{0, 1, 1}, component.ShipConfig{
		Acceleration: 0.1,
		RotationRate: 90,
		Cooldown:     200 * time.Millisecond,
		GunOffset:    vmath.Vec3{0, 1.01, 0},
	})
}
