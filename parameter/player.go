package parameter

import (
	"time"

	"github.com/lixenwraith/rocks-and-bullets/vmath"
)

// Ship handling
const (
	// ShipAcceleration is thrust acceleration in units per second squared
	ShipAcceleration = 0.1

	// ShipRotationRate is turn rate in degrees per second
	ShipRotationRate = 90.0

	// ShipCooldown is the minimum time between two shots
	ShipCooldown = 200 * time.Millisecond
)

// ShipGunOffset is where bullets leave the ship, in ship-local space, just ahead of the nose
var ShipGunOffset = vmath.Vec3{0, 1.01, 0}

// ShipSpawn describes the fixed start state of one player's ship
type ShipSpawn struct {
	Position  vmath.Vec3
	RotationZ float64
	Color     vmath.Vec3
}

// ShipSpawns lists start states in player order
var ShipSpawns = []ShipSpawn{
	{Position: vmath.Vec3{-10, 0, 0}, Color: vmath.Vec3{0, 1, 1}},
	{Position: vmath.Vec3{10, 0, 0}, Color: vmath.Vec3{0, 1, 0.5}},
}

// Key bindings, see input.ParseBindings for accepted names
var (
	Player1Keys = map[string]string{"thrust": "w", "turn_left": "a", "turn_right": "d", "fire": "s"}
	Player2Keys = map[string]string{"thrust": "i", "turn_left": "j", "turn_right": "l", "fire": "k"}
	QuitKeys    = []string{"esc", "ctrl+c"}
)

// KeyHold is how long a terminal key press counts as held without a repeat
// Long enough to bridge the usual auto-repeat start delay
const KeyHold = 250 * time.Millisecond
