package component

import "github.com/lixenwraith/rocks-and-bullets/vmath"

// Kinetic is the motion record shared by ships and bullets
// Velocity is in units per tick: it is added to Position once per tick without dt
type Kinetic struct {
	Position vmath.Vec3
	Velocity vmath.Vec3
}
