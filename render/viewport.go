package render

import (
	"math"

	"github.com/lixenwraith/rocks-and-bullets/engine"
	"github.com/lixenwraith/rocks-and-bullets/vmath"
)

// Viewport maps arena coordinates onto a cell grid framed by a one-cell border
// World Y grows up, screen rows grow down
type Viewport struct {
	arena      engine.Arena
	cols, rows int
}

// NewViewport fits the arena into a cols x rows screen
func NewViewport(a engine.Arena, cols, rows int) Viewport {
	return Viewport{arena: a, cols: cols, rows: rows}
}

// Usable reports whether there is at least one interior cell
func (v Viewport) Usable() bool {
	return v.cols >= 3 && v.rows >= 3
}

// ToCell returns the interior cell for p, ok is false outside the arena
func (v Viewport) ToCell(p vmath.Vec3) (x, y int, ok bool) {
	if !v.Usable() {
		return 0, 0, false
	}

	fx := (p.X() - v.arena.OriginX) / v.arena.Width
	fy := (p.Y() - v.arena.OriginY) / v.arena.Height
	if !(fx >= 0 && fx <= 1 && fy >= 0 && fy <= 1) {
		return 0, 0, false
	}

	innerW := v.cols - 2
	innerH := v.rows - 2
	cx := min(int(math.Floor(fx*float64(innerW))), innerW-1)
	cy := min(int(math.Floor(fy*float64(innerH))), innerH-1)

	return 1 + cx, 1 + (innerH - 1 - cy), true
}
