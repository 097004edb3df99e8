package render

import "math"

// Ship glyphs by heading sector, counter-clockwise from up
var shipGlyphs = [8]rune{'▲', '◤', '◀', '◣', '▼', '◢', '▶', '◥'}

const (
	bulletGlyph = '·'

	borderHorizontal  = '─'
	borderVertical    = '│'
	borderTopLeft     = '┌'
	borderTopRight    = '┐'
	borderBottomLeft  = '└'
	borderBottomRight = '┘'
)

// ShipGlyph picks the glyph closest to a Z rotation in degrees
func ShipGlyph(rotationZ float64) rune {
	deg := math.Mod(rotationZ, 360)
	if deg < 0 {
		deg += 360
	}
	sector := int(math.Floor((deg+22.5)/45)) % len(shipGlyphs)
	return shipGlyphs[sector]
}
