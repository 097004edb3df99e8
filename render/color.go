package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocks-and-bullets/vmath"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors, channels follow the unit-range colors of the simulation
var (
	RGBBackground = RGBFromVec(vmath.Vec3{0, 0.01, 0.03})
	RGBArena      = RGBFromVec(vmath.Vec3{1, 0.5, 0})
	RGBBullet     = RGBFromVec(vmath.Vec3{1, 1, 1})
)

// RGBFromVec converts a unit-range color vector, channels outside [0,1] are clamped
func RGBFromVec(c vmath.Vec3) RGB {
	return RGB{R: channel(c[0]), G: channel(c[1]), B: channel(c[2])}
}

func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// ColorMode selects how RGB colors reach the terminal
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota
	ColorMode256
)

// ParseColorMode accepts auto, truecolor (true, 24bit) and 256
// auto picks 256 when the screen reports fewer colors
func ParseColorMode(s string, screenColors int) (ColorMode, error) {
	switch s {
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	case "auto", "":
		if screenColors > 256 {
			return ColorModeTrueColor, nil
		}
		return ColorMode256, nil
	default:
		return 0, fmt.Errorf("unknown color mode %q", s)
	}
}

var palette256 = func() []tcell.Color {
	p := make([]tcell.Color, 256)
	for i := range p {
		p[i] = tcell.PaletteColor(i)
	}
	return p
}()

// Color converts to a tcell color for the mode
func (c RGB) Color(mode ColorMode) tcell.Color {
	rgb := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	if mode == ColorMode256 {
		return tcell.FindColor(rgb, palette256)
	}
	return rgb
}
