package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocks-and-bullets/engine"
)

// Screen is the drawing surface, satisfied by tcell.Screen
type Screen interface {
	Size() (width, height int)
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// TerminalRenderer draws frames as glyphs: arena border, bullets, then ships on top
type TerminalRenderer struct {
	screen Screen
	mode   ColorMode

	base   tcell.Style
	border tcell.Style
	bullet tcell.Style
}

// NewTerminalRenderer creates a renderer drawing onto screen
func NewTerminalRenderer(screen Screen, mode ColorMode) *TerminalRenderer {
	base := tcell.StyleDefault.Background(RGBBackground.Color(mode))
	return &TerminalRenderer{
		screen: screen,
		mode:   mode,
		base:   base,
		border: base.Foreground(RGBArena.Color(mode)),
		bullet: base.Foreground(RGBBullet.Color(mode)),
	}
}

// BaseStyle is the background style, set it as the screen default so Clear paints it
func (r *TerminalRenderer) BaseStyle() tcell.Style {
	return r.base
}

// Render draws one frame and shows it
func (r *TerminalRenderer) Render(f engine.Frame) {
	r.screen.Clear()

	w, h := r.screen.Size()
	vp := NewViewport(f.Arena, w, h)
	if !vp.Usable() {
		r.screen.Show()
		return
	}

	r.drawBorder(w, h)

	for _, b := range f.Bullets {
		if x, y, ok := vp.ToCell(b.Position); ok {
			r.screen.SetContent(x, y, bulletGlyph, nil, r.bullet)
		}
	}

	for _, s := range f.Ships {
		if x, y, ok := vp.ToCell(s.Position); ok {
			style := r.base.Foreground(RGBFromVec(s.Color).Color(r.mode)).Bold(true)
			r.screen.SetContent(x, y, ShipGlyph(s.RotationZ), nil, style)
		}
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawBorder(w, h int) {
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, 0, borderHorizontal, nil, r.border)
		r.screen.SetContent(x, h-1, borderHorizontal, nil, r.border)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(0, y, borderVertical, nil, r.border)
		r.screen.SetContent(w-1, y, borderVertical, nil, r.border)
	}
	r.screen.SetContent(0, 0, borderTopLeft, nil, r.border)
	r.screen.SetContent(w-1, 0, borderTopRight, nil, r.border)
	r.screen.SetContent(0, h-1, borderBottomLeft, nil, r.border)
	r.screen.SetContent(w-1, h-1, borderBottomRight, nil, r.border)
}
