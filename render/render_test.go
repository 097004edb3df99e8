package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rocks-and-bullets/component"
	"github.com/lixenwraith/rocks-and-bullets/core"
	"github.com/lixenwraith/rocks-and-bullets/engine"
	"github.com/lixenwraith/rocks-and-bullets/vmath"
)

type mockCell struct {
	r     rune
	style tcell.Style
}

// MockScreen records drawn cells
type MockScreen struct {
	w, h   int
	cells  map[[2]int]mockCell
	clears int
	shows  int
}

func newMockScreen(w, h int) *MockScreen {
	return &MockScreen{w: w, h: h, cells: make(map[[2]int]mockCell)}
}

func (m *MockScreen) Size() (int, int) { return m.w, m.h }
func (m *MockScreen) Clear() {
	m.clears++
	clear(m.cells)
}
func (m *MockScreen) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mockCell{r: primary, style: style}
}
func (m *MockScreen) Show() { m.shows++ }

func (m *MockScreen) runeAt(x, y int) rune {
	return m.cells[[2]int{x, y}].r
}

func testArena(t *testing.T) engine.Arena {
	t.Helper()
	a, err := engine.NewArena(-10, -5, 20, 10)
	require.NoError(t, err)
	return a
}

func TestViewportToCell(t *testing.T) {
	vp := NewViewport(testArena(t), 22, 12)

	tests := []struct {
		name   string
		p      vmath.Vec3
		x, y   int
		inside bool
	}{
		{"center", vmath.Vec3{0, 0, 0}, 11, 5, true},
		{"bottom left corner", vmath.Vec3{-10, -5, 0}, 1, 10, true},
		{"top right corner", vmath.Vec3{10, 5, 0}, 20, 1, true},
		{"right of arena", vmath.Vec3{11, 0, 0}, 0, 0, false},
		{"below arena", vmath.Vec3{0, -5.5, 0}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := vp.ToCell(tt.p)
			require.Equal(t, tt.inside, ok)
			if ok {
				assert.Equal(t, tt.x, x)
				assert.Equal(t, tt.y, y)
			}
		})
	}
}

func TestViewportTooSmall(t *testing.T) {
	vp := NewViewport(testArena(t), 2, 40)
	assert.False(t, vp.Usable())
	_, _, ok := vp.ToCell(vmath.Vec3{})
	assert.False(t, ok)
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		deg  float64
		want rune
	}{
		{0, '▲'},
		{45, '◤'},
		{90, '◀'},
		{180, '▼'},
		{-90, '▶'},
		{350, '▲'},
		{720 + 135, '◣'},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(ShipGlyph(tt.deg)), "rotation %v", tt.deg)
	}
}

func TestRGBFromVec(t *testing.T) {
	assert.Equal(t, RGB{0, 255, 128}, RGBFromVec(vmath.Vec3{0, 1, 0.5}))
	assert.Equal(t, RGB{0, 255, 0}, RGBFromVec(vmath.Vec3{-1, 2, 0}))
	assert.Equal(t, RGB{255, 128, 0}, RGBArena)
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		colors  int
		want    ColorMode
		wantErr bool
	}{
		{"truecolor", 8, ColorModeTrueColor, false},
		{"256", 1 << 24, ColorMode256, false},
		{"auto", 1 << 24, ColorModeTrueColor, false},
		{"auto", 256, ColorMode256, false},
		{"", 16, ColorMode256, false},
		{"sepia", 256, 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in, tt.colors)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestColor256StaysInPalette(t *testing.T) {
	c := RGBArena.Color(ColorMode256)
	assert.True(t, c >= tcell.PaletteColor(0) && c <= tcell.PaletteColor(255))
}

func TestRenderFrame(t *testing.T) {
	screen := newMockScreen(22, 12)
	r := NewTerminalRenderer(screen, ColorModeTrueColor)

	ship := component.NewShip(core.Player1, vmath.Vec3{0, 0, 0}, 0, vmath.Vec3{0, 1, 1}, component.ShipConfig{})
	frame := engine.Frame{
		Arena:   testArena(t),
		Ships:   []component.Ship{ship},
		Bullets: []component.Bullet{{Kinetic: component.Kinetic{Position: vmath.Vec3{-10, -5, 0}}}},
	}

	r.Render(frame)

	assert.Equal(t, 1, screen.clears)
	assert.Equal(t, 1, screen.shows)

	assert.Equal(t, borderTopLeft, screen.runeAt(0, 0))
	assert.Equal(t, borderBottomRight, screen.runeAt(21, 11))
	assert.Equal(t, borderHorizontal, screen.runeAt(5, 0))
	assert.Equal(t, borderVertical, screen.runeAt(0, 5))

	assert.Equal(t, '▲', screen.runeAt(11, 5))
	wantStyle := r.BaseStyle().Foreground(tcell.NewRGBColor(0, 255, 255)).Bold(true)
	assert.Equal(t, wantStyle, screen.cells[[2]int{11, 5}].style)

	assert.Equal(t, bulletGlyph, screen.runeAt(1, 10))
}

func TestRenderShipDrawnOverBullet(t *testing.T) {
	screen := newMockScreen(22, 12)
	r := NewTerminalRenderer(screen, ColorModeTrueColor)

	ship := component.NewShip(core.Player2, vmath.Vec3{0, 0, 0}, 90, vmath.Vec3{0, 1, 0.5}, component.ShipConfig{})
	r.Render(engine.Frame{
		Arena:   testArena(t),
		Ships:   []component.Ship{ship},
		Bullets: []component.Bullet{{Kinetic: component.Kinetic{Position: vmath.Vec3{0.1, 0.1, 0}}}},
	})

	assert.Equal(t, '◀', screen.runeAt(11, 5))
}

func TestRenderTinyScreen(t *testing.T) {
	screen := newMockScreen(2, 2)
	r := NewTerminalRenderer(screen, ColorMode256)

	r.Render(engine.Frame{Arena: testArena(t)})

	assert.Empty(t, screen.cells)
	assert.Equal(t, 1, screen.shows)
}
