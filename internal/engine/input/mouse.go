package input

import "math"

// Mouse holds cursor position, per-frame delta and button state.
type Mouse struct {
	RawX, RawY   float64 // pixel coordinates
	NormX, NormY float64 // NDC, [-1, 1], +Y up
	DX, DY       float64 // pixels moved since last update, +DY up

	Left  ButtonState
	Right ButtonState

	prevX, prevY float64
	primed       bool
}

// NewMouse creates a mouse with no recorded position.
func NewMouse() *Mouse {
	return &Mouse{}
}

// Update samples src. width and height are the window extent in pixels.
// The first sample reports a zero delta.
func (m *Mouse) Update(src Source, width, height int) {
	m.RawX, m.RawY = src.CursorPos()

	if !m.primed {
		m.prevX, m.prevY = m.RawX, m.RawY
		m.primed = true
	}
	m.DX = m.RawX - m.prevX
	m.DY = m.prevY - m.RawY
	m.prevX, m.prevY = m.RawX, m.RawY

	m.NormX = wrapUnit(m.RawX, width)*2 - 1
	m.NormY = (1-wrapUnit(m.RawY, height))*2 - 1

	m.Left.update(src.MouseButtonDown(MouseLeft))
	m.Right.update(src.MouseButtonDown(MouseRight))
}

// wrapUnit maps a pixel coordinate to [0, 1) modulo extent.
func wrapUnit(v float64, extent int) float64 {
	if extent <= 0 {
		return 0
	}
	e := float64(extent)
	r := math.Mod(math.Floor(v), e)
	if r < 0 {
		r += e
	}
	return r / e
}
