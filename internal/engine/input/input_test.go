package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	keys    map[Key]bool
	buttons map[MouseButton]bool
	x, y    float64
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		keys:    make(map[Key]bool),
		buttons: make(map[MouseButton]bool),
	}
}

func (f *fakeSource) KeyDown(k Key) bool                 { return f.keys[k] }
func (f *fakeSource) MouseButtonDown(b MouseButton) bool { return f.buttons[b] }
func (f *fakeSource) CursorPos() (float64, float64)      { return f.x, f.y }

func TestKeyboardBindingTable(t *testing.T) {
	kb := NewKeyboard()
	buttons := kb.Buttons()

	require.Len(t, buttons, int(KeyCount))
	for i, b := range buttons {
		assert.Equal(t, Key(i), b.ID, "binding %d out of order", i)
		assert.False(t, b.IsPressed)
		assert.False(t, b.WasPressed)
	}
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "Unknown", KeyCount.String())
}

func TestKeyboardEdgeTracking(t *testing.T) {
	// Pattern of physical states for R across ticks.
	pattern := []bool{false, true, true, false, true, false, false, true}

	src := newFakeSource()
	kb := NewKeyboard()

	prev := false
	for tick, down := range pattern {
		src.keys[KeyR] = down
		kb.Update(src)

		b := kb.Button(KeyR)
		assert.Equal(t, down, b.IsPressed, "tick %d is_pressed", tick)
		assert.Equal(t, prev, b.WasPressed, "tick %d was_pressed", tick)
		assert.Equal(t, down && !prev, b.JustPressed(), "tick %d just pressed", tick)
		assert.Equal(t, !down && prev, b.JustReleased(), "tick %d just released", tick)
		prev = down
	}
}

func TestKeyboardHeldFiresOnce(t *testing.T) {
	src := newFakeSource()
	kb := NewKeyboard()
	src.keys[KeyP] = true

	edges := 0
	for i := 0; i < 10; i++ {
		kb.Update(src)
		if kb.JustPressed(KeyP) {
			edges++
		}
		assert.True(t, kb.Pressed(KeyP))
	}
	assert.Equal(t, 1, edges)
}

func TestKeyboardUnknownKey(t *testing.T) {
	kb := NewKeyboard()
	b := kb.Button(Key(-1))
	assert.False(t, b.IsPressed)
	assert.False(t, kb.JustPressed(KeyCount+3))
}

func TestMouseFirstSampleHasNoDelta(t *testing.T) {
	src := newFakeSource()
	src.x, src.y = 640, 360

	m := NewMouse()
	m.Update(src, 1280, 720)

	assert.Zero(t, m.DX)
	assert.Zero(t, m.DY)
	assert.InDelta(t, 0.0, m.NormX, 1e-9)
	assert.InDelta(t, 0.0, m.NormY, 1e-9)
}

func TestMouseDelta(t *testing.T) {
	src := newFakeSource()
	m := NewMouse()

	src.x, src.y = 100, 100
	m.Update(src, 1280, 720)

	src.x, src.y = 110, 90
	m.Update(src, 1280, 720)
	assert.Equal(t, 10.0, m.DX)
	// Screen Y grows downward; DY is positive when moving up.
	assert.Equal(t, 10.0, m.DY)

	m.Update(src, 1280, 720)
	assert.Zero(t, m.DX)
	assert.Zero(t, m.DY)
}

func TestMouseNormalized(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"top left", 0, 0, -1, 1},
		{"center", 640, 360, 0, 0},
		{"quarter", 320, 540, -0.5, -0.5},
		{"wraps past width", 1280 + 320, 360, -0.5, 0},
		{"negative wraps", -320, 360, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			src.x, src.y = tt.x, tt.y

			m := NewMouse()
			m.Update(src, 1280, 720)

			assert.InDelta(t, tt.wantX, m.NormX, 1e-9)
			assert.InDelta(t, tt.wantY, m.NormY, 1e-9)
			assert.GreaterOrEqual(t, m.NormX, -1.0)
			assert.Less(t, m.NormX, 1.0)
		})
	}
}

func TestMouseZeroExtent(t *testing.T) {
	src := newFakeSource()
	src.x, src.y = 50, 50

	m := NewMouse()
	m.Update(src, 0, 0)
	assert.Equal(t, -1.0, m.NormX)
	assert.Equal(t, 1.0, m.NormY)
}

func TestMouseButtons(t *testing.T) {
	src := newFakeSource()
	m := NewMouse()

	src.buttons[MouseLeft] = true
	m.Update(src, 1280, 720)
	assert.True(t, m.Left.JustPressed())
	assert.False(t, m.Right.IsPressed)

	src.buttons[MouseLeft] = false
	src.buttons[MouseRight] = true
	m.Update(src, 1280, 720)
	assert.True(t, m.Left.JustReleased())
	assert.True(t, m.Right.JustPressed())
	assert.True(t, m.Left.WasPressed)
}
