// Package input tracks edge-triggered keyboard and mouse button state.
package input

// Key identifies a tracked keyboard button independent of the window backend.
type Key int

// Tracked keys, in polling order.
const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyEscape
	KeySpace
	KeyShift
	KeyCtrl
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF12

	// KeyCount is the number of tracked keys.
	KeyCount
)

var keyNames = [KeyCount]string{
	"A", "B", "C", "D", "E", "F", "G", "H",
	"I", "J", "K", "L", "M", "N", "O", "P",
	"Q", "R", "S", "T", "U", "V", "W", "X",
	"Y", "Z",
	"Escape", "Space", "Shift", "Ctrl",
	"Up", "Down", "Left", "Right",
	"F12",
}

// String returns the key name.
func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// MouseButton identifies a tracked mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// Source is the external input collaborator queried once per tick.
// Window backends implement it.
type Source interface {
	KeyDown(k Key) bool
	MouseButtonDown(b MouseButton) bool
	CursorPos() (x, y float64)
}

// ButtonState holds the current and previous pressed state of one button.
// WasPressed always equals IsPressed from the preceding update.
type ButtonState struct {
	IsPressed  bool
	WasPressed bool
	ID         Key
}

// update shifts the current state into WasPressed and records down.
func (b *ButtonState) update(down bool) {
	b.WasPressed = b.IsPressed
	b.IsPressed = down
}

// JustPressed reports a rising edge.
func (b ButtonState) JustPressed() bool {
	return b.IsPressed && !b.WasPressed
}

// JustReleased reports a falling edge.
func (b ButtonState) JustReleased() bool {
	return !b.IsPressed && b.WasPressed
}
