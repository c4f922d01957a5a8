package input

// Keyboard is the fixed binding table of tracked keys.
type Keyboard struct {
	buttons [KeyCount]ButtonState
}

// NewKeyboard creates a keyboard with every key released.
func NewKeyboard() *Keyboard {
	kb := &Keyboard{}
	for k := Key(0); k < KeyCount; k++ {
		kb.buttons[k].ID = k
	}
	return kb
}

// Update queries src for every tracked key in table order.
func (kb *Keyboard) Update(src Source) {
	for i := range kb.buttons {
		b := &kb.buttons[i]
		b.update(src.KeyDown(b.ID))
	}
}

// Button returns the state of k. Keys outside the table report released.
func (kb *Keyboard) Button(k Key) ButtonState {
	if k < 0 || k >= KeyCount {
		return ButtonState{ID: k}
	}
	return kb.buttons[k]
}

// Pressed reports whether k is currently held.
func (kb *Keyboard) Pressed(k Key) bool {
	return kb.Button(k).IsPressed
}

// JustPressed reports whether k went down on the last update.
func (kb *Keyboard) JustPressed(k Key) bool {
	return kb.Button(k).JustPressed()
}

// Buttons returns a copy of the table in polling order.
func (kb *Keyboard) Buttons() []ButtonState {
	out := make([]ButtonState, len(kb.buttons))
	copy(out, kb.buttons[:])
	return out
}
