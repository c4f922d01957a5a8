package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/gl-waves/internal/engine/input"
	"github.com/Faultbox/gl-waves/internal/logger"
)

var sdlKeys = [input.KeyCount]sdl.Scancode{
	input.KeyA: sdl.SCANCODE_A, input.KeyB: sdl.SCANCODE_B, input.KeyC: sdl.SCANCODE_C,
	input.KeyD: sdl.SCANCODE_D, input.KeyE: sdl.SCANCODE_E, input.KeyF: sdl.SCANCODE_F,
	input.KeyG: sdl.SCANCODE_G, input.KeyH: sdl.SCANCODE_H, input.KeyI: sdl.SCANCODE_I,
	input.KeyJ: sdl.SCANCODE_J, input.KeyK: sdl.SCANCODE_K, input.KeyL: sdl.SCANCODE_L,
	input.KeyM: sdl.SCANCODE_M, input.KeyN: sdl.SCANCODE_N, input.KeyO: sdl.SCANCODE_O,
	input.KeyP: sdl.SCANCODE_P, input.KeyQ: sdl.SCANCODE_Q, input.KeyR: sdl.SCANCODE_R,
	input.KeyS: sdl.SCANCODE_S, input.KeyT: sdl.SCANCODE_T, input.KeyU: sdl.SCANCODE_U,
	input.KeyV: sdl.SCANCODE_V, input.KeyW: sdl.SCANCODE_W, input.KeyX: sdl.SCANCODE_X,
	input.KeyY: sdl.SCANCODE_Y, input.KeyZ: sdl.SCANCODE_Z,

	input.KeyEscape: sdl.SCANCODE_ESCAPE,
	input.KeySpace:  sdl.SCANCODE_SPACE,
	input.KeyShift:  sdl.SCANCODE_LSHIFT,
	input.KeyCtrl:   sdl.SCANCODE_LCTRL,
	input.KeyUp:     sdl.SCANCODE_UP,
	input.KeyDown:   sdl.SCANCODE_DOWN,
	input.KeyLeft:   sdl.SCANCODE_LEFT,
	input.KeyRight:  sdl.SCANCODE_RIGHT,
	input.KeyF12:    sdl.SCANCODE_F12,
}

// sdlWindow wraps an SDL2 window and OpenGL context.
type sdlWindow struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext

	closeRequested bool
	keys           []uint8
	mouseX, mouseY int32
	mouseButtons   uint32
}

func newSDL(cfg Config) (*sdlWindow, error) {
	w := &sdlWindow{
		config: cfg,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 core: the highest macOS offers, and enough for tessellation.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		uint32(sdl.WINDOW_OPENGL),
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	w.keys = sdl.GetKeyboardState()

	logger.Info("window created",
		zap.String("backend", BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// PollEvents drains the SDL queue and snapshots keyboard and mouse state.
func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			w.closeRequested = true
		}
	}

	w.keys = sdl.GetKeyboardState()
	w.mouseX, w.mouseY, w.mouseButtons = sdl.GetMouseState()
}

func (w *sdlWindow) ShouldClose() bool {
	return w.closeRequested
}

func (w *sdlWindow) RequestClose() {
	w.closeRequested = true
}

func (w *sdlWindow) KeyDown(k input.Key) bool {
	if k < 0 || k >= input.KeyCount {
		return false
	}
	sc := int(sdlKeys[k])
	return sc < len(w.keys) && w.keys[sc] != 0
}

func (w *sdlWindow) MouseButtonDown(b input.MouseButton) bool {
	var button uint32
	switch b {
	case input.MouseLeft:
		button = sdl.BUTTON_LEFT
	case input.MouseRight:
		button = sdl.BUTTON_RIGHT
	default:
		return false
	}
	return w.mouseButtons&(1<<(button-1)) != 0
}

func (w *sdlWindow) CursorPos() (float64, float64) {
	return float64(w.mouseX), float64(w.mouseY)
}

func (w *sdlWindow) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

func (w *sdlWindow) Size() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

func (w *sdlWindow) Close() {
	logger.Info("closing window", zap.String("backend", BackendSDL))

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}
