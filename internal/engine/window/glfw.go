package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/gl-waves/internal/engine/input"
	"github.com/Faultbox/gl-waves/internal/logger"
)

var glfwKeys = [input.KeyCount]glfw.Key{
	input.KeyA: glfw.KeyA, input.KeyB: glfw.KeyB, input.KeyC: glfw.KeyC,
	input.KeyD: glfw.KeyD, input.KeyE: glfw.KeyE, input.KeyF: glfw.KeyF,
	input.KeyG: glfw.KeyG, input.KeyH: glfw.KeyH, input.KeyI: glfw.KeyI,
	input.KeyJ: glfw.KeyJ, input.KeyK: glfw.KeyK, input.KeyL: glfw.KeyL,
	input.KeyM: glfw.KeyM, input.KeyN: glfw.KeyN, input.KeyO: glfw.KeyO,
	input.KeyP: glfw.KeyP, input.KeyQ: glfw.KeyQ, input.KeyR: glfw.KeyR,
	input.KeyS: glfw.KeyS, input.KeyT: glfw.KeyT, input.KeyU: glfw.KeyU,
	input.KeyV: glfw.KeyV, input.KeyW: glfw.KeyW, input.KeyX: glfw.KeyX,
	input.KeyY: glfw.KeyY, input.KeyZ: glfw.KeyZ,

	input.KeyEscape: glfw.KeyEscape,
	input.KeySpace:  glfw.KeySpace,
	input.KeyShift:  glfw.KeyLeftShift,
	input.KeyCtrl:   glfw.KeyLeftControl,
	input.KeyUp:     glfw.KeyUp,
	input.KeyDown:   glfw.KeyDown,
	input.KeyLeft:   glfw.KeyLeft,
	input.KeyRight:  glfw.KeyRight,
	input.KeyF12:    glfw.KeyF12,
}

// glfwWindow wraps a GLFW window with a current OpenGL context.
type glfwWindow struct {
	config Config
	handle *glfw.Window
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)

	return &glfwWindow{config: cfg, handle: handle}, nil
}

func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindow) ShouldClose() bool {
	return w.handle.ShouldClose()
}

func (w *glfwWindow) RequestClose() {
	w.handle.SetShouldClose(true)
}

func (w *glfwWindow) KeyDown(k input.Key) bool {
	if k < 0 || k >= input.KeyCount {
		return false
	}
	return w.handle.GetKey(glfwKeys[k]) == glfw.Press
}

func (w *glfwWindow) MouseButtonDown(b input.MouseButton) bool {
	switch b {
	case input.MouseLeft:
		return w.handle.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	case input.MouseRight:
		return w.handle.GetMouseButton(glfw.MouseButtonRight) == glfw.Press
	default:
		return false
	}
}

func (w *glfwWindow) CursorPos() (float64, float64) {
	return w.handle.GetCursorPos()
}

func (w *glfwWindow) SwapBuffers() {
	w.handle.SwapBuffers()
}

func (w *glfwWindow) Size() (int, int) {
	return w.handle.GetSize()
}

func (w *glfwWindow) Close() {
	logger.Info("closing window", zap.String("backend", BackendGLFW))
	w.handle.Destroy()
	glfw.Terminate()
}
