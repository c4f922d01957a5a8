// Package window creates the OpenGL window and context and exposes the
// per-frame input snapshot. Two backends are available: SDL2 and GLFW.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/gl-waves/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Backend string
	Title   string
	Width   int
	Height  int
	VSync   bool
}

// Window is an OpenGL window with a current 4.1 core context.
type Window interface {
	input.Source

	// PollEvents processes pending window system events.
	PollEvents()
	// ShouldClose reports whether a close was requested.
	ShouldClose() bool
	// RequestClose asks the loop to stop at the next iteration boundary.
	RequestClose()
	// SwapBuffers presents the back buffer.
	SwapBuffers()
	// Size returns the window size in pixels.
	Size() (int, int)
	// Close destroys the window and shuts down the backend.
	Close()
}

// New creates a window using the configured backend.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case "", BackendSDL:
		return newSDL(cfg)
	case BackendGLFW:
		return newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
