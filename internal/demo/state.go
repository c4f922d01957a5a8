// Package demo wires the window, input, camera, water animation and
// renderer into the frame loop.
package demo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/gl-waves/internal/engine/camera"
	"github.com/Faultbox/gl-waves/internal/engine/input"
	"github.com/Faultbox/gl-waves/internal/engine/water"
)

// Key bindings.
const (
	KeyQuit         = input.KeyEscape
	KeyWireframeOn  = input.KeyP
	KeyWireframeOff = input.KeyO
	KeyOrbitOn      = input.KeyR
	KeyOrbitOff     = input.KeyT
	KeyScreenshot   = input.KeyF12
)

// SceneState is everything the frame body reads and mutates.
type SceneState struct {
	Keyboard *input.Keyboard
	Mouse    *input.Mouse
	Camera   *camera.Camera
	Animator *water.Animator

	Wireframe bool

	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// NewSceneState creates the state for a window of the given size.
func NewSceneState(cam *camera.Camera, anim *water.Animator, modelScale float32, width, height int) *SceneState {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	s := &SceneState{
		Keyboard:   input.NewKeyboard(),
		Mouse:      input.NewMouse(),
		Camera:     cam,
		Animator:   anim,
		Model:      mgl32.Scale3D(modelScale, modelScale, modelScale),
		Projection: cam.Projection(aspect),
	}
	s.View = cam.View()
	return s
}

// MVP returns projection * view * model.
func (s *SceneState) MVP() mgl32.Mat4 {
	return s.Projection.Mul4(s.View).Mul4(s.Model)
}
