package demo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/gl-waves/internal/engine/frame"
	"github.com/Faultbox/gl-waves/internal/engine/input"
	"github.com/Faultbox/gl-waves/internal/engine/renderer"
	"github.com/Faultbox/gl-waves/internal/engine/water"
	"github.com/Faultbox/gl-waves/internal/logger"
)

// Window is the part of the window the frame loop drives.
type Window interface {
	input.Source
	PollEvents()
	ShouldClose() bool
	RequestClose()
	SwapBuffers()
	Size() (int, int)
}

// Renderer is the part of the renderer the frame loop drives.
type Renderer interface {
	water.Binder
	SetWireframe(on bool)
	Draw(u renderer.FrameUniforms)
	ReadPixels(width, height int) []byte
}

// Capturer writes screenshots.
type Capturer interface {
	CaptureFromPixels(pixels []byte, width, height int) (string, error)
}

// Driver runs the per-frame sequence against injected collaborators.
type Driver struct {
	window   Window
	renderer Renderer
	shots    Capturer

	state *SceneState
	clock frame.Clock
	pacer *frame.Pacer
	stats *frame.Stats
	start time.Time

	frames uint64
	log    *zap.Logger
}

// NewDriver creates a driver. The pacer starts timing the first frame now.
// shots may be nil to disable screenshots.
func NewDriver(win Window, r Renderer, shots Capturer, state *SceneState, clock frame.Clock, target time.Duration) *Driver {
	return &Driver{
		window:   win,
		renderer: r,
		shots:    shots,
		state:    state,
		clock:    clock,
		pacer:    frame.NewPacer(clock, target),
		stats:    frame.NewStats(time.Second),
		start:    clock.Now(),
		log:      logger.Named("frame"),
	}
}

// State returns the scene state.
func (d *Driver) State() *SceneState {
	return d.state
}

// Frames returns the number of completed frames.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Step runs one frame.
func (d *Driver) Step() frame.Timing {
	s := d.state

	d.window.PollEvents()
	s.Keyboard.Update(d.window)
	width, height := d.window.Size()
	s.Mouse.Update(d.window, width, height)

	screenshot := d.applyControls()

	// Mouse deltas steer free-look; orbit ignores them.
	s.Camera.Update(d.clock.Now().Sub(d.start), s.Mouse.DX, s.Mouse.DY)
	s.View = s.Camera.View()

	// Animation runs on the previous frame's duration.
	s.Animator.Advance(float32(d.pacer.Last().Seconds()), d.renderer)

	d.renderer.Draw(renderer.FrameUniforms{
		Model:       s.Model,
		MVP:         s.MVP(),
		ViewPos:     s.Camera.Position,
		Interpolate: s.Animator.Blend(),
		WavesOffset: s.Animator.WaveOffset(),
	})
	if screenshot {
		d.captureScreenshot(width, height)
	}
	d.window.SwapBuffers()

	t := d.pacer.End()
	d.frames++
	if r, ok := d.stats.Add(t); ok {
		d.log.Debug("frame stats",
			zap.Int("frames", r.Frames),
			zap.Float64("fps", r.FPS),
			zap.Duration("avg_work", r.AvgWork),
			zap.Int("texture_index", s.Animator.Index()),
		)
	}
	return t
}

// applyControls acts on keys pressed this frame. It reports whether a
// screenshot was requested.
func (d *Driver) applyControls() bool {
	s := d.state
	kb := s.Keyboard

	if kb.JustPressed(KeyQuit) {
		d.window.RequestClose()
	}
	if kb.JustPressed(KeyWireframeOn) {
		s.Wireframe = true
		d.renderer.SetWireframe(true)
	}
	if kb.JustPressed(KeyWireframeOff) {
		s.Wireframe = false
		d.renderer.SetWireframe(false)
	}
	if kb.JustPressed(KeyOrbitOn) {
		s.Camera.Orbiting = true
	}
	if kb.JustPressed(KeyOrbitOff) {
		s.Camera.Orbiting = false
	}
	return kb.JustPressed(KeyScreenshot) && d.shots != nil
}

func (d *Driver) captureScreenshot(width, height int) {
	pixels := d.renderer.ReadPixels(width, height)
	path, err := d.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		d.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	d.log.Info("screenshot saved", zap.String("path", path))
}

// Run steps frames until the window asks to close or ctx is cancelled.
// Both are checked between frames.
func (d *Driver) Run(ctx context.Context) error {
	for !d.window.ShouldClose() {
		if err := ctx.Err(); err != nil {
			d.log.Info("frame loop interrupted", zap.Uint64("frames", d.frames))
			return err
		}
		d.Step()
	}
	d.log.Info("frame loop finished", zap.Uint64("frames", d.frames))
	return nil
}
