// Package camera provides the scene camera: a time-driven orbit and a mouse
// free-look mode, both aimed at the world origin.
package camera

import (
	gomath "math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Up is the fixed camera up vector.
var Up = mgl32.Vec3{0, 1, 0}

// Target is the fixed look-at point.
var Target = mgl32.Vec3{0, 0, 0}

// maxPitch keeps free-look short of the poles, where LookAt with a fixed up
// vector degenerates.
const maxPitch = 89.0 * gomath.Pi / 180.0

// Config holds camera parameters.
type Config struct {
	FOV             float32 // vertical field of view, degrees
	Near, Far       float32
	OrbitRadius     float32
	OrbitHeight     float32
	OrbitSpeed      float32 // radians per second
	LookSensitivity float32 // radians per pixel
	StartOrbiting   bool
}

// Camera is the scene camera. Orbiting selects between orbit and free-look.
type Camera struct {
	Position mgl32.Vec3
	Orbiting bool

	cfg Config
}

// New creates a camera placed on the orbit path at time zero.
func New(cfg Config) *Camera {
	c := &Camera{
		Orbiting: cfg.StartOrbiting,
		cfg:      cfg,
	}
	c.Orbit(0)
	return c
}

// Config returns the camera parameters.
func (c *Camera) Config() Config {
	return c.cfg
}

// Orbit places the camera on the orbit circle for the given elapsed time.
// Position depends only on elapsed.
func (c *Camera) Orbit(elapsed time.Duration) {
	theta := elapsed.Seconds() * float64(c.cfg.OrbitSpeed)
	r := float64(c.cfg.OrbitRadius)
	c.Position = mgl32.Vec3{
		float32(gomath.Sin(theta) * r),
		c.cfg.OrbitHeight,
		float32(gomath.Cos(theta) * r),
	}
}

// Look rotates the viewpoint around the target by mouse pixel deltas.
// dx turns horizontally, dy (positive up) tilts. Distance is preserved.
func (c *Camera) Look(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}

	offset := c.Position.Sub(Target)
	r := float64(offset.Len())
	if r == 0 {
		return
	}

	azimuth := gomath.Atan2(float64(offset.X()), float64(offset.Z()))
	elevation := gomath.Asin(gomath.Max(-1, gomath.Min(1, float64(offset.Y())/r)))

	azimuth -= dx * float64(c.cfg.LookSensitivity)
	elevation += dy * float64(c.cfg.LookSensitivity)
	elevation = gomath.Max(-maxPitch, gomath.Min(maxPitch, elevation))

	c.Position = Target.Add(mgl32.Vec3{
		float32(r * gomath.Cos(elevation) * gomath.Sin(azimuth)),
		float32(r * gomath.Sin(elevation)),
		float32(r * gomath.Cos(elevation) * gomath.Cos(azimuth)),
	})
}

// Update applies the active mode for this frame.
func (c *Camera) Update(elapsed time.Duration, dx, dy float64) {
	if c.Orbiting {
		c.Orbit(elapsed)
		return
	}
	c.Look(dx, dy)
}

// View returns the view matrix looking from Position at the target.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, Target, Up)
}

// Projection returns the perspective projection for the given aspect ratio.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.cfg.FOV), aspect, c.cfg.Near, c.cfg.Far)
}
