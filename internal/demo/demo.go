package demo

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/gl-waves/internal/config"
	"github.com/Faultbox/gl-waves/internal/engine/camera"
	"github.com/Faultbox/gl-waves/internal/engine/debug"
	"github.com/Faultbox/gl-waves/internal/engine/frame"
	"github.com/Faultbox/gl-waves/internal/engine/renderer"
	"github.com/Faultbox/gl-waves/internal/engine/texture"
	"github.com/Faultbox/gl-waves/internal/engine/water"
	"github.com/Faultbox/gl-waves/internal/engine/window"
	"github.com/Faultbox/gl-waves/internal/logger"
)

// Demo owns the window, GL resources and frame driver.
type Demo struct {
	config   *config.Config
	window   window.Window
	renderer *renderer.Renderer
	textures []uint32
	driver   *Driver
}

// New creates the window and GL context, loads shaders and textures, and
// prepares the frame loop. Any failure is fatal for the demo.
func New(cfg *config.Config) (*Demo, error) {
	d := &Demo{config: cfg}

	var err error
	d.window, err = window.New(window.Config{
		Backend: cfg.Window.Backend,
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		VSync:   cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	d.renderer, err = renderer.New(renderer.Config{
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		GridSize:      cfg.Water.GridSize,
		PatchVertices: cfg.Water.PatchVertices,
		TessLevel:     cfg.Water.TessLevel,
		Depth:         cfg.Water.Depth,
		Light: renderer.Light{
			Direction: mgl32.Vec3(cfg.Water.Light.Direction),
			Ambient:   mgl32.Vec3(cfg.Water.Light.Ambient),
			Diffuse:   mgl32.Vec3(cfg.Water.Light.Diffuse),
			Specular:  mgl32.Vec3(cfg.Water.Light.Specular),
		},
		ShaderDir: shaderDir(cfg),
	})
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	anim, err := d.loadTextures()
	if err != nil {
		d.Close()
		return nil, err
	}

	cam := camera.New(camera.Config{
		FOV:             cfg.Camera.FOV,
		Near:            cfg.Camera.Near,
		Far:             cfg.Camera.Far,
		OrbitRadius:     cfg.Camera.OrbitRadius,
		OrbitHeight:     cfg.Camera.OrbitHeight,
		OrbitSpeed:      cfg.Camera.OrbitSpeed,
		LookSensitivity: cfg.Camera.LookSensitivity,
		StartOrbiting:   cfg.Camera.StartOrbiting,
	})

	width, height := d.window.Size()
	state := NewSceneState(cam, anim, cfg.Water.ModelScale, width, height)

	shots, err := debug.NewScreenshotCapture(cfg.Screenshot.Dir, "waves", cfg.Screenshot.Format)
	if err != nil {
		d.Close()
		return nil, err
	}

	d.driver = NewDriver(d.window, d.renderer, shots, state, frame.SystemClock{}, frame.TargetForFPS(cfg.Window.FPSLimit))
	return d, nil
}

func shaderDir(cfg *config.Config) string {
	if cfg.Assets.ShaderDir == "" {
		return ""
	}
	return cfg.AssetPath(cfg.Assets.ShaderDir)
}

// loadTextures uploads the frame sequence and the static water textures,
// binds them, and returns the animator over the sequence.
func (d *Demo) loadTextures() (*water.Animator, error) {
	cfg := d.config
	heightPaths, normalPaths := cfg.FramePaths()

	load := func(paths []string, fallback color.RGBA) ([]*image.RGBA, error) {
		return texture.LoadImages(paths, texture.Options{
			MaxSize:  cfg.Assets.MaxTextureSize,
			Strict:   cfg.Assets.StrictTextures,
			Fallback: fallback,
		})
	}

	heights, errHeights := load(heightPaths, texture.FlatHeight)
	normals, errNormals := load(normalPaths, texture.FlatNormal)
	surface, errSurface := load([]string{cfg.AssetPath(cfg.Assets.WaterTexture)}, texture.White)
	wavesHeight, errWavesHeight := load([]string{cfg.AssetPath(cfg.Assets.WavesHeight)}, texture.FlatHeight)
	wavesNormal, errWavesNormal := load([]string{cfg.AssetPath(cfg.Assets.WavesNormal)}, texture.FlatNormal)
	if err := multierr.Combine(errHeights, errNormals, errSurface, errWavesHeight, errWavesNormal); err != nil {
		return nil, fmt.Errorf("loading textures: %w", err)
	}
	statics := []*image.RGBA{surface[0], wavesHeight[0], wavesNormal[0]}

	seq := water.Sequence{
		Heights: texture.UploadAll(heights),
		Normals: texture.UploadAll(normals),
	}
	staticIDs := texture.UploadAll(statics)

	d.textures = append(d.textures, seq.Heights...)
	d.textures = append(d.textures, seq.Normals...)
	d.textures = append(d.textures, staticIDs...)

	anim, err := water.NewAnimator(seq, water.Config{
		BlendRate: cfg.Water.BlendRate,
		WaveSpeed: cfg.Water.WaveSpeed,
		WaveWrap:  cfg.Water.WaveWrap,
	})
	if err != nil {
		return nil, fmt.Errorf("texture sequence: %w", err)
	}

	anim.Bind(d.renderer)
	d.renderer.BindTexture(water.UnitWater, staticIDs[0])
	d.renderer.BindTexture(water.UnitWavesHeight, staticIDs[1])
	d.renderer.BindTexture(water.UnitWavesNormal, staticIDs[2])

	logger.Info("textures loaded",
		zap.Int("frames", seq.Len()),
		zap.Int("textures", len(d.textures)),
	)
	return anim, nil
}

// Run runs the frame loop until the window closes or ctx is cancelled.
func (d *Demo) Run(ctx context.Context) error {
	return d.driver.Run(ctx)
}

// Close releases GL resources and the window.
func (d *Demo) Close() {
	if len(d.textures) > 0 {
		texture.Delete(d.textures...)
		d.textures = nil
	}
	if d.renderer != nil {
		d.renderer.Close()
	}
	if d.window != nil {
		d.window.Close()
	}
}
