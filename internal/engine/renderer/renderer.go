// Package renderer draws the tessellated water surface.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/gl-waves/internal/engine/renderer/shaders"
	"github.com/Faultbox/gl-waves/internal/engine/shader"
	"github.com/Faultbox/gl-waves/internal/engine/water"
	"github.com/Faultbox/gl-waves/internal/logger"
)

// Light is the directional light fed to the fragment stage.
type Light struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// Config holds renderer configuration.
type Config struct {
	Width         int
	Height        int
	GridSize      int // patches per side, drawn as GridSize*GridSize instances
	PatchVertices int
	TessLevel     int
	Depth         float32
	Light         Light
	ShaderDir     string // optional directory of stage overrides
}

// FrameUniforms are the values that change every frame.
type FrameUniforms struct {
	Model       mgl32.Mat4
	MVP         mgl32.Mat4
	ViewPos     mgl32.Vec3
	Interpolate float32
	WavesOffset float32
}

// Renderer handles all OpenGL rendering of the water surface.
type Renderer struct {
	config    Config
	program   *shader.Program
	vao       uint32
	wireframe bool
}

// requiredUniforms must be active in the linked program.
var requiredUniforms = []string{"mvp", "interpolateFactor", "gridSize"}

// samplerUnits maps sampler uniforms to their texture units.
var samplerUnits = map[string]int{
	"heightMap1":     water.UnitHeight1,
	"heightMap2":     water.UnitHeight2,
	"normalMap1":     water.UnitNormal1,
	"normalMap2":     water.UnitNormal2,
	"water":          water.UnitWater,
	"wavesHeightMap": water.UnitWavesHeight,
	"wavesNormalMap": water.UnitWavesNormal,
}

// Stages returns the water program stages, with files from dir replacing
// the embedded sources where present.
func Stages(dir string) ([]shader.Stage, error) {
	return shader.WithOverrides([]shader.Stage{
		{Kind: shader.Vertex, Name: shaders.WaterVertexFile, Source: shaders.WaterVertexShader},
		{Kind: shader.TessControl, Name: shaders.WaterTessControlFile, Source: shaders.WaterTessControlShader},
		{Kind: shader.TessEval, Name: shaders.WaterTessEvalFile, Source: shaders.WaterTessEvalShader},
		{Kind: shader.Fragment, Name: shaders.WaterFragmentFile, Source: shaders.WaterFragmentShader},
	}, dir)
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)

	stages, err := Stages(cfg.ShaderDir)
	if err != nil {
		return nil, fmt.Errorf("loading water shaders: %w", err)
	}
	r.program, err = shader.NewProgram(stages...)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}
	if err := r.program.Require(requiredUniforms...); err != nil {
		r.program.Delete()
		return nil, fmt.Errorf("water shader: %w", err)
	}
	logger.Info("water program linked",
		zap.Uint32("program", r.program.ID),
		zap.String("shader_dir", cfg.ShaderDir),
	)

	// Core profile needs a bound VAO even with no attributes.
	gl.GenVertexArrays(1, &r.vao)

	r.setStaticUniforms()
	return r, nil
}

func (r *Renderer) setStaticUniforms() {
	r.program.Use()

	l := r.config.Light
	r.program.SetVec3("light.direction", l.Direction)
	r.program.SetVec3("light.ambient", l.Ambient)
	r.program.SetVec3("light.diffuse", l.Diffuse)
	r.program.SetVec3("light.specular", l.Specular)
	r.program.SetFloat("interpolateFactor", 0)
	r.program.SetFloat("depth", r.config.Depth)
	r.program.SetInt("tessLevel", int32(r.config.TessLevel))
	r.program.SetInt("gridSize", int32(r.config.GridSize))

	for name, unit := range samplerUnits {
		r.program.SetInt(name, int32(unit))
	}
}

// BindTexture binds tex to the given texture unit.
func (r *Renderer) BindTexture(unit int, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

// SetWireframe switches between line and fill polygon modes.
func (r *Renderer) SetWireframe(on bool) {
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	r.wireframe = on
}

// Wireframe reports the current polygon mode.
func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// Draw clears the frame and draws the patch grid.
func (r *Renderer) Draw(u FrameUniforms) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	r.program.SetMat4("model", u.Model)
	r.program.SetMat4("mvp", u.MVP)
	r.program.SetVec3("viewPos", u.ViewPos)
	r.program.SetFloat("interpolateFactor", u.Interpolate)
	r.program.SetFloat("wavesOffset", u.WavesOffset)

	grid := int32(r.config.GridSize)
	gl.BindVertexArray(r.vao)
	gl.PatchParameteri(gl.PATCH_VERTICES, int32(r.config.PatchVertices))
	gl.DrawArraysInstanced(gl.PATCHES, 0, int32(r.config.PatchVertices), grid*grid)
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != nil {
		r.program.Delete()
	}
}
