// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Screenshot formats.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// Config holds all demo settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Water      WaterConfig      `yaml:"water"`
	Assets     AssetsConfig     `yaml:"assets"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Backend  string `yaml:"backend"` // sdl or glfw
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	VSync    bool   `yaml:"vsync"`
	FPSLimit int    `yaml:"fps_limit"` // target frames per second for pacing
}

// CameraConfig holds projection and camera motion settings.
type CameraConfig struct {
	FOV             float32 `yaml:"fov"` // degrees
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	OrbitRadius     float32 `yaml:"orbit_radius"`
	OrbitHeight     float32 `yaml:"orbit_height"`
	OrbitSpeed      float32 `yaml:"orbit_speed"`      // radians per second
	LookSensitivity float32 `yaml:"look_sensitivity"` // radians per pixel
	StartOrbiting   bool    `yaml:"start_orbiting"`
}

// WaterConfig holds water surface animation and shading settings.
type WaterConfig struct {
	Frames        int         `yaml:"frames"`
	BlendRate     float32     `yaml:"blend_rate"` // per second
	WaveSpeed     float32     `yaml:"wave_speed"` // per second
	WaveWrap      float32     `yaml:"wave_wrap"`
	ModelScale    float32     `yaml:"model_scale"`
	GridSize      int         `yaml:"grid_size"` // patches per side
	PatchVertices int         `yaml:"patch_vertices"`
	TessLevel     int         `yaml:"tess_level"`
	Depth         float32     `yaml:"depth"`
	Light         LightConfig `yaml:"light"`
}

// LightConfig holds the directional light.
type LightConfig struct {
	Direction [3]float32 `yaml:"direction"`
	Ambient   [3]float32 `yaml:"ambient"`
	Diffuse   [3]float32 `yaml:"diffuse"`
	Specular  [3]float32 `yaml:"specular"`
}

// AssetsConfig holds asset locations. Patterns take a 1-based frame number.
type AssetsConfig struct {
	Root           string `yaml:"root"`
	HeightPattern  string `yaml:"height_pattern"`
	NormalPattern  string `yaml:"normal_pattern"`
	WaterTexture   string `yaml:"water_texture"`
	WavesHeight    string `yaml:"waves_height"`
	WavesNormal    string `yaml:"waves_normal"`
	ShaderDir      string `yaml:"shader_dir"` // empty uses embedded shaders
	MaxTextureSize int    `yaml:"max_texture_size"`
	StrictTextures bool   `yaml:"strict_textures"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config matching the reference demo.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Backend:  BackendSDL,
			Title:    "GL Waves",
			Width:    1280,
			Height:   720,
			VSync:    true,
			FPSLimit: 60,
		},
		Camera: CameraConfig{
			FOV:             45,
			Near:            0.1,
			Far:             500,
			OrbitRadius:     75,
			OrbitHeight:     50,
			OrbitSpeed:      0.5,
			LookSensitivity: 0.005,
			StartOrbiting:   false,
		},
		Water: WaterConfig{
			Frames:        13,
			BlendRate:     1.5,
			WaveSpeed:     0.25,
			WaveWrap:      1000000,
			ModelScale:    100,
			GridSize:      64,
			PatchVertices: 4,
			TessLevel:     1,
			Depth:         0.11,
			Light: LightConfig{
				Direction: [3]float32{0, -1, 0},
				Ambient:   [3]float32{0.15, 0.15, 0.15},
				Diffuse:   [3]float32{0.75, 0.75, 0.75},
				Specular:  [3]float32{1, 1, 1},
			},
		},
		Assets: AssetsConfig{
			Root:          "assets",
			HeightPattern: "textures/heights/%d.png",
			NormalPattern: "textures/normals/%d.png",
			WaterTexture:  "textures/water.jpg",
			WavesHeight:   "textures/wavesHeight.jpg",
			WavesNormal:   "textures/wavesNormal.jpg",
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: FormatPNG,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting the demo cannot run with.
func (c *Config) Validate() error {
	var err error

	switch c.Window.Backend {
	case BackendSDL, BackendGLFW:
	default:
		err = multierr.Append(err, fmt.Errorf("window.backend: unknown backend %q", c.Window.Backend))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPSLimit <= 0 {
		err = multierr.Append(err, fmt.Errorf("window.fps_limit: must be positive, got %d", c.Window.FPSLimit))
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		err = multierr.Append(err, fmt.Errorf("camera.fov: must be in (0, 180), got %g", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		err = multierr.Append(err, fmt.Errorf("camera: need 0 < near < far, got near=%g far=%g", c.Camera.Near, c.Camera.Far))
	}

	if c.Water.Frames < 2 {
		err = multierr.Append(err, fmt.Errorf("water.frames: need at least 2, got %d", c.Water.Frames))
	}
	if c.Water.BlendRate < 0 || c.Water.WaveSpeed < 0 {
		err = multierr.Append(err, errors.New("water: rates must not be negative"))
	}
	if c.Water.WaveWrap <= 0 {
		err = multierr.Append(err, fmt.Errorf("water.wave_wrap: must be positive, got %g", c.Water.WaveWrap))
	}
	if c.Water.GridSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("water.grid_size: must be positive, got %d", c.Water.GridSize))
	}
	if c.Water.PatchVertices <= 0 {
		err = multierr.Append(err, fmt.Errorf("water.patch_vertices: must be positive, got %d", c.Water.PatchVertices))
	}

	switch c.Screenshot.Format {
	case FormatPNG, FormatWebP:
	default:
		err = multierr.Append(err, fmt.Errorf("screenshot.format: unknown format %q", c.Screenshot.Format))
	}

	return err
}
