package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagBackend     = flag.String("backend", "", "Window backend (sdl or glfw)")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagFPS         = flag.Int("fps", 0, "Target frames per second")
	flagOrbit       = flag.Bool("orbit", false, "Start with the orbiting camera")
	flagAssets      = flag.String("assets", "", "Asset root directory")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config destination, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagBackend != "" {
		cfg.Window.Backend = *flagBackend
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagFPS > 0 {
		cfg.Window.FPSLimit = *flagFPS
	}
	if *flagOrbit {
		cfg.Camera.StartOrbiting = true
	}
	if *flagAssets != "" {
		cfg.Assets.Root = *flagAssets
	}
}
