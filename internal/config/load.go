package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
// The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "GLWaves")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "GLWaves")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "gl-waves")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "gl-waves")
	}
}

// loadFromFile merges a YAML file over the values already in cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// AssetPath resolves a path relative to the asset root.
func (c *Config) AssetPath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Assets.Root, rel)
}

// FramePaths returns the 1-based height and normal map paths for every frame.
func (c *Config) FramePaths() (heights, normals []string) {
	heights = make([]string, c.Water.Frames)
	normals = make([]string, c.Water.Frames)
	for i := 0; i < c.Water.Frames; i++ {
		heights[i] = c.AssetPath(fmt.Sprintf(c.Assets.HeightPattern, i+1))
		normals[i] = c.AssetPath(fmt.Sprintf(c.Assets.NormalPattern, i+1))
	}
	return heights, normals
}
