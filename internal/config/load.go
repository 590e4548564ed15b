package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
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

	applyFlags(cfg, flag.Args())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot start with.
func (c *Config) Validate() error {
	if c.View.Width <= 0 || c.View.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.View.Width, c.View.Height)
	}
	if c.Scene.CameraZ == 0 {
		return fmt.Errorf("camera z must not be 0: every point would project onto the centre")
	}
	if c.Scene.Ambient < 0 {
		return fmt.Errorf("ambient %v must not be negative", c.Scene.Ambient)
	}
	if c.Load.Fit < 0 {
		return fmt.Errorf("fit %v must not be negative", c.Load.Fit)
	}
	if _, err := c.Load.RGBA(); err != nil {
		return err
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./painter3d.yaml",
		DefaultPath(),
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
		return filepath.Join(home, "Library", "Application Support", "Painter3D")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Painter3D")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "painter3d")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "painter3d")
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
