// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Config holds all viewer settings.
type Config struct {
	View    ViewConfig    `yaml:"view"`
	Scene   SceneConfig   `yaml:"scene"`
	Load    LoadConfig    `yaml:"load"`
	Logging LoggingConfig `yaml:"logging"`
}

// ViewConfig holds window and renderer settings.
type ViewConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Scale       float64 `yaml:"scale"`
	Wireframe   bool    `yaml:"wireframe"`
	Orthogonal  bool    `yaml:"orthogonal"`
	StrokeWidth float32 `yaml:"stroke_width"`
	AntiAlias   bool    `yaml:"anti_alias"`
	// DragSpeed is radians of scene rotation per dragged pixel.
	DragSpeed float64 `yaml:"drag_speed"`
}

// SceneConfig holds lighting and camera settings.
type SceneConfig struct {
	Ambient float64    `yaml:"ambient"`
	Light   [3]float64 `yaml:"light"`
	CameraZ float64    `yaml:"camera_z"`
	// Demo adds a cube when no model files are given.
	Demo bool `yaml:"demo"`
}

// LoadConfig holds model loading settings.
type LoadConfig struct {
	Files   []string `yaml:"files"`
	Centre  bool     `yaml:"centre"`
	Reverse bool     `yaml:"reverse_winding"`
	Color   string   `yaml:"color"`
	// Fit scales each model so its largest extent is this many units. 0 keeps
	// the model's own size.
	Fit float64 `yaml:"fit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			Width:       800,
			Height:      600,
			Scale:       1,
			StrokeWidth: 1,
			AntiAlias:   true,
			DragSpeed:   0.01,
		},
		Scene: SceneConfig{
			Ambient: 0.3,
			Light:   [3]float64{0, 0, 800},
			CameraZ: 800,
			Demo:    true,
		},
		Load: LoadConfig{
			Centre: true,
			Color:  "#c8c8c8",
			Fit:    200,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// RGBA parses the model colour, written as #rrggbb or #rrggbbaa.
func (l LoadConfig) RGBA() (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(l.Color), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("colour %q: want #rrggbb or #rrggbbaa", l.Color)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", l.Color, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
