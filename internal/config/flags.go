package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWireframe  = flag.Bool("wireframe", false, "Start in wireframe mode")
	flagOrthogonal = flag.Bool("ortho", false, "Start with orthogonal projection")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagScale      = flag.Float64("scale", 0, "Initial zoom")
	flagReverse    = flag.Bool("reverse", false, "Reverse the winding of loaded models")
	flagLogFile    = flag.String("log", "", "Log file path")
	flagSave       = flag.Bool("save-config", false, "Write the effective config to the user config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether -save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config. Positional arguments
// are model files and are appended to the configured ones.
func applyFlags(cfg *Config, args []string) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWireframe {
		cfg.View.Wireframe = true
	}
	if *flagOrthogonal {
		cfg.View.Orthogonal = true
	}
	if *flagWidth > 0 {
		cfg.View.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.View.Height = *flagHeight
	}
	if *flagScale > 0 {
		cfg.View.Scale = *flagScale
	}
	if *flagReverse {
		cfg.Load.Reverse = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	cfg.Load.Files = append(cfg.Load.Files, args...)
}
