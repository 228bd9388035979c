// Package config handles simulator configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds all simulator settings. Every field can be overridden by an
// environment variable named after its path, e.g. WBM_WINDOW_WIDTH or
// WBM_WIRE_SIZE_MULTIPLIER.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Wire      WireConfig      `yaml:"wire"`
	Render    RenderConfig    `yaml:"render"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"` // MSAA samples, 0 disables
}

// WireConfig holds collision settings.
type WireConfig struct {
	SizeMultiplier float64 `yaml:"size_multiplier" split_words:"true"`
}

// RenderConfig holds tessellation and drawing settings.
type RenderConfig struct {
	Wireframe      bool    `yaml:"wireframe"`
	CircleSegments int     `yaml:"circle_segments" split_words:"true"`
	SliceSegments  int     `yaml:"slice_segments" split_words:"true"`
	Margin         float64 `yaml:"margin"`
	ScreenshotDir  string  `yaml:"screenshot_dir" split_words:"true"`
}

// AnimationConfig holds timing of machine actions.
type AnimationConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file" split_words:"true"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:   "Wire Bending Machine Simulator",
			Width:   1280,
			Height:  720,
			VSync:   true,
			Samples: 4,
		},
		Wire: WireConfig{
			SizeMultiplier: 0.99,
		},
		Render: RenderConfig{
			CircleSegments: 48,
			SliceSegments:  16,
			Margin:         0.5,
			ScreenshotDir:  "screenshots",
		},
		Animation: AnimationConfig{
			Duration: 300 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.Samples < 0:
		return fmt.Errorf("%w: window samples %d", ErrInvalid, c.Window.Samples)
	case !(c.Wire.SizeMultiplier > 0 && c.Wire.SizeMultiplier < 1):
		return fmt.Errorf("%w: size multiplier %v not in (0, 1)", ErrInvalid, c.Wire.SizeMultiplier)
	case c.Render.CircleSegments < 3:
		return fmt.Errorf("%w: circle segments %d below 3", ErrInvalid, c.Render.CircleSegments)
	case c.Render.SliceSegments < 2:
		return fmt.Errorf("%w: slice segments %d below 2", ErrInvalid, c.Render.SliceSegments)
	case c.Render.Margin < 0:
		return fmt.Errorf("%w: negative margin %v", ErrInvalid, c.Render.Margin)
	case c.Animation.Duration < 0:
		return fmt.Errorf("%w: negative animation duration %v", ErrInvalid, c.Animation.Duration)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
