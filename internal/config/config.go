// Package config handles demo configuration loading and management.
package config

import (
	"fmt"
	"slices"
)

// Demo names accepted by the demo setting.
const (
	DemoSpin    = "spin"
	DemoSplit   = "split"
	DemoFoldNet = "foldnet"
	DemoEditor  = "editor"
	DemoSliders = "sliders"
)

// Demos lists every selectable demo in menu order.
var Demos = []string{DemoSpin, DemoSplit, DemoFoldNet, DemoEditor, DemoSliders}

// Config holds all application settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Demo       string           `yaml:"demo"`
	Animation  AnimationConfig  `yaml:"animation"`
	Sliders    SlidersConfig    `yaml:"sliders"`
	Audio      AudioConfig      `yaml:"audio"`
	Editor     EditorConfig     `yaml:"editor"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// AnimationConfig holds cube net fold settings.
type AnimationConfig struct {
	Step       float64 `yaml:"step"`        // Hinge rotation per frame (radians)
	SpinRate   float64 `yaml:"spin_rate"`   // Assembly spin per frame once unfolded
	PanelSize  float32 `yaml:"panel_size"`  // Edge length of a face panel
	Thickness  float32 `yaml:"thickness"`   // Panel thickness
	AutoPlay   bool    `yaml:"auto_play"`   // Start unpaused
	SpinAlways bool    `yaml:"spin_always"` // Spin while folding too
}

// SlidersConfig holds rotation slider demo settings.
type SlidersConfig struct {
	TweenSeconds float32 `yaml:"tween_seconds"` // 0 snaps immediately
}

// AudioConfig holds audio cue settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// EditorConfig holds box editor settings.
type EditorConfig struct {
	ExportPath string `yaml:"export_path"`
	TextureDir string `yaml:"texture_dir"`
}

// ScreenshotConfig holds screenshot capture settings.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Demo: DemoFoldNet,
		Animation: AnimationConfig{
			Step:      0.01,
			SpinRate:  0.01,
			PanelSize: 1,
			Thickness: 0.1,
		},
		Sliders: SlidersConfig{
			TweenSeconds: 0.25,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Editor: EditorConfig{
			ExportPath: "box_editor_config.json",
			TextureDir: "textures",
		},
		Screenshot: ScreenshotConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if !slices.Contains(Demos, c.Demo) {
		return fmt.Errorf("unknown demo %q (want one of %v)", c.Demo, Demos)
	}
	if !(c.Animation.Step > 0) {
		return fmt.Errorf("animation step must be positive, got %v", c.Animation.Step)
	}
	if c.Animation.SpinRate < 0 {
		return fmt.Errorf("spin rate must not be negative, got %v", c.Animation.SpinRate)
	}
	if c.Animation.PanelSize <= 0 || c.Animation.Thickness <= 0 {
		return fmt.Errorf("panel size and thickness must be positive, got %v and %v",
			c.Animation.PanelSize, c.Animation.Thickness)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Sliders.TweenSeconds < 0 {
		return fmt.Errorf("tween duration must not be negative, got %v", c.Sliders.TweenSeconds)
	}
	return nil
}
