package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Demo != DemoFoldNet {
		t.Errorf("expected demo %q, got %q", DemoFoldNet, cfg.Demo)
	}
	if cfg.Animation.Step != 0.01 {
		t.Errorf("expected step 0.01, got %v", cfg.Animation.Step)
	}
	if cfg.Animation.AutoPlay {
		t.Error("expected animation to start paused by default")
	}
	if cfg.Animation.PanelSize != 1 || cfg.Animation.Thickness != 0.1 {
		t.Errorf("expected panel 1 x 0.1, got %v x %v", cfg.Animation.PanelSize, cfg.Animation.Thickness)
	}

	if cfg.Screenshot.Dir != "screenshots" {
		t.Errorf("expected screenshot dir screenshots, got %s", cfg.Screenshot.Dir)
	}
	if cfg.Editor.ExportPath != "box_editor_config.json" {
		t.Errorf("expected export path box_editor_config.json, got %s", cfg.Editor.ExportPath)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

demo: sliders

animation:
  step: 0.02
  spin_rate: 0.005
  panel_size: 2
  thickness: 0.2
  auto_play: true

sliders:
  tween_seconds: 0

audio:
  enabled: false
  volume: 0.3

logging:
  level: "debug"
  log_file: "cubefold.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Demo != DemoSliders {
		t.Errorf("expected demo sliders, got %s", cfg.Demo)
	}
	if cfg.Animation.Step != 0.02 {
		t.Errorf("expected step 0.02, got %v", cfg.Animation.Step)
	}
	if !cfg.Animation.AutoPlay {
		t.Error("expected auto_play to be true")
	}
	if cfg.Sliders.TweenSeconds != 0 {
		t.Errorf("expected tween 0, got %v", cfg.Sliders.TweenSeconds)
	}
	if cfg.Audio.Enabled {
		t.Error("expected audio to be disabled")
	}
	if cfg.Logging.LogFile != "cubefold.log" {
		t.Errorf("expected log file 'cubefold.log', got %s", cfg.Logging.LogFile)
	}
	// Untouched sections keep their defaults.
	if cfg.Editor.TextureDir != "textures" {
		t.Errorf("expected default texture dir, got %s", cfg.Editor.TextureDir)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"every demo", func(c *Config) { c.Demo = DemoEditor }, false},
		{"unknown demo", func(c *Config) { c.Demo = "teapot" }, true},
		{"zero step", func(c *Config) { c.Animation.Step = 0 }, true},
		{"negative step", func(c *Config) { c.Animation.Step = -0.01 }, true},
		{"negative spin", func(c *Config) { c.Animation.SpinRate = -1 }, true},
		{"zero panel", func(c *Config) { c.Animation.PanelSize = 0 }, true},
		{"negative width", func(c *Config) { c.Window.Width = -1 }, true},
		{"negative tween", func(c *Config) { c.Sliders.TweenSeconds = -0.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("demo: spin\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "demo flag",
			setup: func() { *flagDemo = DemoSplit },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Demo != DemoSplit {
					t.Errorf("expected demo split, got %s", cfg.Demo)
				}
			},
			teardown: func() { *flagDemo = "" },
		},
		{
			name:  "step flag",
			setup: func() { *flagStep = 0.05 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Animation.Step != 0.05 {
					t.Errorf("expected step 0.05, got %v", cfg.Animation.Step)
				}
			},
			teardown: func() { *flagStep = 0 },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "autoplay and mute flags",
			setup: func() {
				*flagAutoPlay = true
				*flagMute = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Animation.AutoPlay {
					t.Error("expected autoplay")
				}
				if cfg.Audio.Enabled {
					t.Error("expected audio disabled with mute flag")
				}
			},
			teardown: func() {
				*flagAutoPlay = false
				*flagMute = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
demo: editor
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
	if cfg.Demo != DemoEditor {
		t.Errorf("expected demo editor from file, got %s", cfg.Demo)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("demo: teapot\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject an unknown demo")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Demo = DemoSpin
	cfg.Animation.Step = 0.03
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Demo != DemoSpin || loaded.Animation.Step != 0.03 {
		t.Errorf("reloaded config = demo %s step %v, want spin 0.03", loaded.Demo, loaded.Animation.Step)
	}
}
