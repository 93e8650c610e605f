// Package viewer runs the fold net in a plain SDL2 window with keyboard
// control and no GUI panels.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubefold/internal/config"
	"github.com/Faultbox/cubefold/internal/control"
	"github.com/Faultbox/cubefold/internal/demo"
	"github.com/Faultbox/cubefold/internal/engine/audio"
	"github.com/Faultbox/cubefold/internal/engine/framebuffer"
	"github.com/Faultbox/cubefold/internal/engine/input"
	"github.com/Faultbox/cubefold/internal/engine/renderer"
	"github.com/Faultbox/cubefold/internal/engine/screenshot"
	"github.com/Faultbox/cubefold/internal/engine/window"
	"github.com/Faultbox/cubefold/internal/fold"
	"github.com/Faultbox/cubefold/internal/logger"
)

const title = "cubefold"

// Viewer is the raw window host.
type Viewer struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager
	capture  *screenshot.Capture
	net      *demo.FoldNet

	screenshotRequested bool
}

// New creates the window, renderer and fold net.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	v := &Viewer{
		cfg:     cfg,
		input:   input.New(),
		capture: screenshot.New(cfg.Screenshot.Dir, "cubefold"),
	}

	var err error
	v.window, err = window.New(window.ConfigFrom(title, cfg.Window))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	v.renderer, err = renderer.New()
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	var opts []fold.Option
	if cfg.Audio.Enabled {
		v.audio = audio.New(cfg.Audio.Volume)
		if err := v.audio.Init(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			opts = append(opts, fold.WithObserver(v.audio.FoldObserver()))
		}
	}

	v.net, err = demo.NewFoldNet(cfg.Animation, opts...)
	if err != nil {
		v.Close()
		return nil, err
	}
	if err := v.net.Enter(); err != nil {
		v.Close()
		return nil, fmt.Errorf("entering fold net: %w", err)
	}

	logger.Info("viewer initialized")
	return v, nil
}

// Run drives the fold net once per frame until the window closes.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		for _, a := range v.input.Actions() {
			v.handle(a)
		}

		if err := v.net.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		w, h := v.window.DrawableSize()
		if v.input.Resized() {
			logger.Debug("window resized", zap.Int("width", w), zap.Int("height", h))
		}
		v.renderer.Begin(w, h)
		v.net.Render(v.renderer, w, h)
		v.renderer.End()

		if v.screenshotRequested {
			v.screenshotRequested = false
			v.saveScreenshot(w, h)
		}

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			status := control.FormatStatus(v.net.Animator().Status())
			v.window.SetTitle(title + " - " + status)
			logger.Debug("fps", zap.Int("count", frameCount), zap.String("status", status))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handle(a control.Action) {
	if control.Apply(a, v.net) {
		logger.Debug("control", zap.Stringer("action", a))
		return
	}
	switch a {
	case control.Quit:
		v.running = false
	case control.Screenshot:
		v.screenshotRequested = true
	}
}

// saveScreenshot captures the back buffer before it is presented.
func (v *Viewer) saveScreenshot(width, height int) {
	path, err := v.capture.Save(framebuffer.ReadDefault(width, height))
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases every resource.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.audio != nil {
		v.audio.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
