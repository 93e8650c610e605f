// cubefold shows the cube net fold animation and the companion demos inside
// an ImGui shell.
package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefold/internal/config"
	"github.com/Faultbox/cubefold/internal/control"
	"github.com/Faultbox/cubefold/internal/demo"
	"github.com/Faultbox/cubefold/internal/engine/audio"
	"github.com/Faultbox/cubefold/internal/engine/framebuffer"
	"github.com/Faultbox/cubefold/internal/engine/renderer"
	"github.com/Faultbox/cubefold/internal/engine/screenshot"
	"github.com/Faultbox/cubefold/internal/engine/ui"
	"github.com/Faultbox/cubefold/internal/fold"
	"github.com/Faultbox/cubefold/internal/logger"
)

// The renderer is the GL implementation of the demo draw contract.
var _ demo.Sink = (*renderer.Renderer)(nil)

const (
	controlsPanelWidth = 320
	statusBarHeight    = 28
	messageDuration    = 2 * time.Second
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== cubefold ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := NewApp(cfg)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
	logger.Info("app closed normally")
}

// App is the GUI application state.
type App struct {
	cfg      *config.Config
	backend  *ui.Backend
	renderer *renderer.Renderer
	target   *framebuffer.Framebuffer
	audio    *audio.Manager
	capture  *screenshot.Capture
	demos    *demo.Manager

	foldNet *demo.FoldNet
	editor  *demo.Editor
	sliders *demo.Sliders

	lastFrame time.Time

	// Fold net panel under the mouse, or -1.
	hoverFace int

	// Viewport size requested by the last layout pass, applied next frame.
	viewWidth  int32
	viewHeight int32

	screenshotRequested bool
	message             string
	messageTime         time.Time

	// Native dialogs run off the main thread and hand their result back
	// through these fields.
	dialogMu          sync.Mutex
	pendingExportPath string
	pendingLoadPath   string
	pendingTexture    string

	// Editor text fields.
	texturePathInput string
}

// NewApp creates the window, GL resources and every demo.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{
		cfg:        cfg,
		capture:    screenshot.New(cfg.Screenshot.Dir, "cubefold"),
		demos:      demo.NewManager(),
		hoverFace:  -1,
		viewWidth:  int32(cfg.Window.Width - controlsPanelWidth),
		viewHeight: int32(cfg.Window.Height - statusBarHeight),
	}

	var err error
	app.backend, err = ui.NewBackend("cubefold", int32(cfg.Window.Width), int32(cfg.Window.Height))
	if err != nil {
		return nil, fmt.Errorf("creating ui backend: %w", err)
	}

	app.renderer, err = renderer.New()
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	app.target, err = framebuffer.New(app.viewWidth, app.viewHeight)
	if err != nil {
		app.renderer.Close()
		return nil, err
	}

	var opts []fold.Option
	if cfg.Audio.Enabled {
		app.audio = audio.New(cfg.Audio.Volume)
		if err := app.audio.Init(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
			app.audio = nil
		} else {
			opts = append(opts, fold.WithObserver(app.audio.FoldObserver()))
		}
	}

	app.foldNet, err = demo.NewFoldNet(cfg.Animation, opts...)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.editor = demo.NewEditor(cfg.Editor)
	app.sliders = demo.NewSliders(cfg.Sliders)

	app.demos.Register(demo.NewSpin())
	app.demos.Register(demo.NewSplit())
	app.demos.Register(app.foldNet)
	app.demos.Register(app.editor)
	app.demos.Register(app.sliders)

	if err := app.demos.Switch(cfg.Demo); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// Close releases GL and audio resources.
func (app *App) Close() {
	if app.audio != nil {
		app.audio.Close()
	}
	if app.target != nil {
		app.target.Destroy()
		app.target = nil
	}
	if app.renderer != nil {
		app.renderer.Close()
		app.renderer = nil
	}
}

// Run starts the main loop.
func (app *App) Run() {
	app.lastFrame = time.Now()
	app.backend.Run(app.frame)
}

// frame is called by the backend once per frame.
func (app *App) frame() {
	now := time.Now()
	dt := now.Sub(app.lastFrame).Seconds()
	app.lastFrame = now

	app.processPendingDialogs()

	for _, a := range ui.PressedActions() {
		app.handle(a)
	}

	if err := app.demos.Update(dt); err != nil {
		logger.Error("demo update failed", zap.Error(err))
		app.showMessage("Error: " + err.Error())
	}

	app.renderScene()

	if app.screenshotRequested {
		app.screenshotRequested = false
		app.saveScreenshot()
	}

	app.layout()
}

// handle applies a keyboard action.
func (app *App) handle(a control.Action) {
	switch a {
	case control.Quit:
		app.backend.RequestClose()
	case control.Screenshot:
		app.screenshotRequested = true
	case control.NextDemo:
		app.nextDemo()
	default:
		// Fold keys only act while the fold net is on screen.
		if app.demos.Current() == app.foldNet {
			control.Apply(a, app.foldNet)
		}
	}
}

func (app *App) nextDemo() {
	names := app.demos.Names()
	current := app.demos.Current()
	for i, name := range names {
		if current != nil && name == current.Name() {
			app.switchDemo(names[(i+1)%len(names)])
			return
		}
	}
	app.switchDemo(names[0])
}

func (app *App) switchDemo(name string) {
	if err := app.demos.Switch(name); err != nil {
		logger.Warn("switch demo failed", zap.Error(err))
	}
}

// renderScene draws the current demo into the offscreen target.
func (app *App) renderScene() {
	app.target.Resize(app.viewWidth, app.viewHeight)
	w, h := app.target.Size()

	restore := app.target.BindWithViewport()
	app.renderer.Begin(int(w), int(h))
	app.demos.Render(app.renderer, int(w), int(h))
	app.renderer.End()
	restore()
}

func (app *App) saveScreenshot() {
	path, err := app.capture.Save(app.target.Snapshot())
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		app.showMessage("Screenshot failed: " + err.Error())
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
	app.showMessage("Saved: " + path)
}

func (app *App) showMessage(msg string) {
	app.message = msg
	app.messageTime = time.Now()
}

// layout places the menu bar, the controls panel, the viewport and the
// status bar.
func (app *App) layout() {
	app.renderMenuBar()

	posX, posY, width, height := ui.WorkArea()
	contentHeight := height - statusBarHeight
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(imgui.NewVec2(posX, posY))
	imgui.SetNextWindowSize(imgui.NewVec2(controlsPanelWidth, contentHeight))
	if imgui.BeginV("Controls", nil, flags) {
		app.renderControlsPanel()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(posX+controlsPanelWidth, posY))
	imgui.SetNextWindowSize(imgui.NewVec2(width-controlsPanelWidth, contentHeight))
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	viewFlags := flags | imgui.WindowFlagsNoScrollbar | imgui.WindowFlagsNoScrollWithMouse
	if imgui.BeginV("Viewport", nil, viewFlags) {
		app.viewWidth, app.viewHeight = ui.Viewport(app.target.ColorTexture())
		app.hoverFace = -1
		switch app.demos.Current() {
		case app.foldNet:
			if x, y, ok := ui.HoverPosition(); ok {
				if face, hit := app.foldNet.FaceAt(x, y, int(app.viewWidth), int(app.viewHeight)); hit {
					app.hoverFace = face
				}
			}
		case app.editor:
			ui.OrbitControls(app.editor.Camera(), true)
		case app.sliders:
			ui.OrbitControls(app.sliders.Camera(), false)
		}
	}
	imgui.End()
	imgui.PopStyleVar()

	imgui.SetNextWindowPos(imgui.NewVec2(posX, posY+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(width, statusBarHeight))
	if imgui.BeginV("##StatusBar", nil, flags|imgui.WindowFlagsNoTitleBar|imgui.WindowFlagsNoScrollbar) {
		app.renderStatusBar()
	}
	imgui.End()
}

func (app *App) renderMenuBar() {
	if !imgui.BeginMainMenuBar() {
		return
	}
	if imgui.BeginMenu("File") {
		if imgui.MenuItemBool("Export Box...") {
			app.openExportDialog()
		}
		if imgui.MenuItemBool("Load Box...") {
			app.openLoadDialog()
		}
		if imgui.MenuItemBool("Screenshot") {
			app.screenshotRequested = true
		}
		imgui.Separator()
		if imgui.MenuItemBool("Exit") {
			app.backend.RequestClose()
		}
		imgui.EndMenu()
	}
	if imgui.BeginMenu("Demo") {
		for _, name := range app.demos.Names() {
			if imgui.MenuItemBool(name) {
				app.switchDemo(name)
			}
		}
		imgui.EndMenu()
	}
	imgui.EndMainMenuBar()
}

func (app *App) renderStatusBar() {
	current := "-"
	if d := app.demos.Current(); d != nil {
		current = d.Name()
	}
	text := fmt.Sprintf("Demo: %s | %.0f FPS", current, imgui.CurrentIO().Framerate())
	if current == app.foldNet.Name() {
		text += " | " + control.FormatStatus(app.foldNet.Animator().Status())
	}
	imgui.Text(text)

	if app.message != "" && time.Since(app.messageTime) < messageDuration {
		imgui.SameLine()
		imgui.TextColored(imgui.NewVec4(0.4, 0.8, 0.4, 1), "  "+app.message)
	}
}
