package demo

import (
	"github.com/Faultbox/cubefold/internal/config"
	"github.com/Faultbox/cubefold/internal/editor"
	"github.com/Faultbox/cubefold/internal/engine/camera"
	"github.com/Faultbox/cubefold/internal/engine/lighting"
	"github.com/Faultbox/cubefold/internal/scene"
	"github.com/Faultbox/cubefold/pkg/math"
)

// editorBackground is the light grey behind the edited box.
var editorBackground = scene.Hex(0xdedede)

// Editor shows the box described by an editor.State under an orbit camera.
type Editor struct {
	cfg    config.EditorConfig
	state  *editor.State
	camera *camera.OrbitCamera
	light  lighting.Light
}

// NewEditor creates the box editor demo.
func NewEditor(cfg config.EditorConfig) *Editor {
	cam := camera.NewOrbitCamera()
	cam.SetPosition(math.Vec3{Y: 1, Z: 3})
	return &Editor{
		cfg:    cfg,
		state:  editor.New(cfg.TextureDir),
		camera: cam,
		light:  lighting.Studio(),
	}
}

func (d *Editor) Name() string { return config.DemoEditor }

// State is the model edited by the GUI panel.
func (d *Editor) State() *editor.State {
	return d.state
}

// Camera is driven by mouse drag and wheel in the viewport.
func (d *Editor) Camera() *camera.OrbitCamera {
	return d.camera
}

// ExportPath is the default export destination.
func (d *Editor) ExportPath() string {
	return d.cfg.ExportPath
}

// Export writes the current state to path, or to the configured default
// when path is empty.
func (d *Editor) Export(path string) error {
	if path == "" {
		path = d.cfg.ExportPath
	}
	return d.state.SaveFile(path)
}

// Load replaces the current state with a previously exported file.
func (d *Editor) Load(path string) error {
	s, err := editor.LoadFile(path, d.cfg.TextureDir)
	if err != nil {
		return err
	}
	d.state = s
	return nil
}

func (d *Editor) Enter() error { return nil }

func (d *Editor) Exit() error { return nil }

func (d *Editor) Update(dt float64) error { return nil }

func (d *Editor) Render(s Sink, width, height int) {
	v := scene.FullView(editorBackground, math.Identity(), d.camera.ViewMatrix())
	v.Projection = d.camera.Projection(v.Aspect(width, height))
	v.Light = &d.light
	s.BeginView(v)
	s.DrawBox(d.state.Box(math.Identity()))
}
