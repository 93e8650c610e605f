package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cubefold/internal/config"
	"github.com/Faultbox/cubefold/internal/engine/camera"
	"github.com/Faultbox/cubefold/internal/engine/picking"
	"github.com/Faultbox/cubefold/internal/fold"
	"github.com/Faultbox/cubefold/internal/logger"
	"github.com/Faultbox/cubefold/internal/scene"
	"github.com/Faultbox/cubefold/pkg/math"
)

// FoldNet animates a six-panel net folding into a cube and back.
type FoldNet struct {
	cfg      config.AnimationConfig
	animator *fold.Animator
	spin     scene.Spin
	camera   *camera.FixedCamera
}

// NewFoldNet creates the fold net demo. opts are passed to the animator.
func NewFoldNet(cfg config.AnimationConfig, opts ...fold.Option) (*FoldNet, error) {
	a, err := fold.New(fold.DefaultNet(cfg.PanelSize), opts...)
	if err != nil {
		return nil, fmt.Errorf("creating fold animator: %w", err)
	}
	return &FoldNet{
		cfg:      cfg,
		animator: a,
		spin:     scene.Spin{Rate: float32(cfg.SpinRate), Always: cfg.SpinAlways},
		camera:   camera.NewFixedCamera(3),
	}, nil
}

func (d *FoldNet) Name() string { return config.DemoFoldNet }

// Animator exposes the control surface.
func (d *FoldNet) Animator() *fold.Animator {
	return d.animator
}

// Spin returns the current assembly rotation.
func (d *FoldNet) Spin() scene.Spin {
	return d.spin
}

func (d *FoldNet) Enter() error {
	if d.cfg.AutoPlay {
		d.animator.Play()
	}
	logger.Debug("fold net entered",
		zap.Float64("step", d.cfg.Step),
		zap.Bool("auto_play", d.cfg.AutoPlay),
	)
	return nil
}

func (d *FoldNet) Exit() error {
	d.animator.Pause()
	return nil
}

// Restart resets the animator for its current target and clears the spin.
func (d *FoldNet) Restart() {
	d.animator.Reset()
	d.spin.Reset()
}

// SetTarget switches the animator target; a changed target also clears the spin.
func (d *FoldNet) SetTarget(t fold.Target) {
	if t == d.animator.Target() {
		return
	}
	d.animator.SetTarget(t)
	d.spin.Reset()
}

func (d *FoldNet) Update(dt float64) error {
	if err := d.animator.Tick(d.cfg.Step); err != nil {
		return err
	}
	d.spin.Update(d.animator.Status())
	return nil
}

func (d *FoldNet) Render(s Sink, width, height int) {
	s.BeginView(d.view(width, height))
	for _, b := range d.panels() {
		s.DrawBox(b)
	}
}

// FaceAt returns the face whose panel is under pixel (x, y), origin top-left,
// on a target of the given size.
func (d *FoldNet) FaceAt(x, y float32, width, height int) (int, bool) {
	v := d.view(width, height)
	inv := v.Projection.Mul(v.View).Inverse()
	ray := picking.ScreenToRay(x, y, float32(width), float32(height), inv)
	panels := d.panels()
	return picking.PickBox(ray, panels[:])
}

func (d *FoldNet) view(width, height int) scene.View {
	v := scene.FullView(scene.ColorBlack, math.Identity(), d.camera.ViewMatrix())
	v.Projection = d.camera.Projection(v.Aspect(width, height))
	return v
}

func (d *FoldNet) panels() [fold.FaceCount]scene.Box {
	size := math.Vec3{X: d.cfg.PanelSize, Y: d.cfg.PanelSize, Z: d.cfg.Thickness}
	models := scene.NetModels(d.spin.Matrix(), d.animator.Faces(), d.animator.CurrentAngles())

	var boxes [fold.FaceCount]scene.Box
	for i, m := range models {
		boxes[i] = scene.Box{
			Model: m,
			Size:  size,
			Color: scene.PanelColors[i],
		}
	}
	return boxes
}
