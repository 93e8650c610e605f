package demo

import (
	"github.com/Faultbox/cubefold/internal/config"
	"github.com/Faultbox/cubefold/internal/engine/camera"
	"github.com/Faultbox/cubefold/internal/scene"
	"github.com/Faultbox/cubefold/pkg/math"
)

// spinRate is the per-frame rotation of the single-cube demos.
const spinRate = 0.01

// Spin shows one green cube turning about Z.
type Spin struct {
	camera   *camera.FixedCamera
	rotation float32
}

// NewSpin creates the spinning cube demo.
func NewSpin() *Spin {
	return &Spin{camera: camera.NewFixedCamera(5)}
}

func (d *Spin) Name() string { return config.DemoSpin }

func (d *Spin) Enter() error { return nil }

func (d *Spin) Exit() error { return nil }

func (d *Spin) Update(dt float64) error {
	d.rotation += spinRate
	return nil
}

// Rotation returns the accumulated Z rotation.
func (d *Spin) Rotation() float32 {
	return d.rotation
}

func (d *Spin) Render(s Sink, width, height int) {
	v := scene.FullView(scene.ColorBlack, math.Identity(), d.camera.ViewMatrix())
	v.Projection = d.camera.Projection(v.Aspect(width, height))
	s.BeginView(v)
	s.DrawBox(scene.Box{
		Model: math.RotateZ(d.rotation),
		Size:  math.Vec3{X: 1, Y: 1, Z: 1},
		Color: scene.ColorGreen,
	})
}
