package demo

import (
	"github.com/Faultbox/cubefold/internal/config"
	"github.com/Faultbox/cubefold/internal/engine/camera"
	"github.com/Faultbox/cubefold/internal/scene"
	"github.com/Faultbox/cubefold/pkg/math"
)

// splitHalf is one side of the split demo: its own camera, cube and clear color.
type splitHalf struct {
	camera *camera.FixedCamera
	clear  scene.Color
	x, y   float32
}

// Split renders two independent scenes side by side with scissored viewports.
type Split struct {
	halves [2]splitHalf
}

// NewSplit creates the split-viewport demo.
func NewSplit() *Split {
	return &Split{halves: [2]splitHalf{
		{camera: camera.NewFixedCamera(5), clear: scene.ColorWhite},
		{camera: camera.NewFixedCamera(5), clear: scene.ColorBlack},
	}}
}

func (d *Split) Name() string { return config.DemoSplit }

func (d *Split) Enter() error { return nil }

func (d *Split) Exit() error { return nil }

func (d *Split) Update(dt float64) error {
	for i := range d.halves {
		d.halves[i].x += spinRate
		d.halves[i].y += spinRate
	}
	return nil
}

func (d *Split) Render(s Sink, width, height int) {
	for i, h := range d.halves {
		v := scene.View{
			X:     float32(i) * 0.5,
			W:     0.5,
			H:     1,
			Clear: h.clear,
			View:  h.camera.ViewMatrix(),
		}
		v.Projection = h.camera.Projection(v.Aspect(width, height))
		s.BeginView(v)
		s.DrawBox(scene.Box{
			Model: math.EulerXYZ(h.x, h.y, 0),
			Size:  math.Vec3{X: 1, Y: 1, Z: 1},
			Color: scene.ColorGreen,
		})
	}
}
