package demo

import (
	gomath "math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/cubefold/internal/config"
	"github.com/Faultbox/cubefold/internal/engine/camera"
	"github.com/Faultbox/cubefold/internal/scene"
	"github.com/Faultbox/cubefold/pkg/math"
)

// Rotation axes driven by the sliders.
const (
	SliderX = iota
	SliderY
	SliderZ
)

const sliderBoxCount = 4

var (
	sliderBoxSize  = math.Vec3{X: 15, Y: 10, Z: 1}
	sliderBoxColor = scene.Hex(0x3c9aa0)
)

// Sliders rotates a row of wireframe boxes toward angles set by three
// percentage sliders. Every box shares the same rotation.
type Sliders struct {
	percent  [3]float32
	target   [3]float32
	rotation [3]float32
	tweens   [3]*gween.Tween
	duration float32

	// Wireframe toggles between outline and solid boxes.
	Wireframe bool

	positions [sliderBoxCount]math.Vec3
	camera    *camera.OrbitCamera
}

// NewSliders creates the rotation slider demo.
func NewSliders(cfg config.SlidersConfig) *Sliders {
	cam := camera.NewOrbitCamera()
	cam.Lens = camera.Lens{FovY: 45, Near: 10, Far: 1000}
	cam.MaxDistance = 1000
	cam.SetPosition(math.Vec3{X: 0.6, Y: 0.2, Z: 1.3}.Scale(70))

	d := &Sliders{
		duration:  cfg.TweenSeconds,
		Wireframe: true,
		camera:    cam,
	}
	for i := range d.positions {
		d.positions[i].X = (float32(i) - 0.5*sliderBoxCount) * (sliderBoxSize.X + 2)
	}
	d.positions[1].Y = 0.5 * sliderBoxSize.Y
	d.positions[3].Y = -sliderBoxSize.Y
	return d
}

func (d *Sliders) Name() string { return config.DemoSliders }

// Camera is driven by mouse drag in the viewport.
func (d *Sliders) Camera() *camera.OrbitCamera {
	return d.camera
}

// SetPercent moves one slider (0..100) and starts easing toward its angle.
func (d *Sliders) SetPercent(axis int, pct float32) {
	pct = min(max(pct, 0), 100)
	d.percent[axis] = pct
	d.target[axis] = pct / 100 * gomath.Pi / 2

	if d.duration <= 0 {
		d.rotation[axis] = d.target[axis]
		d.tweens[axis] = nil
		return
	}
	d.tweens[axis] = gween.New(d.rotation[axis], d.target[axis], d.duration, ease.OutQuad)
}

// Percent returns a slider value.
func (d *Sliders) Percent(axis int) float32 {
	return d.percent[axis]
}

// TargetDegrees returns the angle a slider asks for, in degrees.
func (d *Sliders) TargetDegrees(axis int) float64 {
	return float64(d.target[axis]) * 180 / gomath.Pi
}

// Rotation returns the current eased rotation in radians.
func (d *Sliders) Rotation() [3]float32 {
	return d.rotation
}

func (d *Sliders) Enter() error { return nil }

func (d *Sliders) Exit() error { return nil }

func (d *Sliders) Update(dt float64) error {
	for i, tw := range d.tweens {
		if tw == nil {
			continue
		}
		v, done := tw.Update(float32(dt))
		d.rotation[i] = v
		if done {
			d.rotation[i] = d.target[i]
			d.tweens[i] = nil
		}
	}
	return nil
}

func (d *Sliders) Render(s Sink, width, height int) {
	v := scene.FullView(scene.ColorWhite, math.Identity(), d.camera.ViewMatrix())
	v.Projection = d.camera.Projection(v.Aspect(width, height))
	s.BeginView(v)

	rot := math.EulerXYZ(d.rotation[SliderX], d.rotation[SliderY], d.rotation[SliderZ])
	for _, p := range d.positions {
		s.DrawBox(scene.Box{
			Model:     math.TranslateVec(p).Mul(rot),
			Size:      sliderBoxSize,
			Color:     sliderBoxColor,
			Wireframe: d.Wireframe,
		})
	}
	s.DrawLine(scene.Line{
		From:  math.Vec3{X: -1000},
		To:    math.Vec3{X: 1000},
		Color: scene.ColorBlack,
	})
}
