package camera

import (
	"testing"

	"github.com/Faultbox/cubefold/pkg/math"
)

const eps = 1e-4

func TestFixedCameraViewMovesEyeToOrigin(t *testing.T) {
	c := NewFixedCamera(5)
	got := c.ViewMatrix().TransformVec3(c.Position)
	if !got.ApproxEqual(math.Vec3{}, eps) {
		t.Errorf("eye in view space = %v, want origin", got)
	}

	target := c.ViewMatrix().TransformVec3(c.Target)
	if !target.ApproxEqual(math.Vec3{Z: -5}, eps) {
		t.Errorf("target in view space = %v, want (0,0,-5)", target)
	}
}

func TestLensProjectionGuardsAspect(t *testing.T) {
	l := DefaultLens()
	if l.Projection(0) != l.Projection(1) {
		t.Error("zero aspect should fall back to 1")
	}
}

func TestOrbitPositionAtDistance(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = math.Vec3{X: 1, Y: 2, Z: 3}

	d := c.Position().Sub(c.Center).Length()
	if d < c.Distance-eps || d > c.Distance+eps {
		t.Errorf("distance = %v, want %v", d, c.Distance)
	}
}

func TestOrbitHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("RotationX = %v, want %v", c.RotationX, c.MaxPitch)
	}
	c.HandleDrag(0, -100000)
	if c.RotationX != c.MinPitch {
		t.Errorf("RotationX = %v, want %v", c.RotationX, c.MinPitch)
	}
}

func TestOrbitHandleZoomClamps(t *testing.T) {
	tests := []struct {
		name  string
		delta float32
		want  func(c *OrbitCamera) float32
	}{
		{"zoom in", 1000, func(c *OrbitCamera) float32 { return c.MinDistance }},
		{"zoom out", -1000, func(c *OrbitCamera) float32 { return c.MaxDistance }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			for i := 0; i < 100; i++ {
				c.HandleZoom(tt.delta / 100)
			}
			if c.Distance != tt.want(c) {
				t.Errorf("Distance = %v, want %v", c.Distance, tt.want(c))
			}
		})
	}
}

func TestOrbitFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(math.Vec3{X: -2, Y: -1, Z: -1}, math.Vec3{X: 4, Y: 1, Z: 1})

	if !c.Center.ApproxEqual(math.Vec3{X: 1}, eps) {
		t.Errorf("Center = %v, want (1,0,0)", c.Center)
	}
	if c.Distance <= 3 {
		t.Errorf("Distance = %v, want beyond the bounding radius", c.Distance)
	}
}

func TestOrbitSetPosition(t *testing.T) {
	c := NewOrbitCamera()
	eye := math.Vec3{X: 42, Y: 14, Z: 91}
	c.SetPosition(eye)

	if got := c.Position(); !got.ApproxEqual(eye, 1e-3) {
		t.Errorf("Position = %v, want %v", got, eye)
	}
}
