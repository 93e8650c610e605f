package lighting

import (
	"testing"

	"github.com/Faultbox/cubefold/pkg/math"
)

const eps = 1e-5

func TestFromPositionNormalizes(t *testing.T) {
	l := FromPosition(0.5, 0.5, math.Vec3{X: 0, Y: 10, Z: 0})
	if !l.Direction.ApproxEqual(math.Vec3{Y: 1}, eps) {
		t.Errorf("direction = %+v, want +Y", l.Direction)
	}
}

func TestIntensity(t *testing.T) {
	l := FromPosition(0.2, 0.5, math.Vec3{Y: 1})

	tests := []struct {
		name   string
		normal math.Vec3
		want   float32
	}{
		{"facing", math.Vec3{Y: 1}, 0.7},
		{"grazing", math.Vec3{X: 1}, 0.2},
		{"away", math.Vec3{Y: -1}, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Intensity(tt.normal); got < tt.want-eps || got > tt.want+eps {
				t.Errorf("Intensity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStudioClampsToOne(t *testing.T) {
	l := Studio()
	if got := l.Intensity(l.Direction); got != 1 {
		t.Errorf("Intensity toward light = %v, want 1", got)
	}
	// Every face of a box gets at least the ambient term.
	for _, n := range []math.Vec3{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}} {
		if got := l.Intensity(n); got < l.Ambient {
			t.Errorf("Intensity(%+v) = %v, below ambient", n, got)
		}
	}
}

func TestSunDirection(t *testing.T) {
	tests := []struct {
		azimuth, elevation float64
		want               math.Vec3
	}{
		{0, 0, math.Vec3{Z: 1}},
		{90, 0, math.Vec3{X: 1}},
		{0, 90, math.Vec3{Y: 1}},
	}
	for _, tt := range tests {
		got := SunDirection(tt.azimuth, tt.elevation)
		if !got.ApproxEqual(tt.want, eps) {
			t.Errorf("SunDirection(%v, %v) = %+v, want %+v", tt.azimuth, tt.elevation, got, tt.want)
		}
	}
}
