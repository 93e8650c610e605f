// Package lighting provides the ambient plus directional light model used by
// lit views.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/cubefold/pkg/math"
)

// Light is a white ambient term plus one directional light.
type Light struct {
	Ambient   float32
	Diffuse   float32
	Direction math.Vec3 // Unit vector from the surface toward the light
}

// FromPosition builds a light shining from position toward the origin.
func FromPosition(ambient, diffuse float32, position math.Vec3) Light {
	return Light{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Direction: position.Normalize(),
	}
}

// Studio is the editor's lighting: soft fill plus a key light above and to
// the front right.
func Studio() Light {
	return FromPosition(0.6, 0.8, math.Vec3{X: 5, Y: 10, Z: 7.5})
}

// SunDirection converts an azimuth around Y and an elevation above the
// horizon, both in degrees, to a unit direction toward the light.
func SunDirection(azimuth, elevation float64) math.Vec3 {
	az := azimuth * gomath.Pi / 180.0
	el := elevation * gomath.Pi / 180.0

	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}

// Intensity is the brightness of a surface with the given unit normal,
// clamped to 1. It matches the fragment shader.
func (l Light) Intensity(normal math.Vec3) float32 {
	diffuse := max(normal.Dot(l.Direction), 0)
	return min(l.Ambient+l.Diffuse*diffuse, 1)
}
