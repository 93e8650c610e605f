package scene

import (
	"fmt"

	"github.com/Faultbox/cubefold/internal/fold"
	"github.com/Faultbox/cubefold/pkg/math"
)

// PanelColors are the face colors of the net, indexed by face.
var PanelColors = [fold.FaceCount]Color{
	Hex(0xff0000),
	Hex(0x00ff00),
	Hex(0x0000ff),
	Hex(0xffff00),
	Hex(0xff00ff),
	Hex(0x00ffff),
}

// FaceModel returns the local transform of one panel:
// T(rest) * R(axis, angle) * T(pivotOffset).
func FaceModel(face fold.FaceConfig, angle float64) math.Mat4 {
	var rot math.Mat4
	switch face.Axis {
	case fold.AxisX:
		rot = math.RotateX(float32(angle))
	case fold.AxisY:
		rot = math.RotateY(float32(angle))
	default:
		panic(fmt.Sprintf("scene: unsupported hinge axis %v", face.Axis))
	}
	return math.TranslateVec(face.RestPosition).Mul(rot).Mul(math.TranslateVec(face.PivotOffset))
}

// NetModels returns the world transform of every panel under assembly.
func NetModels(assembly math.Mat4, faces [fold.FaceCount]fold.FaceConfig, angles fold.Angles) [fold.FaceCount]math.Mat4 {
	var models [fold.FaceCount]math.Mat4
	for i, f := range faces {
		models[i] = assembly.Mul(FaceModel(f, angles[i]))
	}
	return models
}

// Spin is the cosmetic whole-assembly rotation shown once the net is open.
type Spin struct {
	Rate float32

	// Always spins regardless of animation state.
	Always bool

	X, Y, Z float32
}

// Update advances the rotation by one frame when st allows it.
func (s *Spin) Update(st fold.Status) {
	if !s.Always && !(st.Direction == fold.Unfolding && st.Stage == fold.StageComplete) {
		return
	}
	s.X += s.Rate
	s.Y += s.Rate
	s.Z += s.Rate
}

// Reset returns the assembly to its unrotated pose.
func (s *Spin) Reset() {
	s.X, s.Y, s.Z = 0, 0, 0
}

// Matrix returns the assembly transform.
func (s *Spin) Matrix() math.Mat4 {
	return math.EulerXYZ(s.X, s.Y, s.Z)
}
